package codec_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/pixelroot32/spritec/codec"
	"github.com/pixelroot32/spritec/palette"
	"github.com/pixelroot32/spritec/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = raster.Color{R: 255}
	blue = raster.Color{B: 255}
)

func solid(w, h int, c raster.Color) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return m
}

func TestLayeredSolidColor(t *testing.T) {
	m := solid(16, 16, red)

	arrays := codec.Layered{}.Pack(m, []raster.Color{red}, nil)
	require.Len(t, arrays, 1)
	assert.Equal(t, "LAYER_0", arrays[0].Suffix)
	require.Len(t, arrays[0].Words, 16)
	for _, w := range arrays[0].Words {
		assert.Equal(t, uint16(0xffff), w)
	}
}

func TestLayeredOneArrayPerCatalogColor(t *testing.T) {
	// Top half red, bottom half blue; the catalog is sheet-wide so both
	// layers exist for the region even where a color is absent.
	m := solid(16, 2, red)
	for x := 0; x < 16; x++ {
		m.SetNRGBA(x, 1, color.NRGBA{B: 255, A: 255})
	}

	arrays := codec.Layered{}.Pack(m, []raster.Color{blue, red}, nil)
	require.Len(t, arrays, 2)

	// Layer 0 is blue: empty first row, full second row.
	assert.Equal(t, []uint16{0x0000, 0xffff}, arrays[0].Words)
	// Layer 1 is red: the inverse.
	assert.Equal(t, []uint16{0xffff, 0x0000}, arrays[1].Words)
}

func TestLayeredBitOrderWithinWord(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 1))
	m.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	m.SetNRGBA(15, 0, color.NRGBA{R: 255, A: 255})

	arrays := codec.Layered{}.Pack(m, []raster.Color{red}, nil)
	require.Len(t, arrays, 1)
	assert.Equal(t, []uint16{0x8001}, arrays[0].Words)
}

func TestLayeredUnalignedWidth(t *testing.T) {
	// Width 20 needs two words per row; only pixels 16-19 are set in
	// the second word.
	m := solid(20, 1, red)

	arrays := codec.Layered{}.Pack(m, []raster.Color{red}, nil)
	require.Len(t, arrays[0].Words, 2)
	assert.Equal(t, uint16(0xffff), arrays[0].Words[0])
	assert.Equal(t, uint16(0xf000), arrays[0].Words[1])
}

func TestLayeredIgnoresTransparentPixels(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 1))
	// Red color channels but zero alpha: contributes no bit.
	m.SetNRGBA(0, 0, color.NRGBA{R: 255})

	arrays := codec.Layered{}.Pack(m, []raster.Color{red}, nil)
	assert.Equal(t, []uint16{0x0000}, arrays[0].Words)
}

// unpack is the test-only inverse of Packed: it recovers the per-pixel
// palette indices from the word stream.
func unpack(words []uint16, width, height, bits int) [][]uint8 {
	stride := (width*bits + 7) / 8
	wordsPerRow := (stride + 1) / 2
	mask := uint8(1<<uint(bits) - 1)

	out := make([][]uint8, height)
	for y := 0; y < height; y++ {
		row := make([]byte, wordsPerRow*2)
		for i := 0; i < wordsPerRow; i++ {
			w := words[y*wordsPerRow+i]
			row[2*i] = byte(w)
			row[2*i+1] = byte(w >> 8)
		}
		out[y] = make([]uint8, width)
		for x := 0; x < width; x++ {
			bit := x * bits
			out[y][x] = (row[bit>>3] >> uint(bit&7)) & mask
		}
	}
	return out
}

func TestPackedRoundTrip(t *testing.T) {
	colors := []raster.Color{{R: 10}, {R: 20}, {R: 30}}

	m := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if (x+y)%4 == 3 {
				continue // leave transparent
			}
			c := colors[(x+y)%3]
			m.SetNRGBA(x, y, color.NRGBA{R: c.R, A: 255})
		}
	}

	for _, bits := range []int{2, 4} {
		t.Run(fmt.Sprintf("%dbpp", bits), func(t *testing.T) {
			max := palette.Max2BPP
			if bits == 4 {
				max = palette.Max4BPP
			}
			pal := palette.Assign(colors, max)

			arrays := codec.Packed{Bits: bits}.Pack(m, colors, pal)
			require.Len(t, arrays, 1)
			assert.Equal(t, fmt.Sprintf("%dBPP", bits), arrays[0].Suffix)

			got := unpack(arrays[0].Words, 5, 3, bits)
			for y := 0; y < 3; y++ {
				for x := 0; x < 5; x++ {
					var want uint8
					px := m.NRGBAAt(x, y)
					if px.A > 0 {
						want = pal.Lookup(raster.Color{R: px.R, G: px.G, B: px.B})
					}
					assert.Equal(t, want, got[y][x], "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestPackedOddStridePadsHighByte(t *testing.T) {
	// 5 pixels at 4bpp is a 3-byte row: two words with a zero-padded
	// trailing high byte.
	colors := []raster.Color{{R: 10}}
	pal := palette.Assign(colors, palette.Max4BPP)
	m := solid(5, 1, raster.Color{R: 10})

	arrays := codec.Packed{Bits: 4}.Pack(m, colors, pal)
	require.Len(t, arrays[0].Words, 2)
	assert.Equal(t, uint16(0x1111), arrays[0].Words[0])
	assert.Equal(t, uint16(0x0001), arrays[0].Words[1])
}

func TestPackedWordsPerRow(t *testing.T) {
	colors := []raster.Color{{R: 10}}
	m := solid(16, 2, raster.Color{R: 10})

	pal := palette.Assign(colors, palette.Max2BPP)
	arrays := codec.Packed{Bits: 2}.Pack(m, colors, pal)
	// 16 pixels * 2 bits = 4 bytes = 2 words per row.
	assert.Len(t, arrays[0].Words, 4)

	pal = palette.Assign(colors, palette.Max4BPP)
	arrays = codec.Packed{Bits: 4}.Pack(m, colors, pal)
	// 16 pixels * 4 bits = 8 bytes = 4 words per row.
	assert.Len(t, arrays[0].Words, 8)
}

func TestPackedTransparentIsIndexZero(t *testing.T) {
	colors := []raster.Color{{R: 10}}
	pal := palette.Assign(colors, palette.Max2BPP)

	m := image.NewNRGBA(image.Rect(0, 0, 8, 1))
	arrays := codec.Packed{Bits: 2}.Pack(m, colors, pal)
	assert.Equal(t, []uint16{0x0000}, arrays[0].Words)
}
