/*
Package codec turns one extracted sprite region into sequences of 16-bit
words ready for the header writer.

Three codecs exist: a per-color layered bitmask and 2bpp/4bpp packed
forms. All of them emit rows in raster scan order, top to bottom and
left to right, and assemble words from consecutive byte pairs with the
low byte first; an odd trailing byte is padded with zero. The encoding
is the firmware-side contract and must stay bit-exact.
*/
package codec

import (
	"fmt"
	"image"

	"github.com/pixelroot32/spritec/palette"
	"github.com/pixelroot32/spritec/raster"
)

// Array is one compiled word sequence. Suffix distinguishes the arrays
// produced from a single region, e.g. "LAYER_0" or "4BPP".
type Array struct {
	Suffix string
	Words  []uint16
}

// Codec packs one sprite region. colors is the sheet-wide catalog and
// pal the palette map; layered packing ignores pal, packed modes ignore
// the catalog beyond what pal already encodes.
type Codec interface {
	Pack(m *image.NRGBA, colors []raster.Color, pal palette.Map) []Array
}

// Layered emits one bitmask plane per catalog color. Bit 15-(x mod 16)
// of word x/16 in a row is set iff the pixel is opaque and matches the
// layer color exactly.
type Layered struct{}

// Pack implements Codec.
func (Layered) Pack(m *image.NRGBA, colors []raster.Color, _ palette.Map) []Array {
	b := m.Bounds()
	wordsPerRow := (b.Dx() + 15) / 16

	arrays := make([]Array, 0, len(colors))
	for layer, c := range colors {
		words := make([]uint16, 0, wordsPerRow*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := make([]uint16, wordsPerRow)
			for x := b.Min.X; x < b.Max.X; x++ {
				px := m.NRGBAAt(x, y)
				if px.A > 0 && px.R == c.R && px.G == c.G && px.B == c.B {
					row[(x-b.Min.X)/16] |= 1 << uint(15-(x-b.Min.X)%16)
				}
			}
			words = append(words, row...)
		}
		arrays = append(arrays, Array{
			Suffix: fmt.Sprintf("LAYER_%d", layer),
			Words:  words,
		})
	}
	return arrays
}

// Packed emits palette indices at Bits bits per pixel, little-endian
// within each row byte. Transparent pixels encode index 0.
type Packed struct {
	Bits int
}

// Pack implements Codec.
func (p Packed) Pack(m *image.NRGBA, _ []raster.Color, pal palette.Map) []Array {
	b := m.Bounds()
	mask := uint8(1<<uint(p.Bits) - 1)
	// Byte stride is computed per row from the pixel width; codecs must
	// not share a precomputed stride.
	stride := (b.Dx()*p.Bits + 7) / 8

	var words []uint16
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]byte, stride)
		for x := b.Min.X; x < b.Max.X; x++ {
			px := m.NRGBAAt(x, y)
			var idx uint8
			if px.A > 0 {
				idx = pal.Lookup(raster.Color{R: px.R, G: px.G, B: px.B})
			}
			bit := (x - b.Min.X) * p.Bits
			row[bit>>3] |= (idx & mask) << uint(bit&7)
		}
		words = append(words, packWords(row)...)
	}
	return []Array{{
		Suffix: fmt.Sprintf("%dBPP", p.Bits),
		Words:  words,
	}}
}

// packWords pairs bytes into words, low byte first, zero-padding an odd
// trailing byte.
func packWords(b []byte) []uint16 {
	words := make([]uint16, 0, (len(b)+1)/2)
	for i := 0; i < len(b); i += 2 {
		w := uint16(b[i])
		if i+1 < len(b) {
			w |= uint16(b[i+1]) << 8
		}
		words = append(words, w)
	}
	return words
}
