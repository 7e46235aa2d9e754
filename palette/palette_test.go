package palette_test

import (
	"testing"

	"github.com/pixelroot32/spritec/palette"
	"github.com/pixelroot32/spritec/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignWithinCapacity(t *testing.T) {
	colors := []raster.Color{{R: 1}, {R: 2}, {R: 3}}
	m := palette.Assign(colors, palette.Max4BPP)

	for i, c := range colors {
		assert.Equal(t, uint8(i+1), m.Lookup(c))
	}
}

func TestAssignOverflowCollapsesToLastIndex(t *testing.T) {
	colors := []raster.Color{{R: 1}, {R: 2}, {R: 3}, {R: 4}, {R: 5}}
	m := palette.Assign(colors, palette.Max2BPP)

	got := make([]uint8, len(colors))
	for i, c := range colors {
		got[i] = m.Lookup(c)
	}
	assert.Equal(t, []uint8{1, 2, 3, 3, 3}, got)
}

func TestLookupUnmappedIsTransparent(t *testing.T) {
	m := palette.Assign([]raster.Color{{R: 1}}, palette.Max2BPP)
	assert.Equal(t, uint8(0), m.Lookup(raster.Color{R: 99}))
}

func TestMaxIndex(t *testing.T) {
	assert.Equal(t, uint8(0), palette.Map{}.MaxIndex())

	m := palette.Assign([]raster.Color{{R: 1}, {R: 2}}, palette.Max4BPP)
	assert.Equal(t, uint8(2), m.MaxIndex())

	m = palette.Assign([]raster.Color{{R: 1}, {R: 2}, {R: 3}, {R: 4}}, palette.Max2BPP)
	assert.Equal(t, uint8(3), m.MaxIndex())
}

func TestPredefinedNames(t *testing.T) {
	names := palette.Names()
	assert.Equal(t, []string{
		"PALETTE_GB",
		"PALETTE_GBC",
		"PALETTE_NES",
		"PALETTE_PICO8",
		"PALETTE_PR32",
	}, names)
}

func TestPredefinedColors(t *testing.T) {
	require.Len(t, palette.Colors("PALETTE_NES"), 16)
	require.Len(t, palette.Colors("PALETTE_GB"), 4)
	assert.Nil(t, palette.Colors("PALETTE_FAKE"))
}

func TestPredefinedColorsReturnsCopy(t *testing.T) {
	a := palette.Colors("PALETTE_GB")
	a[0] = raster.Color{R: 0xff}
	b := palette.Colors("PALETTE_GB")
	assert.NotEqual(t, a[0], b[0])
}
