package spritec

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// reduceColors remaps every opaque pixel of m onto a median-cut palette
// of at most max colors. Transparent pixels keep zero alpha so the
// packed codecs still see index 0 for them.
func reduceColors(m *image.NRGBA, max int) *image.NRGBA {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, max), m)
	if len(p) == 0 {
		return m
	}

	b := m.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := m.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			r, g, bl, _ := p.Convert(color.NRGBA{R: px.R, G: px.G, B: px.B, A: 0xff}).RGBA()
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
				A: px.A,
			})
		}
	}
	return out
}
