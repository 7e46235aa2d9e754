/*
Package raster implements read-only pixel queries over a decoded RGBA
sprite sheet: the distinct opaque color catalog, the opaque bounding box
and fixed-size region extraction.

A pixel is opaque iff its alpha channel is greater than zero; partial
alpha is never blended. Colors sort ascending by red, then green, then
blue channel. This order is load-bearing: it fixes both layer numbering
and palette index assignment downstream, so any two compiles of the same
sheet see the same catalog.
*/
package raster

import (
	"image"
	"image/draw"
	"sort"
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// Less reports whether c sorts before d in the canonical catalog order.
func (c Color) Less(d Color) bool {
	if c.R != d.R {
		return c.R < d.R
	}
	if c.G != d.G {
		return c.G < d.G
	}
	return c.B < d.B
}

// Clone copies an arbitrary image into a straight-alpha NRGBA buffer.
func Clone(m image.Image) *image.NRGBA {
	if p, ok := m.(*image.NRGBA); ok {
		return p
	}
	b := m.Bounds()
	p := image.NewNRGBA(b)
	draw.Draw(p, b, m, b.Min, draw.Src)
	return p
}

// Catalog returns the distinct colors of all opaque pixels in m, in the
// canonical ascending order. Transparent pixels contribute nothing.
func Catalog(m *image.NRGBA) []Color {
	seen := make(map[Color]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := m.NRGBAAt(x, y)
			if px.A > 0 {
				seen[Color{px.R, px.G, px.B}] = struct{}{}
			}
		}
	}
	colors := make([]Color, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Less(colors[j]) })
	return colors
}

// OpaqueBounds returns the smallest rectangle enclosing every opaque
// pixel of m. ok is false for a fully transparent image.
func OpaqueBounds(m *image.NRGBA) (r image.Rectangle, ok bool) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.NRGBAAt(x, y).A == 0 {
				continue
			}
			if !ok {
				r = image.Rect(x, y, x+1, y+1)
				ok = true
				continue
			}
			if x < r.Min.X {
				r.Min.X = x
			}
			if x+1 > r.Max.X {
				r.Max.X = x + 1
			}
			if y < r.Min.Y {
				r.Min.Y = y
			}
			if y+1 > r.Max.Y {
				r.Max.Y = y + 1
			}
		}
	}
	return
}

// AnyOpaque reports whether r contains at least one opaque pixel. Parts
// of r outside m count as transparent.
func AnyOpaque(m *image.NRGBA, r image.Rectangle) bool {
	r = r.Intersect(m.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.NRGBAAt(x, y).A > 0 {
				return true
			}
		}
	}
	return false
}

// ExtractRegion copies r out of m into a new buffer of exactly r's
// size, anchored at (0, 0). Pixels of r lying outside m stay fully
// transparent, so the result is never truncated.
func ExtractRegion(m *image.NRGBA, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	src := r.Intersect(m.Bounds())
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			dst.SetNRGBA(x-r.Min.X, y-r.Min.Y, m.NRGBAAt(x, y))
		}
	}
	return dst
}
