/*
Package palette assigns catalog colors to the small integer indices used
by the packed sprite codecs, and carries the predefined console
palettes shipped with the compiler.

Index 0 is reserved for transparency and is never assigned to a color.
Catalog order is preserved: the i-th color receives index i+1 while it
fits, and every color beyond the capacity collapses onto the last valid
index. The collapse is lossy; callers surface it as a warning, not an
error.
*/
package palette

import (
	"sort"

	"github.com/pixelroot32/spritec/raster"
)

// Assignable colors per packed mode, excluding the transparent index.
const (
	Max2BPP = 3
	Max4BPP = 15
)

// Map takes a color to its 1-based palette index.
type Map map[raster.Color]uint8

// Assign builds a Map over colors, which must already be in catalog
// order. max is the number of assignable indices; extra colors all map
// to max.
func Assign(colors []raster.Color, max int) Map {
	m := make(Map, len(colors))
	for i, c := range colors {
		if i < max {
			m[c] = uint8(i + 1)
		} else {
			m[c] = uint8(max)
		}
	}
	return m
}

// Lookup returns the index assigned to c, or 0 if c is unmapped.
func (m Map) Lookup(c raster.Color) uint8 {
	return m[c]
}

// MaxIndex returns the highest assigned index, or 0 for an empty map.
func (m Map) MaxIndex() uint8 {
	var max uint8
	for _, i := range m {
		if i > max {
			max = i
		}
	}
	return max
}

// Names returns the predefined palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns a copy of the named predefined palette, or nil if no
// such palette exists.
func Colors(name string) []raster.Color {
	p, ok := predefined[name]
	if !ok {
		return nil
	}
	out := make([]raster.Color, len(p))
	copy(out, p)
	return out
}
