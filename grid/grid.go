/*
Package grid models the cell tiling applied to a sprite sheet and the
heuristics that guess it: cell size inference from the sheet width and
automatic sprite region detection from pixel opacity.

Both heuristics are starting points, not guarantees; callers are
expected to let the user correct the result.
*/
package grid

import (
	"errors"
	"image"
)

// Spec is the cell tiling of a sheet. The offset is applied in pixels
// before any grid-unit addressing.
type Spec struct {
	CellW, CellH     int
	OffsetX, OffsetY int
}

// Validate checks the cell size is usable.
func (s Spec) Validate() error {
	if s.CellW <= 0 || s.CellH <= 0 {
		return errors.New("grid: cell size must be positive")
	}
	return nil
}

// Region is one sprite in grid units: position (X, Y) and extent
// (W, H) cells. Index drives the generated array names.
type Region struct {
	X, Y  int
	W, H  int
	Index int
}

// PixelRect returns the source rectangle of r under s.
func (r Region) PixelRect(s Spec) image.Rectangle {
	x := s.OffsetX + r.X*s.CellW
	y := s.OffsetY + r.Y*s.CellH
	return image.Rect(x, y, x+r.W*s.CellW, y+r.H*s.CellH)
}

// Cell sizes tried in order before falling back to the largest divisor.
var preferredCells = [...]int{16, 32, 8, 24, 48, 64}

// InferCellSize guesses a square cell size for a sheet of the given
// width. A positive targetCount that evenly divides the width wins
// outright. Otherwise the first preferred size dividing the width is
// chosen, then the largest divisor of at least 8, then the width itself.
func InferCellSize(width, targetCount int) int {
	if targetCount > 0 && width%targetCount == 0 {
		return width / targetCount
	}

	divisors := make(map[int]struct{})
	for d := 8; d <= width; d++ {
		if width%d == 0 {
			divisors[d] = struct{}{}
		}
	}

	for _, p := range preferredCells {
		if _, ok := divisors[p]; ok {
			return p
		}
	}

	best := 0
	for d := range divisors {
		if d > best {
			best = d
		}
	}
	if best == 0 {
		return width
	}
	return best
}
