package grid

import (
	"image"

	"github.com/pixelroot32/spritec/raster"
)

// Content confined to the first two grid rows switches detection into
// vertical-strip mode. The threshold matches the common 1-2 row
// animation strip layout and is deliberately not configurable.
const stripRowLimit = 1

// DetectRegions infers sprite regions from pixel opacity given a cell
// size. The returned offset is the top-left corner of the opaque
// bounding box and should be installed into the Spec the regions are
// used with. A fully transparent image yields no regions.
//
// When the occupied rows fit within the strip limit, each column emits
// one region per maximal run of occupied rows, skipping empty cells.
// Otherwise every cell of the bounding-box grid becomes a 1x1 region
// regardless of occupancy.
func DetectRegions(m *image.NRGBA, cellW, cellH int) ([]Region, image.Point) {
	bbox, ok := raster.OpaqueBounds(m)
	if !ok {
		return nil, image.Point{}
	}

	columns := bbox.Dx() / cellW
	if columns < 1 {
		columns = 1
	}
	rows := bbox.Dy() / cellH
	if rows < 1 {
		rows = 1
	}

	occupied := make([]bool, rows)
	maxOccupied := -1
	for gy := 0; gy < rows; gy++ {
		r := rowRect(bbox, gy, cellH)
		if raster.AnyOpaque(m, r) {
			occupied[gy] = true
			maxOccupied = gy
		}
	}

	var regions []Region

	if maxOccupied <= stripRowLimit {
		for gx := 0; gx < columns; gx++ {
			x0 := bbox.Min.X + gx*cellW
			colRows := make([]bool, maxOccupied+1)
			for gy := range colRows {
				r := rowRect(bbox, gy, cellH)
				r.Min.X = x0
				r.Max.X = x0 + cellW
				colRows[gy] = raster.AnyOpaque(m, r)
			}
			for gy := 0; gy < len(colRows); {
				if !colRows[gy] {
					gy++
					continue
				}
				start := gy
				for gy < len(colRows) && colRows[gy] {
					gy++
				}
				regions = append(regions, Region{
					X:     gx,
					Y:     start,
					W:     1,
					H:     gy - start,
					Index: len(regions),
				})
			}
		}
	} else {
		for gy := 0; gy < rows; gy++ {
			for gx := 0; gx < columns; gx++ {
				regions = append(regions, Region{
					X:     gx,
					Y:     gy,
					W:     1,
					H:     1,
					Index: len(regions),
				})
			}
		}
	}

	return regions, bbox.Min
}

// rowRect is the slice of bbox covered by grid row gy, clipped to the
// bottom of the box.
func rowRect(bbox image.Rectangle, gy, cellH int) image.Rectangle {
	y0 := bbox.Min.Y + gy*cellH
	y1 := y0 + cellH
	if y1 > bbox.Max.Y {
		y1 = bbox.Max.Y
	}
	return image.Rect(bbox.Min.X, y0, bbox.Max.X, y1)
}
