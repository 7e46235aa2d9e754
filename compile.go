package spritec

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"

	"github.com/pixelroot32/spritec/grid"
	"github.com/pixelroot32/spritec/header"
	"github.com/pixelroot32/spritec/palette"
	"github.com/pixelroot32/spritec/raster"
)

// More layers than this in layered mode still compiles but the firmware
// redraws one plane per layer, so flag it.
const layerWarnLimit = 4

// Options configures one compile call.
type Options struct {
	// Grid is the cell tiling. A zero cell size triggers automatic
	// inference from the sheet width.
	Grid grid.Spec
	// Mode selects the packing codec.
	Mode Mode
	// NamePrefix, when set, prefixes every generated array name.
	NamePrefix string
	// TargetColumns biases grid inference towards this many sprites per
	// row. Ignored unless it evenly divides the sheet width.
	TargetColumns int
	// Reduce quantizes the sheet down to the mode's color capacity
	// before compiling instead of collapsing overflow colors onto the
	// last palette index.
	Reduce bool
}

// Result is the outcome of a successful compile. Warnings hold the
// recoverable conditions encountered, in detection order.
type Result struct {
	Header   []byte
	Warnings []string
	Sprites  int
	Colors   int
}

// Compile compiles an already-decoded sprite sheet into header text.
// regions may be nil to auto-detect sprites from pixel opacity; an
// explicit empty list is an error. The computation is deterministic:
// identical inputs produce byte-identical output.
func (c *Compiler) Compile(m image.Image, regions []grid.Region, opts Options) (*Result, error) {
	if m == nil {
		return nil, errors.New("spritec: no image")
	}
	img := raster.Clone(m)

	if opts.Grid.CellW == 0 && opts.Grid.CellH == 0 {
		size := grid.InferCellSize(img.Bounds().Dx(), opts.TargetColumns)
		opts.Grid.CellW, opts.Grid.CellH = size, size
		c.logger.Printf("auto-detected grid size %dx%d", size, size)
	}
	if err := opts.Grid.Validate(); err != nil {
		return nil, err
	}

	cdc, err := opts.Mode.codec()
	if err != nil {
		return nil, err
	}

	if regions == nil {
		var off image.Point
		regions, off = grid.DetectRegions(img, opts.Grid.CellW, opts.Grid.CellH)
		opts.Grid.OffsetX, opts.Grid.OffsetY = off.X, off.Y
		c.logger.Printf("auto-detected %d sprite(s), offset %d,%d", len(regions), off.X, off.Y)
	} else {
		if len(regions) == 0 {
			return nil, errors.New("spritec: no sprite regions defined")
		}
		for _, r := range regions {
			if r.W <= 0 || r.H <= 0 {
				return nil, fmt.Errorf("spritec: sprite %d: extent must be positive", r.Index)
			}
		}
	}

	if opts.Reduce {
		capacity := opts.Mode.maxColors()
		if capacity == 0 {
			capacity = layerWarnLimit
		}
		if len(raster.Catalog(img)) > capacity {
			img = reduceColors(img, capacity)
			c.logger.Printf("reduced sheet to %d colors", capacity)
		}
	}

	colors := raster.Catalog(img)

	var warnings []string
	var pal palette.Map
	if opts.Mode.packed() {
		max := opts.Mode.maxColors()
		if len(colors) > max {
			w := fmt.Sprintf("detected %d colors but %s supports at most %d plus transparency; extra colors collapse to palette index %d",
				len(colors), opts.Mode, max, max)
			warnings = append(warnings, w)
			c.logger.Printf("WARNING: %s", w)
		}
		pal = palette.Assign(colors, max)
	} else if len(colors) > layerWarnLimit {
		w := fmt.Sprintf("detected %d colors (layers); more than %d layers may degrade performance on ESP32, consider 4bpp packed sprites",
			len(colors), layerWarnLimit)
		warnings = append(warnings, w)
		c.logger.Printf("WARNING: %s", w)
	}

	buf := new(bytes.Buffer)
	hw := header.NewWriter(buf)

	hw.Comment("Generated by spritec")
	hw.Comment("Engine: PixelRoot32")
	hw.Comment("Mode: %s", opts.Mode)
	hw.Blank()

	if opts.Mode.packed() {
		hw.Comment("Palette (%d colors + transparent):", len(pal))
		hw.Comment("Index 0: Transparent")
		// Overflow maps several colors onto one index; list the first
		// catalog color per index only.
		for i := 1; i <= int(pal.MaxIndex()); i++ {
			for _, col := range colors {
				if int(pal.Lookup(col)) == i {
					hw.Comment("Index %d: RGB(%d, %d, %d)", i, col.R, col.G, col.B)
					break
				}
			}
		}
		hw.Blank()
	}

	for _, r := range regions {
		sprite := raster.ExtractRegion(img, r.PixelRect(opts.Grid))
		for _, arr := range cdc.Pack(sprite, colors, pal) {
			name := fmt.Sprintf("SPRITE_%d_%s", r.Index, arr.Suffix)
			if opts.NamePrefix != "" {
				name = opts.NamePrefix + "_" + name
			}
			hw.Array(name, arr.Words)
		}
	}

	if err := hw.Flush(); err != nil {
		return nil, err
	}

	return &Result{
		Header:   buf.Bytes(),
		Warnings: warnings,
		Sprites:  len(regions),
		Colors:   len(colors),
	}, nil
}

// CompileSheet decodes the sheet at input, compiles it and writes the
// header to output in one shot, so a failed compile never leaves a
// partial file behind. The compile is recorded in the catalog database
// when one is attached.
func (c *Compiler) CompileSheet(input, output string, regions []grid.Region, opts Options) (*Result, error) {
	if output == "" {
		return nil, errors.New("spritec: empty output path")
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, fmt.Errorf("spritec: decode %s: %v", input, err)
	}

	res, err := c.Compile(m, regions, opts)
	if err != nil {
		return nil, err
	}

	if err := ioutil.WriteFile(output, res.Header, 0644); err != nil {
		return nil, err
	}

	if c.db != nil {
		if err := c.db.Record(CompileRecord{
			SHA1:     fmt.Sprintf("%X", h.Sum(nil)),
			Input:    input,
			Output:   output,
			Mode:     opts.Mode.String(),
			Sprites:  res.Sprites,
			Colors:   res.Colors,
			Warnings: len(res.Warnings),
		}); err != nil {
			return nil, err
		}
	}

	return res, nil
}
