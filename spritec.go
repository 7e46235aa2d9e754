/*
Package spritec compiles sprite sheet images into C header files for the
PixelRoot32 display pipeline.

A sheet is tiled by a grid, sprite regions are cut out in grid units and
each region is packed into fixed-width integer arrays in one of three
modes: one bitmask plane per color (layered), or 2/4 bits of palette
index per pixel (packed). The resulting arrays are written as a single
header document whose byte layout is the contract with the firmware.
*/
package spritec

import "log"

// Compiler compiles sprite sheets. The catalog database is optional;
// when present every successful file compile is recorded in it.
type Compiler struct {
	db     *CompileDB
	logger *log.Logger
}

// New returns a Compiler recording into db, which may be nil.
func New(db *CompileDB, logger *log.Logger) *Compiler {
	return &Compiler{
		db:     db,
		logger: logger,
	}
}
