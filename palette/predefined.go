package palette

import "github.com/pixelroot32/spritec/raster"

// The predefined palettes are fixed at build time and only ever read.
// Order within each palette is the intended index order, not the
// canonical catalog sort.
var predefined = map[string][]raster.Color{
	"PALETTE_NES": {
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0xfc, G: 0xfc, B: 0xfc},
		{R: 0xf8, G: 0xf8, B: 0xf8},
		{R: 0xbc, G: 0xbc, B: 0xbc},
		{R: 0x7c, G: 0x7c, B: 0x7c},
		{R: 0xa4, G: 0x00, B: 0x00},
		{R: 0xe4, G: 0x00, B: 0x58},
		{R: 0xf8, G: 0x38, B: 0x00},
		{R: 0xe4, G: 0x5c, B: 0x10},
		{R: 0xac, G: 0x7c, B: 0x00},
		{R: 0x00, G: 0xb8, B: 0x00},
		{R: 0x00, G: 0xa8, B: 0x44},
		{R: 0x00, G: 0x88, B: 0x88},
		{R: 0x00, G: 0x78, B: 0xf8},
		{R: 0x68, G: 0x44, B: 0xfc},
		{R: 0xd8, G: 0x28, B: 0x78},
	},
	"PALETTE_GB": {
		{R: 0x0f, G: 0x38, B: 0x0f},
		{R: 0x30, G: 0x62, B: 0x30},
		{R: 0x8b, G: 0xac, B: 0x0f},
		{R: 0x9b, G: 0xbc, B: 0x0f},
	},
	"PALETTE_GBC": {
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0xff, G: 0xff, B: 0xff},
		{R: 0x7b, G: 0x7b, B: 0x7b},
		{R: 0xc6, G: 0xc6, B: 0xc6},
		{R: 0xff, G: 0x00, B: 0x00},
		{R: 0xff, G: 0x7b, B: 0x00},
		{R: 0xff, G: 0xff, B: 0x00},
		{R: 0x00, G: 0xff, B: 0x00},
		{R: 0x00, G: 0xff, B: 0xff},
		{R: 0x00, G: 0x00, B: 0xff},
		{R: 0x7b, G: 0x00, B: 0xff},
		{R: 0xff, G: 0x00, B: 0xff},
		{R: 0x7b, G: 0x39, B: 0x00},
		{R: 0x00, G: 0x7b, B: 0x00},
		{R: 0x00, G: 0x00, B: 0x7b},
		{R: 0xff, G: 0xc6, B: 0x7b},
	},
	"PALETTE_PICO8": {
		{R: 0x00, G: 0x00, B: 0x00},
		{R: 0x1d, G: 0x2b, B: 0x53},
		{R: 0x7e, G: 0x25, B: 0x53},
		{R: 0x00, G: 0x87, B: 0x51},
		{R: 0xab, G: 0x52, B: 0x36},
		{R: 0x5f, G: 0x57, B: 0x4f},
		{R: 0xc2, G: 0xc3, B: 0xc7},
		{R: 0xff, G: 0xf1, B: 0xe8},
		{R: 0xff, G: 0x00, B: 0x4d},
		{R: 0xff, G: 0xa3, B: 0x00},
		{R: 0xff, G: 0xec, B: 0x27},
		{R: 0x00, G: 0xe4, B: 0x36},
		{R: 0x29, G: 0xad, B: 0xff},
		{R: 0x83, G: 0x76, B: 0x9c},
		{R: 0xff, G: 0x77, B: 0xa8},
		{R: 0xff, G: 0xcc, B: 0xaa},
	},
	"PALETTE_PR32": {
		{R: 0x14, G: 0x0c, B: 0x1c},
		{R: 0x44, G: 0x24, B: 0x34},
		{R: 0x30, G: 0x34, B: 0x6d},
		{R: 0x4e, G: 0x4a, B: 0x4e},
		{R: 0x85, G: 0x4c, B: 0x30},
		{R: 0x34, G: 0x65, B: 0x24},
		{R: 0xd0, G: 0x46, B: 0x48},
		{R: 0x75, G: 0x71, B: 0x61},
		{R: 0x59, G: 0x7d, B: 0xce},
		{R: 0xd2, G: 0x7d, B: 0x2c},
		{R: 0x85, G: 0x95, B: 0xa1},
		{R: 0x6d, G: 0xaa, B: 0x2c},
		{R: 0xd2, G: 0xaa, B: 0x99},
		{R: 0x6d, G: 0xc2, B: 0xca},
		{R: 0xda, G: 0xd4, B: 0x5e},
		{R: 0xde, G: 0xee, B: 0xd6},
	},
}
