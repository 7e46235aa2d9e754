package spritec

import (
	"fmt"

	"github.com/pixelroot32/spritec/codec"
	"github.com/pixelroot32/spritec/palette"
)

// Mode selects the packing codec.
type Mode int

const (
	// ModeLayered emits one bitmask plane per distinct color.
	ModeLayered Mode = iota
	// Mode2BPP packs 2-bit palette indices, 3 colors plus transparency.
	Mode2BPP
	// Mode4BPP packs 4-bit palette indices, 15 colors plus transparency.
	Mode4BPP
)

// ParseMode maps the textual mode selector onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "layered":
		return ModeLayered, nil
	case "2bpp":
		return Mode2BPP, nil
	case "4bpp":
		return Mode4BPP, nil
	}
	return 0, fmt.Errorf("spritec: unsupported mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeLayered:
		return "layered"
	case Mode2BPP:
		return "2bpp"
	case Mode4BPP:
		return "4bpp"
	}
	return "unknown"
}

// packed reports whether m stores palette indices rather than layers.
func (m Mode) packed() bool {
	return m == Mode2BPP || m == Mode4BPP
}

// maxColors is the palette capacity of a packed mode, 0 for layered.
func (m Mode) maxColors() int {
	switch m {
	case Mode2BPP:
		return palette.Max2BPP
	case Mode4BPP:
		return palette.Max4BPP
	}
	return 0
}

func (m Mode) codec() (codec.Codec, error) {
	switch m {
	case ModeLayered:
		return codec.Layered{}, nil
	case Mode2BPP:
		return codec.Packed{Bits: 2}, nil
	case Mode4BPP:
		return codec.Packed{Bits: 4}, nil
	}
	return nil, fmt.Errorf("spritec: unsupported mode %d", int(m))
}
