package canvas

import (
	"image/color"
	"strconv"
	"strings"

	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Color is a packed 32-bit ARGB color value (0xAARRGGBB).
// An alpha of 0xFF is fully opaque.
type Color uint32

// Common colors.
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs the three channels into a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// NRGBA unpacks the color into its non-premultiplied stdlib representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// ParseColor parses a hex color string into a Color.
// Accepted forms are "RRGGBB" and "AARRGGBB", with an optional leading "#".
// Six-digit colors are fully opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var opaque Color
	switch len(hex) {
	case 6:
		opaque = 0xFF000000
	case 8:
		// alpha included
	default:
		return 0, qerrors.New(qerrors.ErrCodeInvalidColor, "invalid color %q: want RRGGBB or AARRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, qerrors.New(qerrors.ErrCodeInvalidColor, "invalid color %q: not hexadecimal", s)
	}
	return Color(v) | opaque, nil
}
