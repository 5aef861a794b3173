package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Matrix is a square grid of QR modules. Module reports whether the module
// at (x, y) is dark. Coordinates outside [0, Size) are light.
//
// The matrix carries no quiet zone; the renderer adds it.
type Matrix interface {
	Size() int
	Module(x, y int) bool
}

// Level is the error-correction level requested from the symbol encoder.
type Level int

// Recovery levels, in increasing order of redundancy.
const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
	LevelHighest
)

// String returns the level's lowercase name.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelHighest:
		return "highest"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name as accepted on the CLI and HTTP surface.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return LevelLow, nil
	case "medium", "m", "":
		return LevelMedium, nil
	case "high", "q":
		return LevelHigh, nil
	case "highest", "h":
		return LevelHighest, nil
	default:
		return 0, qerrors.New(qerrors.ErrCodeInvalidInput, "invalid recovery level %q (want low, medium, high, or highest)", s)
	}
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelHigh:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// bitmapMatrix adapts a row-major boolean grid to Matrix.
type bitmapMatrix [][]bool

func (m bitmapMatrix) Size() int { return len(m) }

func (m bitmapMatrix) Module(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// Encode produces the module matrix for data at the given recovery level.
// All symbol encoding is delegated to skip2/go-qrcode; the library's own
// border is disabled since the renderer adds the quiet zone itself.
func Encode(data string, level Level) (Matrix, error) {
	if err := qerrors.ValidateData(data); err != nil {
		return nil, err
	}

	code, err := qrcode.New(data, level.recovery())
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "encoding QR symbol")
	}
	code.DisableBorder = true
	return bitmapMatrix(code.Bitmap()), nil
}
