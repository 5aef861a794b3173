package qr

import (
	"github.com/pixelforge/qrcanvas/pkg/canvas"
	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Default rendering parameters.
const (
	DefaultModuleSize   = 8    // pixels per module
	DefaultQuietZone    = 4    // modules of border, per the QR standard
	DefaultCornerRatio  = 0.35 // corner radius as a fraction of module size
	maxModuleSize       = 256
	maxQuietZoneModules = 64
)

// Options controls how a matrix is rendered.
// The zero value renders black-on-white squares at DefaultModuleSize with
// the standard quiet zone.
type Options struct {
	ModuleSize int  // pixels per module; 0 means DefaultModuleSize
	QuietZone  int  // border width in modules; -1 disables, 0 means DefaultQuietZone
	Rounded    bool // draw modules with rounded corners

	// CornerRatio is the rounded-corner radius as a fraction of the module
	// size, in (0, 0.5]. 0 means DefaultCornerRatio. Ignored unless Rounded.
	CornerRatio float64

	Foreground canvas.Color // dark modules; 0 means canvas.Black
	Background canvas.Color // light modules and quiet zone; 0 means canvas.White
}

// withDefaults fills in zero-value fields.
func (o Options) withDefaults() Options {
	if o.ModuleSize == 0 {
		o.ModuleSize = DefaultModuleSize
	}
	switch o.QuietZone {
	case 0:
		o.QuietZone = DefaultQuietZone
	case -1:
		o.QuietZone = 0
	}
	if o.CornerRatio == 0 {
		o.CornerRatio = DefaultCornerRatio
	}
	if o.Foreground == 0 {
		o.Foreground = canvas.Black
	}
	if o.Background == 0 {
		o.Background = canvas.White
	}
	return o
}

// validate checks an already-defaulted Options.
func (o Options) validate() error {
	if o.ModuleSize < 1 || o.ModuleSize > maxModuleSize {
		return qerrors.New(qerrors.ErrCodeInvalidInput, "module size %d out of range [1, %d]", o.ModuleSize, maxModuleSize)
	}
	if o.QuietZone < 0 || o.QuietZone > maxQuietZoneModules {
		return qerrors.New(qerrors.ErrCodeInvalidInput, "quiet zone %d out of range [0, %d]", o.QuietZone, maxQuietZoneModules)
	}
	if o.CornerRatio < 0 || o.CornerRatio > 0.5 {
		return qerrors.New(qerrors.ErrCodeInvalidInput, "corner ratio %g out of range (0, 0.5]", o.CornerRatio)
	}
	return nil
}

// ImageSize returns the pixel dimension of the square image Render would
// produce for m with the given options.
func ImageSize(m Matrix, opts Options) int {
	opts = opts.withDefaults()
	return (m.Size() + 2*opts.QuietZone) * opts.ModuleSize
}

// Render draws the matrix onto a fresh canvas: background fill first, then
// one filled square per dark module, offset by the quiet zone.
func Render(m Matrix, opts Options) (*canvas.Canvas, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	dim := (m.Size() + 2*opts.QuietZone) * opts.ModuleSize
	c, err := canvas.New(dim, dim)
	if err != nil {
		return nil, err
	}
	c.Fill(opts.Background)

	radius := int(float64(opts.ModuleSize) * opts.CornerRatio)
	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if !m.Module(x, y) {
				continue
			}
			px := (x + opts.QuietZone) * opts.ModuleSize
			py := (y + opts.QuietZone) * opts.ModuleSize
			if opts.Rounded {
				c.FillRoundRect(px, py, opts.ModuleSize, opts.ModuleSize, radius, opts.Foreground)
			} else {
				c.FillRect(px, py, opts.ModuleSize, opts.ModuleSize, opts.Foreground)
			}
		}
	}
	return c, nil
}

// RenderStamped draws the matrix by compositing stamp onto a fresh canvas
// once per dark module. The stamp must be square; its side length becomes
// the module size, overriding opts.ModuleSize. Rounded and CornerRatio are
// ignored since the stamp already carries the module's appearance.
func RenderStamped(m Matrix, stamp *canvas.Canvas, opts Options) (*canvas.Canvas, error) {
	if stamp == nil {
		return nil, qerrors.New(qerrors.ErrCodeInvalidInput, "stamp canvas is nil")
	}
	if stamp.Width() != stamp.Height() {
		return nil, qerrors.New(qerrors.ErrCodeInvalidInput, "stamp must be square, got %dx%d", stamp.Width(), stamp.Height())
	}

	opts.ModuleSize = stamp.Width()
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	dim := (m.Size() + 2*opts.QuietZone) * opts.ModuleSize
	c, err := canvas.New(dim, dim)
	if err != nil {
		return nil, err
	}
	c.Fill(opts.Background)

	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if !m.Module(x, y) {
				continue
			}
			px := (x + opts.QuietZone) * opts.ModuleSize
			py := (y + opts.QuietZone) * opts.ModuleSize
			c.DrawImage(stamp, px, py)
		}
	}
	return c, nil
}
