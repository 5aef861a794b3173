package canvas

import (
	"bytes"
	"image"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// DefaultFormat is the format used when callers pass an empty format name.
const DefaultFormat = "png"

// Encoder serializes an image to a writer in one specific format.
type Encoder func(w io.Writer, img image.Image) error

var (
	encodersMu sync.RWMutex
	encoders   = map[string]Encoder{}
)

func init() {
	Register("png", imagingEncoder(imaging.PNG))
	Register("jpg", imagingEncoder(imaging.JPEG, imaging.JPEGQuality(95)))
	Register("jpeg", imagingEncoder(imaging.JPEG, imaging.JPEGQuality(95)))
	Register("gif", imagingEncoder(imaging.GIF))
	Register("bmp", imagingEncoder(imaging.BMP))
	Register("tif", imagingEncoder(imaging.TIFF))
	Register("tiff", imagingEncoder(imaging.TIFF))
}

// imagingEncoder adapts an imaging format constant to an Encoder.
func imagingEncoder(format imaging.Format, opts ...imaging.EncodeOption) Encoder {
	return func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, format, opts...)
	}
}

// Register adds or replaces the encoder for a format name. Names are
// matched case-insensitively. Register allows callers to extend the
// encoder set beyond the built-in formats.
func Register(format string, enc Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	encoders[strings.ToLower(format)] = enc
}

// Formats returns the sorted names of all registered encoders. The result
// is a snapshot; every name in it is usable with [Canvas.Bytes] and
// [Canvas.Encode]. The built-in set always includes "png".
func Formats() []string {
	encodersMu.RLock()
	defer encodersMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup resolves a format name to its encoder. An empty name selects
// DefaultFormat. Unknown names yield an UNSUPPORTED_FORMAT error.
func lookup(format string) (Encoder, error) {
	if format == "" {
		format = DefaultFormat
	}

	encodersMu.RLock()
	enc, ok := encoders[strings.ToLower(format)]
	encodersMu.RUnlock()

	if !ok {
		return nil, qerrors.New(qerrors.ErrCodeUnsupportedFormat, "no encoder registered for format %q", format)
	}
	return enc, nil
}

// Encode serializes the canvas to w in the named format. An empty format
// selects DefaultFormat. When no encoder is registered for the format,
// Encode fails with an UNSUPPORTED_FORMAT error without writing to w.
func (c *Canvas) Encode(w io.Writer, format string) error {
	enc, err := lookup(format)
	if err != nil {
		return err
	}
	return enc(w, c.img)
}

// Bytes encodes the canvas in the named format and returns the encoded
// bytes. An empty format selects DefaultFormat.
func (c *Canvas) Bytes(format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
