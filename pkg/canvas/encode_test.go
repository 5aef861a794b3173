package canvas

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"testing"

	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

func TestBytesPNGDecodable(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"square", 48, 48},
		{"single pixel", 1, 1},
		{"wide", 120, 7},
		{"tall", 7, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width, tt.height)
			if err != nil {
				t.Fatal(err)
			}

			data, err := c.Bytes("png")
			if err != nil {
				t.Fatalf("Bytes(png) error: %v", err)
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decoding PNG: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestBytesDefaultFormatIsPNG(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(Black)

	def, err := c.Bytes("")
	if err != nil {
		t.Fatalf("Bytes(\"\") error: %v", err)
	}
	explicit, err := c.Bytes("png")
	if err != nil {
		t.Fatalf("Bytes(png) error: %v", err)
	}
	if !bytes.Equal(def, explicit) {
		t.Error("default format output differs from explicit png output")
	}
}

func TestEncodeMatchesBytes(t *testing.T) {
	c, err := New(25, 25)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(White)
	c.FillRect(5, 5, 10, 10, Black)

	var buf bytes.Buffer
	if err := c.Encode(&buf, "png"); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	data, err := c.Bytes("png")
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("Encode and Bytes produced different output for identical canvas")
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = c.Encode(&buf, "bogus-format-xyz")
	if err == nil {
		t.Fatal("Encode with bogus format should fail")
	}
	if !qerrors.Is(err, qerrors.ErrCodeUnsupportedFormat) {
		t.Errorf("error code = %v, want %v", qerrors.GetCode(err), qerrors.ErrCodeUnsupportedFormat)
	}
	if buf.Len() != 0 {
		t.Errorf("sink received %d bytes despite unsupported format, want 0", buf.Len())
	}

	if _, err := c.Bytes("bogus-format-xyz"); !qerrors.Is(err, qerrors.ErrCodeUnsupportedFormat) {
		t.Errorf("Bytes error code = %v, want %v", qerrors.GetCode(err), qerrors.ErrCodeUnsupportedFormat)
	}
}

func TestFormats(t *testing.T) {
	formats := Formats()
	if len(formats) == 0 {
		t.Fatal("Formats() returned no formats")
	}

	hasPNG := false
	for _, f := range formats {
		if f == "png" {
			hasPNG = true
		}
	}
	if !hasPNG {
		t.Errorf("Formats() = %v, must include png", formats)
	}

	// Sorted snapshot
	for i := 1; i < len(formats); i++ {
		if formats[i-1] >= formats[i] {
			t.Errorf("Formats() not sorted: %v", formats)
			break
		}
	}
}

func TestAllFormatsEncodable(t *testing.T) {
	c, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(White)
	c.FillRect(4, 4, 8, 8, Black)

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			data, err := c.Bytes(format)
			if err != nil {
				t.Fatalf("Bytes(%q) error: %v", format, err)
			}
			if len(data) == 0 {
				t.Errorf("Bytes(%q) returned empty output", format)
			}
		})
	}
}

func TestFormatCaseInsensitive(t *testing.T) {
	c, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	lower, err := c.Bytes("png")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := c.Bytes("PNG")
	if err != nil {
		t.Fatalf("Bytes(PNG) error: %v", err)
	}
	if !bytes.Equal(lower, upper) {
		t.Error("format name matching should be case-insensitive")
	}
}

func TestRegister(t *testing.T) {
	Register("probe", func(w io.Writer, img image.Image) error {
		_, err := w.Write([]byte("probe-output"))
		return err
	})

	// Registered name shows up in the snapshot.
	found := false
	for _, f := range Formats() {
		if f == "probe" {
			found = true
		}
	}
	if !found {
		t.Error("registered format missing from Formats()")
	}

	// And dispatches like any built-in encoder.
	c, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.Bytes("probe")
	if err != nil {
		t.Fatalf("Bytes(probe) error: %v", err)
	}
	if string(data) != "probe-output" {
		t.Errorf("Bytes(probe) = %q, want %q", data, "probe-output")
	}
}
