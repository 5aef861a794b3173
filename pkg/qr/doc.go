// Package qr renders QR module matrices onto a canvas.
//
// # Overview
//
// The package sits between a QR symbol encoder and the drawing surface.
// Symbol encoding (versioning, error correction, masking, placement) is
// delegated entirely to skip2/go-qrcode through [Encode]; this package only
// consumes the resulting [Matrix] and turns it into pixels:
//
//	m, err := qr.Encode("https://example.com", qr.LevelMedium)
//	if err != nil {
//	    return err
//	}
//	c, err := qr.Render(m, qr.Options{ModuleSize: 8})
//	if err != nil {
//	    return err
//	}
//	data, err := c.Bytes("png")
//
// # Matrix
//
// [Matrix] is the narrow contract the upstream encoder fulfills: a square
// grid of dark/light modules with no knowledge of pixel-level drawing. Any
// encoder producing a boolean grid can drive [Render]; the skip2 adapter is
// a convenience, not a requirement.
//
// # Rendering
//
// [Render] fills the background, then draws one filled square (optionally
// with rounded corners) per dark module, surrounded by a quiet zone.
// [RenderStamped] instead composites a caller-supplied pre-rendered module
// canvas for each dark module, which is how custom module artwork is merged
// into the composed image.
package qr
