// Package canvas provides a fixed-size 2D drawing surface for composing
// QR code images.
//
// # Overview
//
// A [Canvas] wraps a 32-bit ARGB pixel buffer and exposes the primitive
// drawing operations a QR module renderer needs: lines, rectangles, rounded
// rectangles, whole-surface fills, and compositing one canvas onto another.
// All rasterization is delegated to fogleman/gg; no drawing algorithm is
// implemented here.
//
// The package deliberately knows nothing about QR semantics. Callers that do
// (see the qr package) issue a sequence of drawing calls and then encode the
// result:
//
//	c, err := canvas.New(256, 256)
//	if err != nil {
//	    return err
//	}
//	c.Fill(canvas.White)
//	c.FillRect(32, 32, 16, 16, canvas.Black)
//	data, err := c.Bytes("png")
//
// # Colors
//
// Drawing operations take a [Color]: a packed 0xAARRGGBB integer. The same
// integer always produces the same visual color on a given Canvas. Resolved
// colors are cached per Canvas purely to avoid repeated allocation; the cache
// never affects output.
//
// # Drawing model
//
// Every drawing call opens its own short-lived drawing context bound to the
// backing buffer, applies the primitive, and releases the context before
// returning. No drawing state survives between calls. Coordinates outside
// the buffer are clipped silently; degenerate shapes (zero or negative
// extent) follow the underlying library's behavior and are not validated
// here.
//
// A Canvas is not safe for concurrent mutation. Callers that share one
// across goroutines must synchronize externally.
//
// # Encoding
//
// [Canvas.Bytes] and [Canvas.Encode] serialize the buffer through a
// process-wide registry of named encoders (PNG, JPEG, GIF, BMP, TIFF by
// default; see [Formats] and [Register]). Requesting a format with no
// registered encoder fails with an UNSUPPORTED_FORMAT error before anything
// is written to the destination.
package canvas
