package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Canvas is a fixed-size ARGB drawing surface.
//
// A Canvas is created with [New], mutated in place by the drawing methods,
// and serialized with [Canvas.Bytes] or [Canvas.Encode]. It is never
// resized. A Canvas must not be mutated concurrently from multiple
// goroutines.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	// colors caches resolved color values so repeated draws with the same
	// packed color reuse one allocation. Purely an optimization; removing
	// the cache does not change output.
	colors map[Color]color.Color
}

// New creates a Canvas with the given dimensions.
// Both dimensions must be positive; the pixel buffer starts fully
// transparent.
func New(width, height int) (*Canvas, error) {
	if err := qerrors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Canvas{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		colors: make(map[Color]color.Color),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Image exposes the backing pixel buffer for direct interop with image
// libraries. Mutating the returned image mutates the Canvas.
func (c *Canvas) Image() image.Image { return c.img }

// colorFor resolves a packed color through the per-canvas cache,
// constructing and inserting it on first use.
func (c *Canvas) colorFor(col Color) color.Color {
	if resolved, ok := c.colors[col]; ok {
		return resolved
	}
	resolved := col.NRGBA()
	c.colors[col] = resolved
	return resolved
}

// draw opens a drawing context bound to the backing buffer, sets the paint
// color, and applies fn. The context is scoped to this one call and never
// escapes, so no drawing state leaks between operations. Anti-aliasing is
// the context's default. Coordinates outside the buffer clip silently.
func (c *Canvas) draw(col Color, fn func(dc *gg.Context)) {
	dc := gg.NewContextForRGBA(c.img)
	dc.SetColor(c.colorFor(col))
	fn(dc)
}

// DrawLine strokes a straight line between (x1,y1) and (x2,y2).
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	c.draw(col, func(dc *gg.Context) {
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()
	})
}

// DrawRect strokes the outline of a w×h rectangle at (x,y).
func (c *Canvas) DrawRect(x, y, w, h int, col Color) {
	c.draw(col, func(dc *gg.Context) {
		dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
		dc.Stroke()
	})
}

// FillRect fills a w×h rectangle at (x,y).
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	c.draw(col, func(dc *gg.Context) {
		dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
		dc.Fill()
	})
}

// Fill fills the entire canvas. Equivalent to
// FillRect(0, 0, Width(), Height(), col).
func (c *Canvas) Fill(col Color) {
	c.FillRect(0, 0, c.width, c.height, col)
}

// DrawRoundRect strokes the outline of a w×h rectangle at (x,y) with
// corners rounded by radius in both axes. Only a uniform radius is
// supported.
func (c *Canvas) DrawRoundRect(x, y, w, h, radius int, col Color) {
	c.draw(col, func(dc *gg.Context) {
		dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
		dc.Stroke()
	})
}

// FillRoundRect fills a w×h rectangle at (x,y) with corners rounded by
// radius in both axes.
func (c *Canvas) FillRoundRect(x, y, w, h, radius int, col Color) {
	c.draw(col, func(dc *gg.Context) {
		dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
		dc.Fill()
	})
}

// DrawImage composites src's full pixel buffer onto this canvas at offset
// (x,y) with source-over semantics and no scaling. When src is fully opaque
// the destination region becomes an exact copy of src. The image-copy
// primitive ignores the current paint color entirely, so no color argument
// exists.
//
// The typical use is merging a smaller rendered module square into a larger
// composed QR image.
func (c *Canvas) DrawImage(src *Canvas, x, y int) {
	dc := gg.NewContextForRGBA(c.img)
	dc.DrawImage(src.img, x, y)
}
