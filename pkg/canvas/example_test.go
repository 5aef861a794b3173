package canvas_test

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/pixelforge/qrcanvas/pkg/canvas"
)

func ExampleNew() {
	c, err := canvas.New(128, 128)
	if err != nil {
		panic(err)
	}

	c.Fill(canvas.White)
	c.FillRect(32, 32, 64, 64, canvas.Black)

	data, _ := c.Bytes("png")
	img, _ := png.Decode(bytes.NewReader(data))
	fmt.Println("Size:", img.Bounds().Dx(), "x", img.Bounds().Dy())
	// Output:
	// Size: 128 x 128
}

func ExampleCanvas_DrawImage() {
	// Render one module square, then composite it into a larger image.
	module, _ := canvas.New(16, 16)
	module.FillRoundRect(0, 0, 16, 16, 4, canvas.Black)

	composed, _ := canvas.New(64, 64)
	composed.Fill(canvas.White)
	composed.DrawImage(module, 8, 8)
	composed.DrawImage(module, 40, 8)

	fmt.Println("Composed:", composed.Width(), "x", composed.Height())
	// Output:
	// Composed: 64 x 64
}

func ExampleFormats() {
	for _, f := range canvas.Formats() {
		if f == "png" {
			fmt.Println("png supported")
		}
	}
	// Output:
	// png supported
}
