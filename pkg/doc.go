// Package pkg provides the core libraries for qrcanvas QR code rendering.
//
// # Overview
//
// Qrcanvas encodes text as QR symbols and rasterizes them onto a drawing
// canvas that can be exported in several image formats. The pkg directory
// is organized into four main areas:
//
//  1. [canvas] - Drawing surface (primitive 2D operations, image encoding)
//  2. [qr] - QR symbol encoding and rasterization
//  3. [cache] - Render cache backends (file, Redis)
//  4. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through qrcanvas:
//
//	Input text
//	     ↓
//	[qr] package (encode to module matrix)
//	     ↓
//	[qr] package (rasterize onto a canvas)
//	     ↓
//	[canvas] package (encode as PNG/JPEG/GIF/BMP/TIFF)
//	     ↓
//	Image bytes
//
// # Quick Start
//
//	m, err := qr.Encode("https://example.com", qr.LevelMedium)
//	if err != nil {
//	    return err
//	}
//	c, err := qr.Render(m, qr.Options{})
//	if err != nil {
//	    return err
//	}
//	data, err := c.Bytes("png")
package pkg
