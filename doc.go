// Package pix implements a minimal raster image core for Go.
//
// # Overview
//
// pix operates on in-memory pixel buffers with 8-bit channels. It provides
// color-space-aware pixel access, alpha-compositing draws of geometric
// primitives (pixels and lines), and whole-image transforms (crop, flip,
// nearest-neighbor resize). File format decoding and encoding happens at
// the edges through a small registry; the core itself never performs I/O.
//
// # Quick Start
//
//	import "github.com/gopix/pix"
//
//	// Build a 64x64 buffer and draw a diagonal.
//	img, _ := pix.New(64, 64, pix.ColorTypeRGBA)
//	img.Draw(pix.Line{X0: 0, Y0: 0, X1: 63, Y1: 63}, pix.White)
//
//	// Write it out as PNG.
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	pix.Save(f, img, "png")
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All coordinates are integer pixel positions
//
// # Mutation Policy
//
// SetColor and Draw mutate the buffer in place. Whole-image transforms
// (Crop, FlipLeftRight, FlipTopBottom, Resize) always return a new buffer
// and leave the receiver untouched. Buffers never share storage, so
// independent buffers may be used from different goroutines; a single
// buffer must not be mutated concurrently.
package pix

// Version is the current version of the library.
const Version = "0.1.0"
