// Package raster turns text, pictures and ASCII sketches into 1-bit
// matrices ready for an 8x8 LED display.
//
// Four sources feed the same output type:
//
// - Text: renders a string with an x/image font face and cuts it into a scrolling frame sequence
// - FromImage: shrinks any image.Image to a single thresholded 8x8 frame
// - ParseGrid: reads a hand-authored ASCII grid, Sketch renders one back
// - Downsample16: folds a 16x16 grid to 8x8 by OR-ing 2x2 blocks
//
// Loading helpers pick parsers by file extension: LoadFace for BDF and
// TrueType fonts, LoadImage for PNG, JPEG, GIF and SVG pictures.
//
// Example usage:
//
//	frames := raster.Text("HELLO", nil)
//	for _, f := range frames {
//		dev.Draw(dev.Bounds(), f, image.Point{})
//		time.Sleep(70 * time.Millisecond)
//	}
//
// Rasterization is deterministic and touches no device; transmission
// belongs to the matrix package.
package raster
