// Package image1bit provides a 1-bit binary image format for 8x8 LED dot matrices.
//
// Each cell is either lit (On) or dark (Off). Pixels are stored in horizontal
// MSB-first packing where each byte contains 8 pixels.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0  1  2  3  4  5  6  7
//	Values: 1  0  0  1  1  0  1  0
//	Byte:   0x9A
//	        (bit 7 = pixel 0, bit 6 = pixel 1, ..., bit 0 = pixel 7)
//
// With this layout the packed row bytes of an 8-pixel-wide image are exactly
// the row bytes of the device wire frame, bit 7 driving the leftmost column.
//
// This package provides:
//
// - Bit: A color type representing a single LED cell (On/Off)
// - BitModel: A color model for converting standard Go colors to Bit
// - HorizontalMSB: An image.Image implementation optimized for the matrix
//
// Example usage:
//
//	// Create an 8x8 frame
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 8, 8))
//
//	// Light a pixel
//	img.SetBit(3, 5, image1bit.On)
//
//	// Get a pixel
//	bit := img.BitAt(3, 5)
//	println(bool(bit))  // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
