package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/VatsalKhanna5/Matrix/image1bit"
)

// DefaultInkThreshold is the normalized luminance below which a pixel
// counts as ink. Tuned for dark drawings on a white canvas.
const DefaultInkThreshold = 0.7

// ImageOpts adjusts picture rasterization. The zero value selects the
// defaults; pass nil for all defaults.
type ImageOpts struct {
	// Threshold is the normalized luminance cutoff in (0, 1); a pixel
	// lights its cell when strictly below it. Defaults to
	// DefaultInkThreshold when zero or negative.
	Threshold float64
}

// FromImage shrinks img to a single 8x8 frame.
//
// The image is converted to grayscale and resized with bilinear
// interpolation in one pass, then thresholded: dark pixels light their
// cells, light pixels stay off. An all-white image yields an all-dark
// frame.
func FromImage(img image.Image, o *ImageOpts) *image1bit.HorizontalMSB {
	threshold := DefaultInkThreshold
	if o != nil && o.Threshold > 0 {
		threshold = o.Threshold
	}

	small := image.NewGray(image.Rect(0, 0, windowWidth, defaultHeight))
	draw.BiLinear.Scale(small, small.Rect, img, img.Bounds(), draw.Src, nil)

	m := image1bit.NewHorizontalMSB(small.Rect)
	for y := 0; y < defaultHeight; y++ {
		for x := 0; x < windowWidth; x++ {
			if float64(small.GrayAt(x, y).Y)/255 < threshold {
				m.SetBit(x, y, image1bit.On)
			}
		}
	}
	return m
}

// Downsample16 folds a 16x16 matrix into an 8x8 one. Each output cell
// is the OR of its 2x2 source block, so a single lit cell anywhere in
// the block lights the output. Anything but a 16x16 input is an error.
func Downsample16(m *image1bit.HorizontalMSB) (*image1bit.HorizontalMSB, error) {
	var b image.Rectangle
	if m != nil {
		b = m.Bounds()
	}
	if b.Dx() != 16 || b.Dy() != 16 {
		return nil, fmt.Errorf("raster: downsample input must be 16x16, got %dx%d", b.Dx(), b.Dy())
	}

	out := image1bit.NewHorizontalMSB(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sx, sy := b.Min.X+2*x, b.Min.Y+2*y
			if m.BitAt(sx, sy) || m.BitAt(sx+1, sy) || m.BitAt(sx, sy+1) || m.BitAt(sx+1, sy+1) {
				out.SetBit(x, y, image1bit.On)
			}
		}
	}
	return out, nil
}
