package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/VatsalKhanna5/Matrix/image1bit"
)

const (
	// windowWidth is the display column count and the width of every
	// produced frame.
	windowWidth = 8

	defaultHeight = 8
	defaultStride = 1
	defaultLuma   = 128
)

// TextOpts adjusts text rasterization. The zero value of each field
// selects its default; pass nil for all defaults.
type TextOpts struct {
	// Face is the font the message is drawn with. nil selects the
	// built-in fixed 7x13 face.
	Face font.Face
	// Height is the frame height in pixels after scaling. Defaults to
	// 8, the device row count.
	Height int
	// Stride is how many pixels the window advances between frames.
	// Defaults to 1 for the smoothest scroll.
	Stride int
	// Luma is the grayscale cutoff applied after scaling; a pixel
	// lights its cell when strictly above it. Defaults to 128.
	Luma uint8
}

// Text renders s into a scrolling frame sequence.
//
// The string is measured with its face, drawn at full intensity into a
// grayscale strip with 8 pixels of trailing padding, scaled to the
// frame height with bilinear interpolation, then cut into 8 pixel wide
// windows sliding left to right. The last frame is appended a second
// time so the scroll lingers on the message end before restarting.
//
// An empty string yields a nil sequence. The sequence length for
// stride 1 is stripWidth-7+1 where stripWidth is the measured text
// width plus the padding.
func Text(s string, o *TextOpts) []*image1bit.HorizontalMSB {
	if s == "" {
		return nil
	}
	var opts TextOpts
	if o != nil {
		opts = *o
	}
	if opts.Face == nil {
		opts.Face = basicfont.Face7x13
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Stride <= 0 {
		opts.Stride = defaultStride
	}
	if opts.Luma == 0 {
		opts.Luma = defaultLuma
	}

	b, _ := font.BoundString(opts.Face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	if h < 1 {
		// Whitespace measures zero tall on proportional faces; a one
		// pixel strip keeps the scale well defined and the frames blank.
		h = 1
	}

	strip := image.NewGray(image.Rect(0, 0, w+windowWidth, h))
	d := font.Drawer{
		Dst:  strip,
		Src:  image.White,
		Face: opts.Face,
		Dot:  fixed.Point26_6{Y: -b.Min.Y},
	}
	d.DrawString(s)

	scaled := image.NewGray(image.Rect(0, 0, strip.Rect.Dx(), opts.Height))
	draw.BiLinear.Scale(scaled, scaled.Rect, strip, strip.Rect, draw.Src, nil)

	var frames []*image1bit.HorizontalMSB
	for x := 0; x+windowWidth <= scaled.Rect.Dx(); x += opts.Stride {
		f := image1bit.NewHorizontalMSB(image.Rect(0, 0, windowWidth, opts.Height))
		for y := 0; y < opts.Height; y++ {
			for c := 0; c < windowWidth; c++ {
				if scaled.GrayAt(x+c, y).Y > opts.Luma {
					f.SetBit(c, y, image1bit.On)
				}
			}
		}
		frames = append(frames, f)
	}
	if len(frames) > 0 {
		last := frames[len(frames)-1]
		pause := image1bit.NewHorizontalMSB(last.Rect)
		copy(pause.Pix, last.Pix)
		frames = append(frames, pause)
	}
	return frames
}
