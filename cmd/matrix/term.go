package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/VatsalKhanna5/Matrix/image1bit"
	"github.com/VatsalKhanna5/Matrix/raster"
)

// term sketches frames as ASCII art on a writer. It stands in for the
// device when no serial port is configured, so every command can be
// tried without hardware.
type term struct {
	w io.Writer
	m *image1bit.HorizontalMSB
}

func newTerm(w io.Writer) *term {
	return &term{w: w, m: image1bit.NewHorizontalMSB(image.Rect(0, 0, 8, 8))}
}

func (t *term) String() string {
	return "term"
}

func (t *term) ColorModel() color.Model {
	return image1bit.BitModel
}

func (t *term) Bounds() image.Rectangle {
	return t.m.Bounds()
}

func (t *term) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(t.m, r.Intersect(t.m.Bounds()), src, sp, draw.Src)
	_, err := fmt.Fprintln(t.w, raster.Sketch(t.m))
	return err
}

func (t *term) Halt() error {
	clear(t.m.Pix)
	_, err := fmt.Fprintln(t.w, raster.Sketch(t.m))
	return err
}

func (t *term) Close() error {
	return nil
}
