// Package matrix controls an 8x8 LED dot matrix behind a serial bridge.
//
// The bridge is an Arduino-style board driving a MAX7219 matrix; it accepts
// fixed 9-byte frames over its UART, each a sync byte followed by 8 packed
// row bytes.
//
// See the examples for how to use this package.
package matrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"

	"github.com/VatsalKhanna5/Matrix/image1bit"
)

// Frame pacing for animated sequences. The range is a presentation
// recommendation; Animate only substitutes the default for a zero delay
// and leaves range enforcement to the caller.
const (
	MinFrameDelay     = 20 * time.Millisecond
	MaxFrameDelay     = 250 * time.Millisecond
	DefaultFrameDelay = 70 * time.Millisecond
)

// DefaultSettleDelay is how long the bridge firmware needs after the port
// opens. Opening the serial port resets Arduino-style boards.
const DefaultSettleDelay = 2 * time.Second

// DefaultOpts is the recommended default configuration.
var DefaultOpts = Opts{
	SettleDelay: DefaultSettleDelay,
}

// Opts is the configuration for the matrix device.
type Opts struct {
	// SettleDelay is how long Open waits after opening the serial port
	// before the device is considered ready. Zero means no wait; use
	// DefaultOpts (or a nil *Opts) for the standard reset wait.
	SettleDelay time.Duration
}

// Dev is the device handle for the LED matrix.
type Dev struct {
	// Communication
	c      conn.Conn // serial bridge connection (or a test double)
	closer io.Closer // underlying port when the device owns it, else nil

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	buffer []byte                   // row bytes of the last transmitted frame
	next   *image1bit.HorizontalMSB // for composing partial draws

	// State
	closed bool
}

// New creates a matrix device on top of an existing connection.
//
// The connection is not closed by Close; it belongs to the caller. Use
// Open to let the device own its serial port.
//
// opts can be nil to use DefaultOpts.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.SettleDelay < 0 {
		return nil, errors.New("matrix: settle delay must not be negative")
	}

	return &Dev{
		c:      c,
		rect:   frameRect,
		buffer: make([]byte, FrameLen-1),
	}, nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in HorizontalMSB format.
// The data must be exactly 8 row bytes, bit 7 driving the leftmost column.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.closed {
		return 0, &TransportError{Op: "write", Err: errClosed}
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("matrix: invalid buffer size")
	}
	if err := d.writeFrame(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display and transmits one frame.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// Partial draws composite over whatever the previous draws left on the
// display; the transmitted frame is always the full 8x8.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.closed {
		return &TransportError{Op: "write", Err: errClosed}
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: if source is already a full-size HorizontalMSB
	if srcImg, ok := src.(*image1bit.HorizontalMSB); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			return d.writeFrame(srcImg.Pix)
		}
	}

	// Slow path: composite over the last transmitted frame.
	if d.next == nil {
		d.next = image1bit.NewHorizontalMSB(d.rect)
	}
	copy(d.next.Pix, d.buffer)
	draw.Draw(d.next, dst, src, sp, draw.Src)
	return d.writeFrame(d.next.Pix)
}

// Animate transmits a frame sequence, sleeping delay between frames.
// A zero delay selects DefaultFrameDelay. Transmission stops at the
// first failed frame.
func (d *Dev) Animate(frames []*image1bit.HorizontalMSB, delay time.Duration) error {
	if delay == 0 {
		delay = DefaultFrameDelay
	}
	for _, m := range frames {
		if err := d.Draw(d.rect, m, m.Rect.Min); err != nil {
			return err
		}
		time.Sleep(delay)
	}
	return nil
}

// Halt blanks the display. The bridge firmware has no power-off command,
// so an all-dark frame is transmitted; the device stays usable.
func (d *Dev) Halt() error {
	if d.closed {
		return &TransportError{Op: "write", Err: errClosed}
	}
	return d.writeFrame(make([]byte, len(d.buffer)))
}

// Close closes the serial port if the device owns one. The handle is
// unusable afterwards; writes fail with TransportError.
func (d *Dev) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.closer == nil {
		return nil
	}
	if err := d.closer.Close(); err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("matrix.Dev{%s}", d.c)
}

// writeFrame transmits one atomic wire frame built from the given row
// bytes. The frame is fully assembled before a single Tx; there are no
// partial writes.
func (d *Dev) writeFrame(rows []byte) error {
	f := make([]byte, 1, FrameLen)
	f[0] = Sync
	f = append(f, rows...)
	if err := d.c.Tx(f, nil); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	copy(d.buffer, rows)
	return nil
}

var errClosed = errors.New("device closed")

var _ display.Drawer = &Dev{}
