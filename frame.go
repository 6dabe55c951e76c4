package matrix

import (
	"errors"
	"fmt"
	"image"

	"github.com/VatsalKhanna5/Matrix/image1bit"
)

// Wire frame layout.
const (
	// Sync is the fixed first byte of every wire frame.
	Sync = 0xAA
	// FrameLen is the full wire frame size: the sync byte plus 8 row bytes.
	FrameLen = 9
)

// frameRect is the only frame geometry the bridge firmware accepts.
var frameRect = image.Rect(0, 0, 8, 8)

// ShapeError reports a matrix whose dimensions cannot be encoded into a
// wire frame. The encoder rejects wrong geometry instead of truncating
// or padding.
type ShapeError struct {
	Bounds image.Rectangle
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: frame must be 8x8, got %dx%d", e.Bounds.Dx(), e.Bounds.Dy())
}

// TransportError reports a failed exchange with the device. It is
// non-fatal: the frame that failed is lost, but the device handle stays
// valid and later operations may retry.
type TransportError struct {
	Op  string // "open", "write" or "close"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("matrix: %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodeFrame packs an 8x8 matrix into its 9-byte wire form: the sync
// byte followed by one byte per row, top to bottom. Bit 7-c of a row
// byte carries cell (row, c); the mirrored bit order matches the
// column wiring of the physical matrix and must not change.
//
// Matrices of any other geometry are rejected with ShapeError.
func EncodeFrame(m *image1bit.HorizontalMSB) ([]byte, error) {
	if m == nil {
		return nil, &ShapeError{}
	}
	if m.Rect.Dx() != 8 || m.Rect.Dy() != 8 {
		return nil, &ShapeError{Bounds: m.Rect}
	}
	f := make([]byte, 1, FrameLen)
	f[0] = Sync
	for y := 0; y < 8; y++ {
		f = append(f, m.Pix[y*m.Stride])
	}
	return f, nil
}

// DecodeFrame unpacks a 9-byte wire frame back into an 8x8 matrix. It is
// the exact inverse of EncodeFrame.
func DecodeFrame(p []byte) (*image1bit.HorizontalMSB, error) {
	if len(p) != FrameLen {
		return nil, errors.New("matrix: invalid frame size")
	}
	if p[0] != Sync {
		return nil, errors.New("matrix: invalid sync byte")
	}
	m := image1bit.NewHorizontalMSB(frameRect)
	copy(m.Pix, p[1:])
	return m, nil
}
