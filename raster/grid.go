package raster

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/VatsalKhanna5/Matrix/image1bit"
)

// ParseGrid builds a matrix from an ASCII sketch, one line per row.
// '.', '0' and space leave a cell dark; '#', '@', 'X', '*' and '1'
// light it. Every row must be the same width and the width must be a
// multiple of 8. A trailing newline is ignored.
func ParseGrid(s string) (*image1bit.HorizontalMSB, error) {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.TrimRight(line, "\r")))
	}

	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("raster: empty grid")
	}
	if width%8 != 0 {
		return nil, fmt.Errorf("raster: grid width must be a multiple of 8, got %d", width)
	}

	m := image1bit.NewHorizontalMSB(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("raster: grid row %d is %d cells wide, want %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case '#', '@', 'X', '*', '1':
				m.SetBit(x, y, image1bit.On)
			case '.', '0', ' ':
			default:
				return nil, fmt.Errorf("raster: unrecognized grid cell %q at row %d column %d", c, y, x)
			}
		}
	}
	return m, nil
}

// Sketch renders a matrix back to ASCII, '@' for lit cells and '.' for
// dark ones, one line per row. It is the terminal preview counterpart
// of ParseGrid.
func Sketch(m *image1bit.HorizontalMSB) string {
	if m == nil {
		return ""
	}
	b := m.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx() + 1) * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.BitAt(x, y) {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
