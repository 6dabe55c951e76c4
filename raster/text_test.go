package raster

import (
	"bytes"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// stripWidth measures the rendered strip for s the way Text does:
// tight text bounds plus one window of trailing padding.
func stripWidth(t *testing.T, s string) int {
	t.Helper()
	b, _ := font.BoundString(basicfont.Face7x13, s)
	return (b.Max.X - b.Min.X).Ceil() + windowWidth
}

func TestTextEmpty(t *testing.T) {
	if frames := Text("", nil); frames != nil {
		t.Errorf("Text(\"\") = %d frames, want none", len(frames))
	}
}

func TestTextFrameCount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		stride int
	}{
		{"single letter", "H", 1},
		{"word", "HELLO", 1},
		{"stride 2", "HELLO", 2},
		{"stride 3", "GO", 3},
		{"stride wider than text", "I", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := Text(tt.text, &TextOpts{Stride: tt.stride})

			windows := 0
			for x := 0; x+windowWidth <= stripWidth(t, tt.text); x += tt.stride {
				windows++
			}
			want := windows + 1 // plus the pause frame
			if len(frames) != want {
				t.Errorf("Text(%q) = %d frames, want %d", tt.text, len(frames), want)
			}
		})
	}
}

func TestTextFrameGeometry(t *testing.T) {
	want := image.Rect(0, 0, 8, 8)
	for i, f := range Text("OK", nil) {
		if f.Bounds() != want {
			t.Errorf("frame %d bounds = %v, want %v", i, f.Bounds(), want)
		}
	}
}

func TestTextHasInk(t *testing.T) {
	lit := false
	for _, f := range Text("H", nil) {
		for _, b := range f.Pix {
			if b != 0 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("no lit cell in any frame of a non-blank message")
	}
}

func TestTextPauseDuplicatesLastFrame(t *testing.T) {
	frames := Text("HI", nil)
	if len(frames) < 2 {
		t.Fatalf("got %d frames, want at least 2", len(frames))
	}
	last, prev := frames[len(frames)-1], frames[len(frames)-2]
	if !bytes.Equal(last.Pix, prev.Pix) {
		t.Error("pause frame differs from the final window")
	}
	if last == prev {
		t.Error("pause frame aliases the final window instead of copying it")
	}
}

func TestTextWindowsSlide(t *testing.T) {
	// With stride 1, column c of frame k shows the same strip column as
	// column c-1 of frame k+1.
	frames := Text("GOPHER", nil)
	windows := frames[:len(frames)-1] // drop the pause
	for k := 0; k+1 < len(windows); k++ {
		for y := 0; y < 8; y++ {
			for c := 1; c < 8; c++ {
				if windows[k].BitAt(c, y) != windows[k+1].BitAt(c-1, y) {
					t.Fatalf("frames %d and %d disagree on strip column: (%d,%d) vs (%d,%d)", k, k+1, c, y, c-1, y)
				}
			}
		}
	}
}

func TestTextWhitespaceIsBlank(t *testing.T) {
	frames := Text("   ", nil)
	if len(frames) < 2 {
		t.Fatalf("got %d frames, want at least a window and the pause", len(frames))
	}
	for i, f := range frames {
		for _, b := range f.Pix {
			if b != 0 {
				t.Fatalf("frame %d has lit cells for whitespace input", i)
			}
		}
	}
}

func TestTextLumaCutoff(t *testing.T) {
	// A cutoff of 255 can never be exceeded, so every frame stays dark.
	for i, f := range Text("HELLO", &TextOpts{Luma: 255}) {
		for _, b := range f.Pix {
			if b != 0 {
				t.Fatalf("frame %d has lit cells above an unreachable cutoff", i)
			}
		}
	}
}

func TestTextHeightOverride(t *testing.T) {
	frames := Text("A", &TextOpts{Height: 4})
	if len(frames) == 0 {
		t.Fatal("no frames")
	}
	want := image.Rect(0, 0, 8, 4)
	if got := frames[0].Bounds(); got != want {
		t.Errorf("frame bounds = %v, want %v", got, want)
	}
}

func TestTextCustomFace(t *testing.T) {
	// An explicit face must behave exactly like the implied default.
	got := Text("M", &TextOpts{Face: basicfont.Face7x13})
	want := Text("M", nil)
	if len(got) != len(want) {
		t.Fatalf("got %d frames, want %d", len(got), len(want))
	}
	for i := range got {
		if !bytes.Equal(got[i].Pix, want[i].Pix) {
			t.Errorf("frame %d differs between explicit and default face", i)
		}
	}
}
