package raster

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceDefault(t *testing.T) {
	face, err := LoadFace("")
	if err != nil {
		t.Fatalf("LoadFace(\"\") error = %v", err)
	}
	if face != basicfont.Face7x13 {
		t.Error("empty path did not select the built-in face")
	}
}

func TestLoadFaceMissingFile(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "nope.bdf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFace() error = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestLoadFaceUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.woff")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFace(path)
	if err == nil || err.Error() != `raster: unsupported font format ".woff"` {
		t.Errorf("LoadFace() error = %v, want unsupported format error", err)
	}
}

// boxBDF is a single-glyph bitmap font: 'A' as an 8x8 box outline.
const boxBDF = `STARTFONT 2.1
FONT box
SIZE 8 75 75
FONTBOUNDINGBOX 8 8 0 0
STARTPROPERTIES 2
FONT_ASCENT 8
FONT_DESCENT 0
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
SWIDTH 1000 0
DWIDTH 8 0
BBX 8 8 0 0
BITMAP
FF
81
81
81
81
81
81
FF
ENDCHAR
ENDFONT
`

func TestLoadFaceBDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.bdf")
	if err := os.WriteFile(path, []byte(boxBDF), 0o644); err != nil {
		t.Fatal(err)
	}

	face, err := LoadFace(path)
	if err != nil {
		t.Fatalf("LoadFace() error = %v", err)
	}

	frames := Text("A", &TextOpts{Face: face})
	if len(frames) == 0 {
		t.Fatal("no frames rendered with the loaded face")
	}
	lit := false
	for _, f := range frames {
		for _, b := range f.Pix {
			if b != 0 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("loaded face rendered no ink")
	}
}

func TestLoadFaceCorruptTrueType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a ttf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFace(path)
	if err == nil || !strings.HasPrefix(err.Error(), "raster: parse truetype font:") {
		t.Errorf("LoadFace() error = %v, want truetype parse error", err)
	}
}
