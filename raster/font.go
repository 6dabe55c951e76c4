package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// defaultPointSize renders vector fonts at roughly the height of the
// built-in bitmap face, so both scale to the strip the same way.
const defaultPointSize = 13

// LoadFace loads a font for Text from path, picking the parser by
// extension: ".bdf" for bitmap fonts, ".ttf" and ".otf" for vector
// ones. An empty path returns the built-in fixed 7x13 face.
func LoadFace(path string) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: read font: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bdf":
		f, err := bdf.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("raster: parse bdf font: %w", err)
		}
		return f.NewFace(), nil
	case ".ttf", ".otf":
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("raster: parse truetype font: %w", err)
		}
		return truetype.NewFace(f, &truetype.Options{Size: defaultPointSize}), nil
	default:
		return nil, fmt.Errorf("raster: unsupported font format %q", filepath.Ext(path))
	}
}
