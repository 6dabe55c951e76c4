package raster

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	// Decoders for the raster formats LoadImage accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// canvasSide is the side of the square canvas SVG drawings are
// rasterized onto before shrinking to the display.
const canvasSide = 256

// LoadImage reads a picture from path for FromImage. SVG files are
// rasterized onto a white 256x256 canvas; PNG, JPEG and GIF files are
// decoded as-is.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open image: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return rasterizeSVG(f)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode image: %w", err)
	}
	return img, nil
}

func rasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("raster: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, canvasSide, canvasSide)

	// White background matches the ink threshold convention: dark
	// strokes light cells, the canvas stays off.
	rgba := image.NewRGBA(image.Rect(0, 0, canvasSide, canvasSide))
	draw.Draw(rgba, rgba.Rect, image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(canvasSide, canvasSide, rgba, rgba.Rect)
	icon.Draw(rasterx.NewDasher(canvasSide, canvasSide, scanner), 1)
	return rgba, nil
}
