// Package render rasterises colormaps into horizontal gradient ramp images.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

// Ramp renders the colormap as a width x height image. The colormap is
// sampled once per lookup-table entry and scaled to the requested size with
// bilinear filtering, so ramps stay smooth at any width.
func Ramp(cm *colormap.Colormap, width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid ramp size %dx%d: both dimensions must be positive", width, height)
	}

	res := cm.Resolution()
	strip := image.NewRGBA(image.Rect(0, 0, res, 1))
	for x := 0; x < res; x++ {
		strip.SetRGBA(x, 0, cm.At(float64(x)/float64(res-1)))
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(out, out.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	return out, nil
}

// WritePNG renders the colormap ramp and writes it to path as a PNG.
func WritePNG(cm *colormap.Colormap, path string, width, height int) error {
	img, err := Ramp(cm, width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encodeErr := png.Encode(f, img)
	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode PNG: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}
