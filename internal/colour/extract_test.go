package colour

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

func mustPreset(t *testing.T, name string) *colormap.Colormap {
	t.Helper()
	cm, err := colormap.Preset(name)
	if err != nil {
		t.Fatalf("Preset(%q) returned error: %v", name, err)
	}
	return cm
}

// gradientImage builds a horizontal black-to-white gradient.
func gradientImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		v := uint8(x * 255 / (width - 1))
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

// twoToneImage builds an image split between two solid colours.
func twoToneImage(left, right color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if x < 20 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

func TestExtractorStops(t *testing.T) {
	e := NewExtractor()

	stops, err := e.Stops(gradientImage(200, 50), 5)
	if err != nil {
		t.Fatalf("Stops() returned error: %v", err)
	}
	if len(stops) < 2 {
		t.Fatalf("Stops() returned %d stops, want at least 2", len(stops))
	}

	// Dark to light ordering on a greyscale gradient means monotonic red channel.
	for i := 1; i < len(stops); i++ {
		if stops[i].R < stops[i-1].R {
			t.Errorf("stops out of order: stop %d (R=%v) darker than stop %d (R=%v)",
				i, stops[i].R, i-1, stops[i-1].R)
		}
	}
}

func TestExtractorStopsTwoTone(t *testing.T) {
	e := NewExtractor()

	img := twoToneImage(
		color.RGBA{10, 10, 10, 255},
		color.RGBA{240, 240, 240, 255},
	)
	stops, err := e.Stops(img, 2)
	if err != nil {
		t.Fatalf("Stops() returned error: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("Stops() returned %d stops, want 2", len(stops))
	}
	if stops[0].R > stops[1].R {
		t.Errorf("first stop (R=%v) should be the darker colour (R=%v)", stops[0].R, stops[1].R)
	}
}

func TestExtractorStopsValidation(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		img   image.Image
		count int
	}{
		{name: "nil image", img: nil, count: 4},
		{name: "count below 2", img: gradientImage(10, 10), count: 1},
		{name: "count too large", img: gradientImage(10, 10), count: 65},
		{name: "single colour image", img: twoToneImage(color.RGBA{5, 5, 5, 255}, color.RGBA{5, 5, 5, 255}), count: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Stops(tt.img, tt.count); err == nil {
				t.Error("Stops() succeeded, want error")
			}
		})
	}
}

func TestBlockAndRampContainEscapes(t *testing.T) {
	cm := mustPreset(t, "greyscale")

	ramp := Ramp(cm, 16)
	if len(ramp) == 0 || ramp[0] != '\033' {
		t.Errorf("Ramp() does not start with an ANSI escape: %q", ramp)
	}

	block := Block(cm.Sample(1), 4)
	if want := "\033[48;2;255;255;255m    \033[0m"; block != want {
		t.Errorf("Block() = %q, want %q", block, want)
	}
}
