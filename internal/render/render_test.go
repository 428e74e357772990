package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

func redBlue(t *testing.T) *colormap.Colormap {
	t.Helper()
	cm, err := colormap.FromStops("redblue", []colormap.Stop{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	}, nil, colormap.BuildOptions{Mode: colormap.Mode8Bit})
	if err != nil {
		t.Fatalf("FromStops() returned error: %v", err)
	}
	return cm
}

func TestRamp(t *testing.T) {
	cm := redBlue(t)

	img, err := Ramp(cm, 300, 40)
	if err != nil {
		t.Fatalf("Ramp() returned error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 40 {
		t.Fatalf("Ramp() size = %dx%d, want 300x40", bounds.Dx(), bounds.Dy())
	}

	left := img.RGBAAt(0, 20)
	if left.R < 250 || left.B > 5 {
		t.Errorf("left edge = %v, want red", left)
	}
	right := img.RGBAAt(299, 20)
	if right.B < 250 || right.R > 5 {
		t.Errorf("right edge = %v, want blue", right)
	}

	// Rows should be identical: the gradient only runs horizontally.
	if top, bottom := img.RGBAAt(150, 0), img.RGBAAt(150, 39); top != bottom {
		t.Errorf("column 150 varies vertically: top %v, bottom %v", top, bottom)
	}

	mid := img.RGBAAt(150, 20)
	if mid.R < 100 || mid.R > 155 || mid.B < 100 || mid.B > 155 {
		t.Errorf("midpoint = %v, want roughly equal red and blue", mid)
	}
}

func TestRampInvalidSize(t *testing.T) {
	cm := redBlue(t)

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 10}} {
		if _, err := Ramp(cm, size[0], size[1]); err == nil {
			t.Errorf("Ramp(%d, %d) succeeded, want error", size[0], size[1])
		}
	}
}

func TestWritePNG(t *testing.T) {
	cm := redBlue(t)
	path := filepath.Join(t.TempDir(), "ramp.png")

	if err := WritePNG(cm, path, 64, 8); err != nil {
		t.Fatalf("WritePNG() returned error: %v", err)
	}

	// Loads back as a decodable image of the right size.
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written PNG: %v", err)
	}
	defer f.Close()
	loaded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode written PNG: %v", err)
	}
	if loaded.Bounds().Dx() != 64 || loaded.Bounds().Dy() != 8 {
		t.Errorf("written PNG size = %v, want 64x8", loaded.Bounds())
	}
	r, _, _, _ := loaded.At(0, 0).RGBA()
	if r>>8 < 250 {
		t.Errorf("written PNG left edge red channel = %d, want near 255", r>>8)
	}
}

func TestWritePNGUnwritablePath(t *testing.T) {
	cm := redBlue(t)
	path := filepath.Join(t.TempDir(), "missing-dir", "ramp.png")

	if err := WritePNG(cm, path, 16, 4); err == nil {
		t.Error("WritePNG() succeeded writing into a missing directory")
	}
}
