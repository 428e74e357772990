package colormap

import (
	"image/color"
	"math"
	"testing"
)

func greyscale(t *testing.T) *Colormap {
	t.Helper()
	cm, err := FromStops("greyscale", []Stop{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
	}, nil, BuildOptions{})
	if err != nil {
		t.Fatalf("FromStops() returned error: %v", err)
	}
	return cm
}

func TestColormapAt(t *testing.T) {
	cm := greyscale(t)

	tests := []struct {
		name string
		v    float64
		want color.RGBA
	}{
		{name: "low end", v: 0, want: color.RGBA{0, 0, 0, 255}},
		{name: "high end", v: 1, want: color.RGBA{255, 255, 255, 255}},
		{name: "midpoint", v: 0.5, want: color.RGBA{128, 128, 128, 255}},
		{name: "clamped below", v: -3, want: color.RGBA{0, 0, 0, 255}},
		{name: "clamped above", v: 7, want: color.RGBA{255, 255, 255, 255}},
		{name: "NaN maps to first colour", v: math.NaN(), want: color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.At(tt.v); got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestColormapSample(t *testing.T) {
	cm, err := FromStops("redblue", []Stop{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	}, nil, BuildOptions{Mode: Mode8Bit})
	if err != nil {
		t.Fatalf("FromStops() returned error: %v", err)
	}

	s := cm.Sample(0.25)
	if math.Abs(s.R-0.75) > 1e-12 {
		t.Errorf("Sample(0.25).R = %v, want 0.75", s.R)
	}
	if math.Abs(s.B-0.25) > 1e-12 {
		t.Errorf("Sample(0.25).B = %v, want 0.25", s.B)
	}
	if s.G != 0 {
		t.Errorf("Sample(0.25).G = %v, want 0", s.G)
	}
}

func TestColormapSampleUnevenPositions(t *testing.T) {
	cm, err := FromStops("skewed", []Stop{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
	}, []float64{0, 0.3, 1}, BuildOptions{})
	if err != nil {
		t.Fatalf("FromStops() returned error: %v", err)
	}

	// Exactly on the middle anchor.
	if got := cm.Sample(0.3).R; got != 1 {
		t.Errorf("Sample(0.3).R = %v, want 1", got)
	}
	// Halfway up the first slope.
	if got := cm.Sample(0.15).R; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Sample(0.15).R = %v, want 0.5", got)
	}
}

func TestColormapReversed(t *testing.T) {
	cm, err := FromStops("redblue", []Stop{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	}, nil, BuildOptions{Mode: Mode8Bit})
	if err != nil {
		t.Fatalf("FromStops() returned error: %v", err)
	}

	rev := cm.Reversed()
	if rev.Name() != "redblue_r" {
		t.Errorf("Reversed().Name() = %q, want %q", rev.Name(), "redblue_r")
	}
	if got := rev.At(0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Reversed().At(0) = %v, want blue", got)
	}
	if got := rev.At(1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Reversed().At(1) = %v, want red", got)
	}
	if err := rev.Data().Validate(); err != nil {
		t.Errorf("Reversed() data invalid: %v", err)
	}
}

func TestColormapDataIsACopy(t *testing.T) {
	cm := greyscale(t)

	data := cm.Data()
	data.Red[0].V0 = 0.9

	if got := cm.Data().Red[0].V0; got != 0 {
		t.Errorf("mutating Data() result changed the colormap: Red[0].V0 = %v", got)
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	data := SegmentData{
		Red:   []Segment{{Pos: 0, V0: 0, V1: 0}, {Pos: 0.5, V0: 1, V1: 1}},
		Green: []Segment{{Pos: 0, V0: 0, V1: 0}, {Pos: 1, V0: 1, V1: 1}},
		Blue:  []Segment{{Pos: 0, V0: 0, V1: 0}, {Pos: 1, V0: 1, V1: 1}},
	}
	if _, err := New("broken", data); err == nil {
		t.Error("New() accepted red channel ending at 0.5")
	}
}
