package colormap

import (
	"image/color"
	"math"
	"testing"
)

func TestParseStop(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		mode    Mode
		want    Stop
		wantErr bool
	}{
		{name: "hex red 8-bit", spec: "#ff0000", mode: Mode8Bit, want: Stop{R: 255, G: 0, B: 0}},
		{name: "hex red unit", spec: "#ff0000", mode: ModeUnit, want: Stop{R: 1, G: 0, B: 0}},
		{name: "hex without hash", spec: "00ff00", mode: Mode8Bit, want: Stop{R: 0, G: 255, B: 0}},
		{name: "csv 8-bit", spec: "0,157,0", mode: Mode8Bit, want: Stop{R: 0, G: 157, B: 0}},
		{name: "csv unit", spec: "0.4,0.2,0.0", mode: ModeUnit, want: Stop{R: 0.4, G: 0.2, B: 0}},
		{name: "csv with spaces", spec: " 255 , 255 , 0 ", mode: Mode8Bit, want: Stop{R: 255, G: 255, B: 0}},
		{name: "empty", spec: "", wantErr: true},
		{name: "bad hex", spec: "#zzzzzz", wantErr: true},
		{name: "two channels", spec: "1,2", wantErr: true},
		{name: "four channels", spec: "1,2,3,4", wantErr: true},
		{name: "non-numeric channel", spec: "1,red,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStop(tt.spec, tt.mode)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStop(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStop(%q) returned error: %v", tt.spec, err)
			}
			if math.Abs(got.R-tt.want.R) > 1e-9 ||
				math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 {
				t.Errorf("ParseStop(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseStops(t *testing.T) {
	stops, err := ParseStops([]string{"#ff0000", "0,0,255"}, Mode8Bit)
	if err != nil {
		t.Fatalf("ParseStops() returned error: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("ParseStops() returned %d stops, want 2", len(stops))
	}
	if stops[0].R != 255 || stops[1].B != 255 {
		t.Errorf("ParseStops() = %+v", stops)
	}

	if _, err := ParseStops([]string{"#ff0000", "nope"}, Mode8Bit); err == nil {
		t.Error("ParseStops() accepted an invalid stop")
	}
}

func TestStopHexAndRGBA(t *testing.T) {
	s := Stop{R: 1, G: 0.5, B: 0}
	if got := s.Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, want %q", got, "#ff8000")
	}
	if got := s.RGBA(); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("RGBA() = %v, want {255 128 0 255}", got)
	}
}

func TestStopFromColor(t *testing.T) {
	s := StopFromColor(color.RGBA{R: 255, G: 128, B: 0, A: 255})
	if s.R != 1 {
		t.Errorf("StopFromColor().R = %v, want 1", s.R)
	}
	if math.Abs(s.G-128.0/255.0) > 1e-9 {
		t.Errorf("StopFromColor().G = %v, want %v", s.G, 128.0/255.0)
	}
}
