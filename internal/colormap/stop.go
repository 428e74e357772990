// Package colormap builds linearly interpolated colormaps from ordered
// colour stops. The output is the per-channel segment table used by
// matplotlib-style plotting libraries, plus a sampled lookup table for
// direct use from Go.
package colormap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how stop channel values are interpreted.
type Mode int

const (
	// ModeUnit interprets channel values as already-normalised floats in [0, 1].
	ModeUnit Mode = iota
	// Mode8Bit interprets channel values as 8-bit values in [0, 255],
	// normalised by dividing by 255.
	Mode8Bit
)

// String returns the mode name used in CLI flags and error messages.
func (m Mode) String() string {
	switch m {
	case Mode8Bit:
		return "8bit"
	default:
		return "unit"
	}
}

// Stop is a single colour anchor along the gradient. The order of stops is
// semantically meaningful: the first stop is the low end of the colormap and
// the last is the high end.
type Stop struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Hex returns the stop as a hex colour string, assuming unit-range channels.
func (s Stop) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", unitToByte(s.R), unitToByte(s.G), unitToByte(s.B))
}

// RGBA returns the stop as an image/color value, assuming unit-range channels.
func (s Stop) RGBA() color.RGBA {
	return color.RGBA{R: unitToByte(s.R), G: unitToByte(s.G), B: unitToByte(s.B), A: 255}
}

// unitToByte converts a unit-range channel to an 8-bit value with rounding.
func unitToByte(v float64) uint8 {
	n := int(v*255.0 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// StopFromColor converts an image/color value to a unit-range Stop.
func StopFromColor(c color.Color) Stop {
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; reduce to 8-bit before normalising.
	return Stop{
		R: float64(r>>8) / 255.0,
		G: float64(g>>8) / 255.0,
		B: float64(b>>8) / 255.0,
	}
}

// ParseStop parses a single stop specification. Accepted forms:
//
//	#rrggbb     hex colour (also without the leading #)
//	r,g,b       comma-separated channel values in the given mode
//
// Hex colours are returned in the requested mode, so "#ff0000" parses to
// (255, 0, 0) under Mode8Bit and (1, 0, 0) under ModeUnit.
func ParseStop(spec string, mode Mode) (Stop, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Stop{}, fmt.Errorf("empty stop specification")
	}

	if looksLikeHex(spec) {
		hex := spec
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Stop{}, fmt.Errorf("invalid hex colour %q: %w", spec, err)
		}
		s := Stop{R: c.R, G: c.G, B: c.B}
		if mode == Mode8Bit {
			s = Stop{R: s.R * 255.0, G: s.G * 255.0, B: s.B * 255.0}
		}
		return s, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return Stop{}, fmt.Errorf("invalid stop %q: expected '#rrggbb' or 'r,g,b'", spec)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Stop{}, fmt.Errorf("invalid channel value %q in stop %q", p, spec)
		}
		ch[i] = v
	}
	return Stop{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseStops parses a list of stop specifications in order.
func ParseStops(specs []string, mode Mode) ([]Stop, error) {
	stops := make([]Stop, 0, len(specs))
	for _, spec := range specs {
		s, err := ParseStop(spec, mode)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, nil
}

// looksLikeHex reports whether spec should be parsed as a hex colour rather
// than a comma-separated triple.
func looksLikeHex(spec string) bool {
	if strings.HasPrefix(spec, "#") {
		return true
	}
	if strings.Contains(spec, ",") {
		return false
	}
	if len(spec) != 6 {
		return false
	}
	for _, r := range spec {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
