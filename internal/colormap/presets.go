package colormap

import (
	"fmt"
	"sort"
)

// presets holds the built-in stop lists, in 8-bit channel values ordered
// from the low end of the gradient to the high end.
var presets = map[string][]Stop{
	"greyscale": {
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
	},
	"coldhot": {
		{R: 0, G: 255, B: 255},
		{R: 0, G: 0, B: 255},
		{R: 127, G: 127, B: 127},
		{R: 255, G: 0, B: 0},
		{R: 255, G: 255, B: 0},
	},
	"jet": {
		{R: 0, G: 0, B: 127},
		{R: 0, G: 0, B: 255},
		{R: 0, G: 127, B: 255},
		{R: 0, G: 255, B: 255},
		{R: 127, G: 255, B: 127},
		{R: 255, G: 255, B: 0},
		{R: 255, G: 127, B: 0},
		{R: 255, G: 0, B: 0},
		{R: 127, G: 0, B: 0},
	},
	"viridis": {
		{R: 72, G: 33, B: 114},
		{R: 67, G: 62, B: 133},
		{R: 56, G: 87, B: 140},
		{R: 45, G: 111, B: 142},
		{R: 36, G: 133, B: 142},
		{R: 30, G: 155, B: 138},
		{R: 42, G: 176, B: 127},
		{R: 81, G: 197, B: 105},
		{R: 134, G: 212, B: 73},
		{R: 194, G: 223, B: 35},
		{R: 253, G: 231, B: 37},
	},
	"plasma": {
		{R: 61, G: 4, B: 155},
		{R: 99, G: 0, B: 167},
		{R: 133, G: 6, B: 166},
		{R: 166, G: 32, B: 152},
		{R: 192, G: 58, B: 131},
		{R: 213, G: 84, B: 110},
		{R: 231, G: 111, B: 90},
		{R: 246, G: 141, B: 69},
		{R: 253, G: 174, B: 50},
		{R: 252, G: 210, B: 36},
		{R: 240, G: 248, B: 33},
	},
	"inferno": {
		{R: 37, G: 12, B: 3},
		{R: 19, G: 11, B: 52},
		{R: 57, G: 9, B: 99},
		{R: 95, G: 19, B: 110},
		{R: 133, G: 33, B: 107},
		{R: 169, G: 46, B: 94},
		{R: 203, G: 65, B: 73},
		{R: 230, G: 93, B: 47},
		{R: 247, G: 131, B: 17},
		{R: 252, G: 174, B: 19},
		{R: 245, G: 219, B: 76},
		{R: 252, G: 254, B: 164},
	},
	"bluered": {
		{R: 0, G: 0, B: 255},
		{R: 255, G: 0, B: 0},
	},
}

// Preset returns a built-in colormap by name.
func Preset(name string) (*Colormap, error) {
	stops, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return FromStops(name, stops, nil, BuildOptions{Mode: Mode8Bit})
}

// PresetNames returns the names of all built-in colormaps, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
