package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// DefaultResolution is the number of lookup-table entries sampled from the
// segment data, matching the conventional 256-entry colormap resolution.
const DefaultResolution = 256

// Colormap maps a scalar in [0, 1] to a colour by linear interpolation over
// its segment data. Values outside [0, 1] clamp to the end colours.
type Colormap struct {
	name string
	data SegmentData
	lut  []color.RGBA
}

// New creates a colormap from validated segment data.
func New(name string, data SegmentData) (*Colormap, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = "custom"
	}
	cm := &Colormap{
		name: name,
		data: data.clone(),
	}
	cm.lut = buildLUT(cm.data, DefaultResolution)
	return cm, nil
}

// FromStops builds segment data from the given stops and wraps it in a
// colormap named by opts. It is the single-call path from colour stops to a
// usable colormap.
func FromStops(name string, stops []Stop, positions []float64, opts BuildOptions) (*Colormap, error) {
	data, err := Build(stops, positions, opts)
	if err != nil {
		return nil, err
	}
	return New(name, data)
}

// Name returns the colormap name.
func (c *Colormap) Name() string {
	return c.name
}

// Data returns a copy of the underlying segment data.
func (c *Colormap) Data() SegmentData {
	return c.data.clone()
}

// Resolution returns the number of lookup-table entries.
func (c *Colormap) Resolution() int {
	return len(c.lut)
}

// At returns the colour for a normalised value. Values below 0 return the
// first colour, values above 1 the last; NaN maps to the first colour.
func (c *Colormap) At(v float64) color.RGBA {
	if math.IsNaN(v) || v <= 0 {
		return c.lut[0]
	}
	if v >= 1 {
		return c.lut[len(c.lut)-1]
	}
	return c.lut[int(v*float64(len(c.lut)-1)+0.5)]
}

// Sample evaluates the segment data directly at v without lookup-table
// quantisation, returning unit-range channels.
func (c *Colormap) Sample(v float64) Stop {
	if math.IsNaN(v) {
		v = 0
	}
	return Stop{
		R: evalChannel(c.data.Red, v),
		G: evalChannel(c.data.Green, v),
		B: evalChannel(c.data.Blue, v),
	}
}

// Reversed returns a new colormap with the gradient mirrored.
func (c *Colormap) Reversed() *Colormap {
	rev := func(segments []Segment) []Segment {
		out := make([]Segment, len(segments))
		for i, seg := range segments {
			out[len(segments)-1-i] = Segment{Pos: 1 - seg.Pos, V0: seg.V1, V1: seg.V0}
		}
		return out
	}
	data := SegmentData{Red: rev(c.data.Red), Green: rev(c.data.Green), Blue: rev(c.data.Blue)}
	cm := &Colormap{
		name: c.name + "_r",
		data: data,
		lut:  buildLUT(data, len(c.lut)),
	}
	return cm
}

// String returns a short human-readable description.
func (c *Colormap) String() string {
	return fmt.Sprintf("colormap %q (%d anchors, %d entries)", c.name, len(c.data.Red), len(c.lut))
}

// buildLUT samples the segment data at n evenly spaced points.
func buildLUT(data SegmentData, n int) []color.RGBA {
	lut := make([]color.RGBA, n)
	for i := range lut {
		v := float64(i) / float64(n-1)
		lut[i] = color.RGBA{
			R: unitToByte(evalChannel(data.Red, v)),
			G: unitToByte(evalChannel(data.Green, v)),
			B: unitToByte(evalChannel(data.Blue, v)),
			A: 255,
		}
	}
	return lut
}

// evalChannel linearly interpolates one channel's segment table at v.
// Between anchor i-1 and i the value runs from V1 of the left anchor to V0
// of the right anchor.
func evalChannel(segments []Segment, v float64) float64 {
	if v <= segments[0].Pos {
		return segments[0].V1
	}
	last := segments[len(segments)-1]
	if v >= last.Pos {
		return last.V0
	}
	// First anchor strictly right of v; i >= 1 because v > segments[0].Pos.
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].Pos > v
	})
	left, right := segments[i-1], segments[i]
	t := (v - left.Pos) / (right.Pos - left.Pos)
	return left.V1 + t*(right.V0-left.V1)
}
