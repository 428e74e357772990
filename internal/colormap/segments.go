package colormap

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by Build and SegmentData.Validate. Wrapped
// errors carry detail; match with errors.Is.
var (
	// ErrStopCount indicates fewer than two colour stops were supplied.
	ErrStopCount = errors.New("at least two colour stops are required")
	// ErrLengthMismatch indicates the positions list does not match the
	// number of colour stops.
	ErrLengthMismatch = errors.New("positions length must match colour stop count")
	// ErrPositionOrder indicates positions are not strictly increasing from
	// 0.0 to 1.0.
	ErrPositionOrder = errors.New("positions must increase strictly from 0.0 to 1.0")
	// ErrChannelRange indicates a channel value outside the valid range for
	// the selected mode.
	ErrChannelRange = errors.New("channel value out of range")
)

// positionTolerance absorbs float noise when checking that positions start
// at 0.0 and end at 1.0.
const positionTolerance = 1e-9

// Segment is one anchor of a per-channel interpolation table: at Pos the
// channel approaches V0 from the left and leaves as V1 to the right. Build
// always emits V0 == V1 (no discontinuous jumps).
type Segment struct {
	Pos float64
	V0  float64
	V1  float64
}

// SegmentData is the per-channel interpolation table consumed by
// linear-segmented colormap constructors. It is never mutated once returned.
type SegmentData struct {
	Red   []Segment
	Green []Segment
	Blue  []Segment
}

// BuildOptions control how Build interprets its stops.
type BuildOptions struct {
	// Mode selects 8-bit or unit-range channel values.
	Mode Mode
	// Reverse flips the stop order, turning a low-to-high gradient into its
	// mirror image. Positions are unaffected.
	Reverse bool
}

// DefaultPositions returns n evenly spaced positions from 0.0 to 1.0
// inclusive, the spacing used when no explicit positions are given.
func DefaultPositions(n int) []float64 {
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(i) / float64(n-1)
	}
	pos[n-1] = 1.0
	return pos
}

// Build converts an ordered list of colour stops into per-channel segment
// data suitable for linear interpolation. If positions is nil the stops are
// spaced uniformly over [0, 1]. Build is a pure function and safe for
// concurrent use.
func Build(stops []Stop, positions []float64, opts BuildOptions) (SegmentData, error) {
	if len(stops) < 2 {
		return SegmentData{}, fmt.Errorf("%w: got %d", ErrStopCount, len(stops))
	}

	if positions == nil {
		positions = DefaultPositions(len(stops))
	} else if len(positions) != len(stops) {
		return SegmentData{}, fmt.Errorf("%w: %d positions for %d stops",
			ErrLengthMismatch, len(positions), len(stops))
	}

	if err := validatePositions(positions); err != nil {
		return SegmentData{}, err
	}

	norm := make([]Stop, len(stops))
	for i, s := range stops {
		n, err := normaliseStop(s, opts.Mode)
		if err != nil {
			return SegmentData{}, fmt.Errorf("stop %d: %w", i, err)
		}
		norm[i] = n
	}

	if opts.Reverse {
		for i, j := 0, len(norm)-1; i < j; i, j = i+1, j-1 {
			norm[i], norm[j] = norm[j], norm[i]
		}
	}

	data := SegmentData{
		Red:   make([]Segment, len(norm)),
		Green: make([]Segment, len(norm)),
		Blue:  make([]Segment, len(norm)),
	}
	for i, s := range norm {
		pos := positions[i]
		data.Red[i] = Segment{Pos: pos, V0: s.R, V1: s.R}
		data.Green[i] = Segment{Pos: pos, V0: s.G, V1: s.G}
		data.Blue[i] = Segment{Pos: pos, V0: s.B, V1: s.B}
	}
	return data, nil
}

// validatePositions checks that positions increase strictly and span [0, 1].
func validatePositions(positions []float64) error {
	if math.Abs(positions[0]) > positionTolerance {
		return fmt.Errorf("%w: first position is %v, want 0.0", ErrPositionOrder, positions[0])
	}
	if math.Abs(positions[len(positions)-1]-1.0) > positionTolerance {
		return fmt.Errorf("%w: last position is %v, want 1.0",
			ErrPositionOrder, positions[len(positions)-1])
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return fmt.Errorf("%w: position %v at index %d does not increase over %v",
				ErrPositionOrder, positions[i], i, positions[i-1])
		}
	}
	return nil
}

// normaliseStop validates a stop's channels for the given mode and returns
// the stop with unit-range channels.
func normaliseStop(s Stop, mode Mode) (Stop, error) {
	max := 1.0
	if mode == Mode8Bit {
		max = 255.0
	}
	for _, v := range [3]float64{s.R, s.G, s.B} {
		if math.IsNaN(v) || v < 0 || v > max {
			return Stop{}, fmt.Errorf("%w: %v not in [0, %v] for %s mode",
				ErrChannelRange, v, max, mode)
		}
	}
	if mode == Mode8Bit {
		return Stop{R: s.R / 255.0, G: s.G / 255.0, B: s.B / 255.0}, nil
	}
	return s, nil
}

// Validate checks that segment data is well-formed for linear interpolation:
// every channel has at least two anchors with strictly increasing positions
// spanning [0, 1] and unit-range values. Used when loading segment data from
// external files.
func (d SegmentData) Validate() error {
	for _, ch := range []struct {
		name     string
		segments []Segment
	}{
		{"red", d.Red},
		{"green", d.Green},
		{"blue", d.Blue},
	} {
		if len(ch.segments) < 2 {
			return fmt.Errorf("%s channel: %w: got %d", ch.name, ErrStopCount, len(ch.segments))
		}
		positions := make([]float64, len(ch.segments))
		for i, seg := range ch.segments {
			positions[i] = seg.Pos
			for _, v := range [2]float64{seg.V0, seg.V1} {
				if math.IsNaN(v) || v < 0 || v > 1 {
					return fmt.Errorf("%s channel anchor %d: %w: %v not in [0, 1]",
						ch.name, i, ErrChannelRange, v)
				}
			}
		}
		if err := validatePositions(positions); err != nil {
			return fmt.Errorf("%s channel: %w", ch.name, err)
		}
	}
	return nil
}

// clone returns a deep copy of the segment data so callers cannot mutate a
// colormap's internal table through accessor results.
func (d SegmentData) clone() SegmentData {
	out := SegmentData{
		Red:   make([]Segment, len(d.Red)),
		Green: make([]Segment, len(d.Green)),
		Blue:  make([]Segment, len(d.Blue)),
	}
	copy(out.Red, d.Red)
	copy(out.Green, d.Green)
	copy(out.Blue, d.Blue)
	return out
}
