package colormap

import (
	"encoding/json"
	"fmt"
)

// colormapJSON is the serialised form of a colormap. Each channel is a list
// of [position, value_in, value_out] triples, mirroring the segment-data
// layout of the consuming plotting libraries.
type colormapJSON struct {
	Name  string       `json:"name"`
	Red   [][3]float64 `json:"red"`
	Green [][3]float64 `json:"green"`
	Blue  [][3]float64 `json:"blue"`
}

// ToJSON serialises the colormap to an indented JSON document. The document
// round-trips through FromJSON to an equal colormap.
func (c *Colormap) ToJSON() ([]byte, error) {
	doc := colormapJSON{
		Name:  c.name,
		Red:   segmentsToTriples(c.data.Red),
		Green: segmentsToTriples(c.data.Green),
		Blue:  segmentsToTriples(c.data.Blue),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FromJSON reconstructs a colormap from a document produced by ToJSON. The
// segment data is re-validated, so hand-edited files fail with the same
// errors as direct construction.
func FromJSON(data []byte) (*Colormap, error) {
	var doc colormapJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse colormap JSON: %w", err)
	}
	sd := SegmentData{
		Red:   triplesToSegments(doc.Red),
		Green: triplesToSegments(doc.Green),
		Blue:  triplesToSegments(doc.Blue),
	}
	return New(doc.Name, sd)
}

func segmentsToTriples(segments []Segment) [][3]float64 {
	out := make([][3]float64, len(segments))
	for i, seg := range segments {
		out[i] = [3]float64{seg.Pos, seg.V0, seg.V1}
	}
	return out
}

func triplesToSegments(triples [][3]float64) []Segment {
	out := make([]Segment, len(triples))
	for i, t := range triples {
		out[i] = Segment{Pos: t[0], V0: t[1], V1: t[2]}
	}
	return out
}
