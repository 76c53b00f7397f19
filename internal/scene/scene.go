// Package scene defines the scene data model shared by every pipeline stage
// and its JSON wire format.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/util"
)

// coverageTolerance absorbs floating-point drift when checking that scenes
// tile the timeline exactly.
const coverageTolerance = 1e-6

// Segment is a transcribed sub-range of a scene. Timestamps are relative
// to the scene's start.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Scene is a contiguous time interval of the source video.
// Segments and Score are populated by the transcription and scoring stages.
type Scene struct {
	Start    float64   `json:"start"`
	End      float64   `json:"end"`
	Segments []Segment `json:"segments,omitempty"`
	Score    *int      `json:"score,omitempty"`
}

// Duration returns the scene length in seconds.
func (s Scene) Duration() float64 {
	return s.End - s.Start
}

// Text joins all segment texts into one string.
func (s Scene) Text() string {
	text := ""
	for i, seg := range s.Segments {
		if i > 0 {
			text += " "
		}
		text += seg.Text
	}
	return text
}

// List is an ordered list of scenes.
type List []Scene

// Document is the JSON document shape consumed and produced by every stage:
// {"scenes": [{"start": ..., "end": ...}, ...]}.
type Document struct {
	Scenes List `json:"scenes"`
}

// Rounded returns a copy of the list with all timestamps rounded to
// millisecond precision for stable JSON output.
func (l List) Rounded() List {
	out := make(List, len(l))
	for i, s := range l {
		rs := s
		rs.Start = util.Round3(s.Start)
		rs.End = util.Round3(s.End)
		if len(s.Segments) > 0 {
			rs.Segments = make([]Segment, len(s.Segments))
			for j, seg := range s.Segments {
				rs.Segments[j] = Segment{
					Start: util.Round3(seg.Start),
					End:   util.Round3(seg.End),
					Text:  seg.Text,
				}
			}
		}
		out[i] = rs
	}
	return out
}

// Validate checks the scene-list invariants: ordered, contiguous, covering
// [0, duration] exactly with no gaps or overlaps. A failure here is a defect
// in the reconciler, not bad user input.
func (l List) Validate(duration float64) error {
	if len(l) == 0 {
		return errors.NewInvariantViolationError("scene list is empty")
	}
	if math.Abs(l[0].Start) > coverageTolerance {
		return errors.NewInvariantViolationError(
			fmt.Sprintf("first scene starts at %g, expected 0", l[0].Start))
	}
	for i, s := range l {
		if s.End <= s.Start {
			return errors.NewInvariantViolationError(
				fmt.Sprintf("scene %d has non-positive length [%g, %g]", i, s.Start, s.End))
		}
		if i > 0 && math.Abs(s.Start-l[i-1].End) > coverageTolerance {
			return errors.NewInvariantViolationError(
				fmt.Sprintf("gap or overlap between scene %d (ends %g) and scene %d (starts %g)",
					i-1, l[i-1].End, i, s.Start))
		}
	}
	last := l[len(l)-1]
	if math.Abs(last.End-duration) > coverageTolerance {
		return errors.NewInvariantViolationError(
			fmt.Sprintf("last scene ends at %g, expected duration %g", last.End, duration))
	}
	return nil
}

// WriteJSON writes the document form of the list as indented JSON.
func (l List) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Scenes: l.Rounded()}); err != nil {
		return errors.NewIOError("failed to write scene list", err)
	}
	return nil
}

// Load reads a scene document from a reader.
func Load(r io.Reader) (List, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewJSONParseError("failed to parse scene list", err)
	}
	if len(doc.Scenes) == 0 {
		return nil, errors.NewJSONParseError("no scenes found in document", nil)
	}
	return doc.Scenes, nil
}

// LoadFile reads a scene document from a JSON file.
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot open scene file %s", path), err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// WriteFile writes the scene document to a JSON file.
func (l List) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("cannot create scene file %s", path), err)
	}
	defer func() { _ = f.Close() }()
	return l.WriteJSON(f)
}
