package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ogolknev/clip-factory/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		list     List
		duration float64
		wantErr  bool
	}{
		{
			name:     "contiguous cover",
			list:     List{{Start: 0, End: 8}, {Start: 8, End: 10}},
			duration: 10,
		},
		{
			name:     "single scene",
			list:     List{{Start: 0, End: 10}},
			duration: 10,
		},
		{
			name:     "empty list",
			list:     List{},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "first scene starts late",
			list:     List{{Start: 1, End: 10}},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "gap between scenes",
			list:     List{{Start: 0, End: 4}, {Start: 5, End: 10}},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "overlapping scenes",
			list:     List{{Start: 0, End: 6}, {Start: 5, End: 10}},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "zero-length scene",
			list:     List{{Start: 0, End: 0}, {Start: 0, End: 10}},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "short of duration",
			list:     List{{Start: 0, End: 9}},
			duration: 10,
			wantErr:  true,
		},
		{
			name:     "tiny float drift tolerated",
			list:     List{{Start: 0, End: 5.0000000001}, {Start: 5, End: 10}},
			duration: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate(tt.duration)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsKind(err, errors.KindInvariantViolation) {
				t.Errorf("Validate() error kind = %v, want invariant violation", err)
			}
		})
	}
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	score := 42
	list := List{
		{Start: 0, End: 8.12345, Segments: []Segment{{Start: 0, End: 2.5, Text: "hello"}}},
		{Start: 8.12345, End: 10, Score: &score},
	}

	var buf bytes.Buffer
	if err := list.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"scenes"`) {
		t.Errorf("output missing scenes key: %s", out)
	}
	// Timestamps are rounded to millisecond precision on output.
	if !strings.Contains(out, "8.123") || strings.Contains(out, "8.12345") {
		t.Errorf("timestamps not rounded: %s", out)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d scenes, want 2", len(loaded))
	}
	if loaded[0].Segments[0].Text != "hello" {
		t.Errorf("segment text = %q", loaded[0].Segments[0].Text)
	}
	if loaded[1].Score == nil || *loaded[1].Score != 42 {
		t.Errorf("score = %v, want 42", loaded[1].Score)
	}
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	_, err := Load(strings.NewReader(`{"scenes":[]}`))
	if !errors.IsKind(err, errors.KindJSONParse) {
		t.Errorf("Load() error = %v, want JSON parse error", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{scenes: nope`))
	if !errors.IsKind(err, errors.KindJSONParse) {
		t.Errorf("Load() error = %v, want JSON parse error", err)
	}
}

func TestSceneText(t *testing.T) {
	s := Scene{Segments: []Segment{
		{Text: "first part"},
		{Text: "second part"},
	}}
	if got := s.Text(); got != "first part second part" {
		t.Errorf("Text() = %q", got)
	}

	if got := (Scene{}).Text(); got != "" {
		t.Errorf("Text() on empty scene = %q, want empty", got)
	}
}

func TestSceneDuration(t *testing.T) {
	s := Scene{Start: 2.5, End: 8}
	if got := s.Duration(); got != 5.5 {
		t.Errorf("Duration() = %g, want 5.5", got)
	}
}
