package detect

import (
	"math"
	"testing"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/scene"
)

func assertScenes(t *testing.T, got scene.List, want []scene.Scene) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d scenes %v, want %d scenes %v", len(got), got, len(want), want)
	}
	for i := range got {
		if math.Abs(got[i].Start-want[i].Start) > 1e-9 || math.Abs(got[i].End-want[i].End) > 1e-9 {
			t.Errorf("scene[%d] = [%g, %g], want [%g, %g]",
				i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestReconcileMergeShort(t *testing.T) {
	tests := []struct {
		name     string
		cuts     []float64
		duration float64
		minLen   float64
		maxLen   float64
		want     []scene.Scene
	}{
		{
			name:     "short opening scene merges forward",
			cuts:     []float64{2, 8},
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 8}, {Start: 8, End: 10}},
		},
		{
			name:     "no cuts yields single scene",
			cuts:     nil,
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 10}},
		},
		{
			name:     "all cuts accepted",
			cuts:     []float64{4, 8, 12},
			duration: 16,
			minLen:   3,
			maxLen:   60,
			want: []scene.Scene{
				{Start: 0, End: 4}, {Start: 4, End: 8},
				{Start: 8, End: 12}, {Start: 12, End: 16},
			},
		},
		{
			name:     "short final scene is exempt",
			cuts:     []float64{5, 9},
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want: []scene.Scene{
				{Start: 0, End: 5}, {Start: 5, End: 9}, {Start: 9, End: 10},
			},
		},
		{
			name:     "consecutive short cuts accumulate until long enough",
			cuts:     []float64{1, 2, 3, 4},
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 3}, {Start: 3, End: 10}},
		},
		{
			name:     "edge cuts are dropped",
			cuts:     []float64{0, 5, 10},
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 5}, {Start: 5, End: 10}},
		},
		{
			name:     "duration shorter than min yields single scene",
			cuts:     []float64{1},
			duration: 2,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 2}},
		},
		{
			name:     "exact minimum length is accepted",
			cuts:     []float64{3},
			duration: 10,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 3}, {Start: 3, End: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconcile(tt.cuts, tt.duration, tt.minLen, tt.maxLen)
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			assertScenes(t, got, tt.want)
		})
	}
}

func TestReconcileSplitLong(t *testing.T) {
	tests := []struct {
		name     string
		cuts     []float64
		duration float64
		minLen   float64
		maxLen   float64
		want     []scene.Scene
	}{
		{
			name:     "scene just over max splits in two",
			cuts:     nil,
			duration: 61,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 30.5}, {Start: 30.5, End: 61}},
		},
		{
			name:     "double the max splits in two at the bound",
			cuts:     nil,
			duration: 120,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 60}, {Start: 60, End: 120}},
		},
		{
			name:     "slightly over double splits in three",
			cuts:     nil,
			duration: 121,
			minLen:   3,
			maxLen:   60,
			want: []scene.Scene{
				{Start: 0, End: 121.0 / 3},
				{Start: 121.0 / 3, End: 242.0 / 3},
				{Start: 242.0 / 3, End: 121},
			},
		},
		{
			name:     "only the long scene splits",
			cuts:     []float64{10},
			duration: 40,
			minLen:   3,
			maxLen:   20,
			want: []scene.Scene{
				{Start: 0, End: 10},
				{Start: 10, End: 25},
				{Start: 25, End: 40},
			},
		},
		{
			// When no partition can satisfy both bounds, the max-length
			// ceiling wins and the halves may fall below min.
			name:     "ceiling outranks floor when both cannot hold",
			cuts:     nil,
			duration: 7,
			minLen:   4,
			maxLen:   5,
			want:     []scene.Scene{{Start: 0, End: 3.5}, {Start: 3.5, End: 7}},
		},
		{
			name:     "exact max does not split",
			cuts:     nil,
			duration: 60,
			minLen:   3,
			maxLen:   60,
			want:     []scene.Scene{{Start: 0, End: 60}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconcile(tt.cuts, tt.duration, tt.minLen, tt.maxLen)
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			assertScenes(t, got, tt.want)
		})
	}
}

func TestReconcileCoversDuration(t *testing.T) {
	got, err := Reconcile([]float64{7, 33, 98.5}, 200, 5, 45)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if err := got.Validate(200); err != nil {
		t.Errorf("result fails coverage validation: %v", err)
	}
	for _, s := range got {
		if s.Duration() > 45+1e-6 {
			t.Errorf("scene [%g, %g] exceeds max length", s.Start, s.End)
		}
	}
}

func TestReconcileInvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		minLen   float64
		maxLen   float64
	}{
		{"zero duration", 0, 3, 60},
		{"negative duration", -1, 3, 60},
		{"zero min length", 10, 0, 60},
		{"zero max length", 10, 3, 0},
		{"max below min", 10, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconcile(nil, tt.duration, tt.minLen, tt.maxLen)
			if !errors.IsInvalidParameter(err) {
				t.Errorf("error = %v, want invalid parameter", err)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	valid := Params{SamplingFPS: 1, Threshold: 0.6, MinLength: 3, MaxLength: 60}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v for valid params", err)
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero fps", func(p *Params) { p.SamplingFPS = 0 }},
		{"negative threshold", func(p *Params) { p.Threshold = -0.5 }},
		{"threshold above one", func(p *Params) { p.Threshold = 1.01 }},
		{"zero min length", func(p *Params) { p.MinLength = 0 }},
		{"max below min", func(p *Params) { p.MaxLength = 2 }},
		{"negative max samples", func(p *Params) { p.MaxSamples = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if !errors.IsInvalidParameter(p.Validate()) {
				t.Errorf("Validate() = %v, want invalid parameter", p.Validate())
			}
		})
	}
}
