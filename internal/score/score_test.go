package score

import (
	"context"
	"fmt"
	"testing"

	"github.com/ogolknev/clip-factory/internal/llm"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
)

func scored(start, end float64, value int) scene.Scene {
	return scene.Scene{Start: start, End: end, Score: &value}
}

func TestSelectTop(t *testing.T) {
	scenes := scene.List{
		scored(0, 10, 40),
		scored(10, 20, 90),
		scored(20, 30, 10),
		scored(30, 40, 70),
	}

	got := SelectTop(scenes, 2)
	if len(got) != 2 {
		t.Fatalf("SelectTop() returned %d scenes, want 2", len(got))
	}
	// Highest scores are 90 and 70; result is back in timeline order.
	if got[0].Start != 10 || got[1].Start != 30 {
		t.Errorf("SelectTop() = %v, want scenes starting at 10 and 30", got)
	}
}

func TestSelectTopKeepsAll(t *testing.T) {
	scenes := scene.List{scored(0, 10, 1), scored(10, 20, 2)}

	for _, n := range []int{0, -1, 2, 5} {
		got := SelectTop(scenes, n)
		if len(got) != 2 {
			t.Errorf("SelectTop(n=%d) returned %d scenes, want 2", n, len(got))
		}
	}
}

func TestSelectTopUnscoredCountAsZero(t *testing.T) {
	scenes := scene.List{
		{Start: 0, End: 10},
		scored(10, 20, 5),
	}

	got := SelectTop(scenes, 1)
	if len(got) != 1 || got[0].Start != 10 {
		t.Errorf("SelectTop() = %v, want the scored scene", got)
	}
}

type stubScorer struct {
	values map[int]int
	errAt  int
	calls  int
}

func (s *stubScorer) Score(context.Context, scene.Scene) (int, error) {
	s.calls++
	if s.calls == s.errAt {
		return 0, fmt.Errorf("scorer blew up")
	}
	return s.values[s.calls], nil
}

func TestAllAssignsScoresAndSurvivesFailures(t *testing.T) {
	scenes := scene.List{
		{Start: 0, End: 5},
		{Start: 5, End: 10},
		{Start: 10, End: 15},
	}
	scorer := &stubScorer{values: map[int]int{1: 11, 3: 33}, errAt: 2}

	err := All(context.Background(), scenes, scorer, reporter.NullReporter{}, nil)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []int{11, 0, 33}
	for i, s := range scenes {
		if s.Score == nil || *s.Score != want[i] {
			t.Errorf("scene %d score = %v, want %d", i, s.Score, want[i])
		}
	}
}

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, llm.Request) (string, error) {
	return s.reply, s.err
}

func TestModelScoreParsesReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    int
		wantErr bool
	}{
		{"plain number", "85", 85, false},
		{"number with trailing words", "73 out of 100", 73, false},
		{"number with period", "60.", 60, false},
		{"clamped above", "150", 100, false},
		{"clamped below", "-5", 0, false},
		{"not a number", "very interesting", 0, true},
		{"empty reply", "   ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(stubCompleter{reply: tt.reply})
			got, err := m.Score(context.Background(), sceneWithText(0, 10, "some speech"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Score() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestModelScoreSkipsEmptyText(t *testing.T) {
	m := NewModel(stubCompleter{err: fmt.Errorf("should not be called")})
	got, err := m.Score(context.Background(), scene.Scene{Start: 0, End: 10})
	if err != nil || got != 0 {
		t.Errorf("Score() = %d, %v; want 0, nil", got, err)
	}
}
