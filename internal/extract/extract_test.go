package extract

import (
	"context"
	"testing"

	"github.com/ogolknev/clip-factory/internal/errors"
)

func TestSceneFileName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "scene_001.mp4"},
		{8, "scene_009.mp4"},
		{99, "scene_100.mp4"},
		{999, "scene_1000.mp4"},
	}
	for _, tt := range tests {
		if got := SceneFileName(tt.index); got != tt.want {
			t.Errorf("SceneFileName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestScenesRejectsEmptyList(t *testing.T) {
	_, err := Scenes(context.Background(), "in.mp4", nil, Options{}, nil, nil)
	if !errors.IsInvalidParameter(err) {
		t.Errorf("error = %v, want invalid parameter", err)
	}
}
