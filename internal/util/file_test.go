package util

import (
	"path/filepath"
	"testing"
)

func TestGetFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/lecture.mp4", "lecture"},
		{"movie.final.mkv", "movie.final"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := GetFileStem(tt.path); got != tt.want {
			t.Errorf("GetFileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSceneOutputDir(t *testing.T) {
	got := SceneOutputDir("/videos/lecture.mp4")
	want := filepath.Join("/videos", "lecture_scenes")
	if got != want {
		t.Errorf("SceneOutputDir() = %q, want %q", got, want)
	}
}

func TestDefaultExtractionWorkers(t *testing.T) {
	workers := DefaultExtractionWorkers()
	if workers < 1 || workers > 8 {
		t.Errorf("DefaultExtractionWorkers() = %d, want within [1, 8]", workers)
	}
}
