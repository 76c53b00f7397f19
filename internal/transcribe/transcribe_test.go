package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
)

func TestBuildWhisperArgs(t *testing.T) {
	s := NewService(Config{Model: "small"})
	args := s.buildWhisperArgs("/tmp/work/scene.wav", "/tmp/work")

	want := []string{
		"/tmp/work/scene.wav",
		"--model", "small",
		"--output_format", "json",
		"--output_dir", "/tmp/work",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestBuildWhisperArgsWithLanguage(t *testing.T) {
	s := NewService(Config{Model: "base", Language: "en"})
	args := s.buildWhisperArgs("in.wav", "out")

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--language en") {
		t.Errorf("args missing language flag: %v", args)
	}
}

func TestTranscribeSceneRunsExtractThenWhisper(t *testing.T) {
	workDir := t.TempDir()

	var commands [][]string
	s := NewService(Config{Model: "small"})
	s.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		commands = append(commands, append([]string{name}, args...))
		if name == WhisperCommand {
			payload := `{"segments":[
				{"start":0.0,"end":2.5004,"text":"  hello there  "},
				{"start":2.5,"end":5.0,"text":"general remark"}
			]}`
			return os.WriteFile(filepath.Join(workDir, "scene.json"), []byte(payload), 0644)
		}
		return nil
	})

	segments, err := s.TranscribeScene(context.Background(), "video.mp4", scene.Scene{Start: 10, End: 15}, workDir)
	if err != nil {
		t.Fatalf("TranscribeScene() error = %v", err)
	}

	if len(commands) != 2 {
		t.Fatalf("ran %d commands, want 2 (ffmpeg then whisper)", len(commands))
	}
	if commands[0][0] != "ffmpeg" {
		t.Errorf("first command = %q, want ffmpeg", commands[0][0])
	}
	ffmpegArgs := strings.Join(commands[0], " ")
	if !strings.Contains(ffmpegArgs, "-ss 10") || !strings.Contains(ffmpegArgs, "-t 5") {
		t.Errorf("ffmpeg args missing scene window: %v", commands[0])
	}
	if commands[1][0] != WhisperCommand {
		t.Errorf("second command = %q, want %q", commands[1][0], WhisperCommand)
	}

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "hello there" {
		t.Errorf("segment text = %q, want trimmed %q", segments[0].Text, "hello there")
	}
	if segments[0].End != 2.5 {
		t.Errorf("segment end = %g, want rounded 2.5", segments[0].End)
	}
	if segments[0].Start != 0 || segments[1].End != 5 {
		t.Errorf("segment timestamps not relative to scene start: %+v", segments)
	}
}

func TestScenesAttachesSegments(t *testing.T) {
	s := NewService(Config{Model: "small"})
	s.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		if name == WhisperCommand {
			outputDir := args[len(args)-1]
			payload := `{"segments":[{"start":0,"end":1,"text":"ok"}]}`
			return os.WriteFile(filepath.Join(outputDir, "scene.json"), []byte(payload), 0644)
		}
		return nil
	})

	scenes := scene.List{
		{Start: 0, End: 8},
		{Start: 8, End: 10},
	}
	err := s.Scenes(context.Background(), "video.mp4", scenes, reporter.NullReporter{}, nil)
	if err != nil {
		t.Fatalf("Scenes() error = %v", err)
	}
	for i, sc := range scenes {
		if len(sc.Segments) != 1 || sc.Segments[0].Text != "ok" {
			t.Errorf("scene %d segments = %+v, want one segment", i, sc.Segments)
		}
	}
}

func TestScenesRejectsEmptyList(t *testing.T) {
	s := NewService(Config{Model: "small"})
	if err := s.Scenes(context.Background(), "video.mp4", nil, nil, nil); err == nil {
		t.Fatal("Scenes() error = nil, want error for empty list")
	}
}
