// Package transcribe runs Whisper over extracted scene audio and attaches
// the resulting text segments to each scene.
package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/ffmpeg"
	"github.com/ogolknev/clip-factory/internal/logging"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
	"github.com/ogolknev/clip-factory/internal/util"
)

// WhisperCommand is the transcription executable resolved from PATH.
const WhisperCommand = "whisper"

// Config controls the transcription run.
type Config struct {
	// Model is the Whisper model name (tiny, base, small, medium, large).
	Model string
	// Language optionally forces a language code (e.g. "en", "ru").
	// Empty lets Whisper auto-detect.
	Language string
}

// Service transcribes scene audio through the Whisper CLI.
type Service struct {
	cfg           Config
	ffmpegBinary  string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a transcription service with the given configuration.
func NewService(cfg Config) *Service {
	return &Service{
		cfg:          cfg,
		ffmpegBinary: ffmpeg.DefaultBinary,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return errors.NewCancelledError()
		}
		return errors.WrapExecError(name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// whisperPayload is the JSON structure Whisper writes next to the audio.
type whisperPayload struct {
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// buildWhisperArgs constructs the Whisper CLI invocation for one audio file.
func (s *Service) buildWhisperArgs(audioPath, outputDir string) []string {
	args := []string{
		audioPath,
		"--model", s.cfg.Model,
		"--output_format", "json",
		"--output_dir", outputDir,
	}
	if s.cfg.Language != "" {
		args = append(args, "--language", s.cfg.Language)
	}
	return args
}

// TranscribeScene extracts the scene's audio as 16 kHz mono WAV, runs
// Whisper on it, and returns the text segments. Segment timestamps are
// relative to the scene start, since Whisper sees only the scene's audio.
func (s *Service) TranscribeScene(ctx context.Context, videoPath string, sc scene.Scene, workDir string) ([]scene.Segment, error) {
	audioPath := filepath.Join(workDir, "scene.wav")

	extractArgs := ffmpeg.BuildAudioSegmentArgs(videoPath, sc.Start, sc.Duration(), audioPath)
	if err := s.run(ctx, s.ffmpegBinary, extractArgs...); err != nil {
		return nil, err
	}

	if err := s.run(ctx, WhisperCommand, s.buildWhisperArgs(audioPath, workDir)...); err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(workDir, "scene.json")
	return loadSegments(jsonPath)
}

func loadSegments(jsonPath string) ([]scene.Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("reading whisper output %s", jsonPath), err)
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.NewJSONParseError("failed to parse whisper output", err)
	}

	segments := make([]scene.Segment, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		segments = append(segments, scene.Segment{
			Start: util.Round3(seg.Start),
			End:   util.Round3(seg.End),
			Text:  strings.TrimSpace(seg.Text),
		})
	}
	return segments, nil
}

// Scenes transcribes every scene in place, attaching segments to each.
// Temporary audio lives in a per-run scratch directory that is removed
// on return.
func (s *Service) Scenes(ctx context.Context, videoPath string, scenes scene.List, rep reporter.Reporter, logger *logging.Logger) error {
	if len(scenes) == 0 {
		return errors.NewInvalidParameterError("no scenes to transcribe")
	}
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	scratch := filepath.Join(os.TempDir(), "clip-factory-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return errors.NewIOError("creating transcription scratch directory", err)
	}
	defer os.RemoveAll(scratch)

	logger.Stage("transcription")
	logger.Info("Transcribing %d scenes with whisper model %q", len(scenes), s.cfg.Model)

	for i := range scenes {
		if err := ctx.Err(); err != nil {
			return errors.NewCancelledError()
		}

		workDir := filepath.Join(scratch, fmt.Sprintf("scene_%03d", i+1))
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return errors.NewIOError("creating scene work directory", err)
		}

		segments, err := s.TranscribeScene(ctx, videoPath, scenes[i], workDir)
		if err != nil {
			return err
		}
		scenes[i].Segments = segments

		logger.Scene(i+1, len(scenes), "%d segments", len(segments))
		rep.SceneTranscribed(reporter.TranscriptionProgress{
			Index:     i + 1,
			Total:     len(scenes),
			Segments:  len(segments),
			TimeRange: util.FormatTimeRange(scenes[i].Start, scenes[i].End),
		})
	}

	return nil
}
