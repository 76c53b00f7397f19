package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events, one per line. Events go to stderr
// by default because stdout carries the scene document.
type JSONReporter struct {
	writer           io.Writer
	mu               sync.Mutex
	lastProgressTime time.Time
}

// NewJSONReporter creates a new JSON reporter that writes to stderr.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stderr}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) VideoInfo(summary VideoSummary) {
	r.write(map[string]interface{}{
		"type":         "video_info",
		"input_file":   summary.InputFile,
		"duration":     summary.Duration,
		"resolution":   summary.Resolution,
		"sampling_fps": summary.SamplingFPS,
		"threshold":    summary.Threshold,
		"min_length":   summary.MinLength,
		"max_length":   summary.MaxLength,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) StageProgress(update StageProgress) {
	r.write(map[string]interface{}{
		"type":      "stage_progress",
		"stage":     update.Stage,
		"message":   update.Message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) SamplingStarted(estimatedSamples int64) {
	r.mu.Lock()
	r.lastProgressTime = time.Time{}
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":              "sampling_started",
		"estimated_samples": estimatedSamples,
		"timestamp":         r.timestamp(),
	})
}

func (r *JSONReporter) SamplingProgress(done int64) {
	const minInterval = 5 * time.Second

	now := time.Now()
	r.mu.Lock()
	if !r.lastProgressTime.IsZero() && now.Sub(r.lastProgressTime) < minInterval {
		r.mu.Unlock()
		return
	}
	r.lastProgressTime = now
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":      "sampling_progress",
		"samples":   done,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) DetectionComplete(summary DetectionSummary) {
	r.write(map[string]interface{}{
		"type":       "detection_complete",
		"samples":    summary.Samples,
		"candidates": summary.Candidates,
		"cuts":       summary.Cuts,
		"scenes":     summary.Scenes,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) ExtractionStarted(totalScenes int) {
	r.write(map[string]interface{}{
		"type":         "extraction_started",
		"total_scenes": totalScenes,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) SceneExtracted(outcome SceneOutcome) {
	r.write(map[string]interface{}{
		"type":        "scene_extracted",
		"scene":       outcome.Index,
		"total":       outcome.Total,
		"output_file": outcome.OutputFile,
		"size":        outcome.Size,
		"failed":      outcome.Failed,
		"message":     outcome.Message,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) ExtractionComplete(summary ExtractionSummary) {
	r.write(map[string]interface{}{
		"type":       "extraction_complete",
		"extracted":  summary.Extracted,
		"failed":     summary.Failed,
		"output_dir": summary.OutputDir,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) SceneTranscribed(progress TranscriptionProgress) {
	r.write(map[string]interface{}{
		"type":       "scene_transcribed",
		"scene":      progress.Index,
		"total":      progress.Total,
		"segments":   progress.Segments,
		"time_range": progress.TimeRange,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) SceneScored(progress ScoringProgress) {
	r.write(map[string]interface{}{
		"type":      "scene_scored",
		"scene":     progress.Index,
		"total":     progress.Total,
		"score":     progress.Score,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) ScoreTable(rows []ScoreRow) {
	events := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		events[i] = map[string]interface{}{
			"rank":       row.Rank,
			"time_range": row.TimeRange,
			"score":      row.Score,
			"preview":    row.Preview,
		}
	}

	r.write(map[string]interface{}{
		"type":      "score_table",
		"rows":      events,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) OperationComplete(message string) {
	r.write(map[string]interface{}{
		"type":      "operation_complete",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}
