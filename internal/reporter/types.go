// Package reporter provides progress reporting interfaces and implementations.
package reporter

// VideoSummary describes the current video before detection begins.
type VideoSummary struct {
	InputFile   string
	Duration    string
	Resolution  string
	SamplingFPS float64
	Threshold   float64
	MinLength   float64
	MaxLength   float64
}

// StageProgress is a free-form progress message within a named stage.
type StageProgress struct {
	Stage   string
	Message string
}

// DetectionSummary contains boundary-detection results.
type DetectionSummary struct {
	Samples    int
	Candidates int
	Cuts       int
	Scenes     int
}

// SceneOutcome reports one extracted scene.
type SceneOutcome struct {
	Index      int
	Total      int
	OutputFile string
	Size       uint64
	Failed     bool
	Message    string
}

// ExtractionSummary contains final extraction results.
type ExtractionSummary struct {
	Extracted int
	Failed    int
	OutputDir string
}

// TranscriptionProgress reports one transcribed scene.
type TranscriptionProgress struct {
	Index     int
	Total     int
	Segments  int
	TimeRange string
}

// ScoringProgress reports one scored scene.
type ScoringProgress struct {
	Index int
	Total int
	Score int
}

// ScoreRow is one row of the final score summary table.
type ScoreRow struct {
	Rank      int
	TimeRange string
	Score     int
	Preview   string
}

// ReporterError contains structured error information for display.
type ReporterError struct {
	Title      string
	Message    string
	Suggestion string
}
