package reporter

// Reporter defines the interface for progress reporting across the
// detect/extract/transcribe/score pipeline.
type Reporter interface {
	VideoInfo(summary VideoSummary)
	StageProgress(update StageProgress)
	SamplingStarted(estimatedSamples int64)
	SamplingProgress(done int64)
	DetectionComplete(summary DetectionSummary)
	ExtractionStarted(totalScenes int)
	SceneExtracted(outcome SceneOutcome)
	ExtractionComplete(summary ExtractionSummary)
	SceneTranscribed(progress TranscriptionProgress)
	SceneScored(progress ScoringProgress)
	ScoreTable(rows []ScoreRow)
	Warning(message string)
	Error(err ReporterError)
	OperationComplete(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) VideoInfo(VideoSummary)                 {}
func (NullReporter) StageProgress(StageProgress)            {}
func (NullReporter) SamplingStarted(int64)                  {}
func (NullReporter) SamplingProgress(int64)                 {}
func (NullReporter) DetectionComplete(DetectionSummary)     {}
func (NullReporter) ExtractionStarted(int)                  {}
func (NullReporter) SceneExtracted(SceneOutcome)            {}
func (NullReporter) ExtractionComplete(ExtractionSummary)   {}
func (NullReporter) SceneTranscribed(TranscriptionProgress) {}
func (NullReporter) SceneScored(ScoringProgress)            {}
func (NullReporter) ScoreTable([]ScoreRow)                  {}
func (NullReporter) Warning(string)                         {}
func (NullReporter) Error(ReporterError)                    {}
func (NullReporter) OperationComplete(string)               {}
