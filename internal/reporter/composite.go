package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) VideoInfo(summary VideoSummary) {
	for _, r := range c.reporters {
		r.VideoInfo(summary)
	}
}

func (c *CompositeReporter) StageProgress(update StageProgress) {
	for _, r := range c.reporters {
		r.StageProgress(update)
	}
}

func (c *CompositeReporter) SamplingStarted(estimatedSamples int64) {
	for _, r := range c.reporters {
		r.SamplingStarted(estimatedSamples)
	}
}

func (c *CompositeReporter) SamplingProgress(done int64) {
	for _, r := range c.reporters {
		r.SamplingProgress(done)
	}
}

func (c *CompositeReporter) DetectionComplete(summary DetectionSummary) {
	for _, r := range c.reporters {
		r.DetectionComplete(summary)
	}
}

func (c *CompositeReporter) ExtractionStarted(totalScenes int) {
	for _, r := range c.reporters {
		r.ExtractionStarted(totalScenes)
	}
}

func (c *CompositeReporter) SceneExtracted(outcome SceneOutcome) {
	for _, r := range c.reporters {
		r.SceneExtracted(outcome)
	}
}

func (c *CompositeReporter) ExtractionComplete(summary ExtractionSummary) {
	for _, r := range c.reporters {
		r.ExtractionComplete(summary)
	}
}

func (c *CompositeReporter) SceneTranscribed(progress TranscriptionProgress) {
	for _, r := range c.reporters {
		r.SceneTranscribed(progress)
	}
}

func (c *CompositeReporter) SceneScored(progress ScoringProgress) {
	for _, r := range c.reporters {
		r.SceneScored(progress)
	}
}

func (c *CompositeReporter) ScoreTable(rows []ScoreRow) {
	for _, r := range c.reporters {
		r.ScoreTable(rows)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) OperationComplete(message string) {
	for _, r := range c.reporters {
		r.OperationComplete(message)
	}
}
