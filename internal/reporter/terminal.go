package reporter

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// TerminalReporter outputs human-friendly text to stderr. Stdout is
// reserved for the JSON scene document, so every reporter write goes to
// stderr to keep piped output clean.
type TerminalReporter struct {
	mu        sync.Mutex
	progress  *progressbar.ProgressBar
	lastStage string
	cyan      *color.Color
	green     *color.Color
	yellow    *color.Color
	red       *color.Color
	magenta   *color.Color
	bold      *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

func (r *TerminalReporter) section(name string) {
	fmt.Fprintln(os.Stderr)
	_, _ = r.cyan.Fprintln(os.Stderr, strings.ToUpper(name))
}

// printLabel prints a bold label with fixed width padding followed by a value.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Fprintf(os.Stderr, "  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) VideoInfo(summary VideoSummary) {
	r.section("video")
	const w = 12
	r.printLabel(w, "File:", summary.InputFile)
	r.printLabel(w, "Duration:", summary.Duration)
	r.printLabel(w, "Resolution:", summary.Resolution)
	r.printLabel(w, "Sampling:", fmt.Sprintf("%g fps", summary.SamplingFPS))
	r.printLabel(w, "Threshold:", fmt.Sprintf("%g", summary.Threshold))
	r.printLabel(w, "Length:", fmt.Sprintf("%g-%gs", summary.MinLength, summary.MaxLength))
}

func (r *TerminalReporter) StageProgress(update StageProgress) {
	r.mu.Lock()
	newStage := r.lastStage != update.Stage
	r.lastStage = update.Stage
	r.mu.Unlock()
	if newStage {
		r.section(update.Stage)
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n", r.magenta.Sprint("›"), update.Message)
}

func (r *TerminalReporter) SamplingStarted(estimatedSamples int64) {
	r.finishProgress()
	r.section("detection")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = newBar(estimatedSamples, "Sampling [")
}

func (r *TerminalReporter) SamplingProgress(done int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Set64(done)
	}
}

func (r *TerminalReporter) DetectionComplete(summary DetectionSummary) {
	r.finishProgress()
	fmt.Fprintf(os.Stderr, "  %s %d samples, %d candidate cuts, %d accepted\n",
		r.bold.Sprint("Analyzed:"), summary.Samples, summary.Candidates, summary.Cuts)
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		r.bold.Sprint("Scenes:"), r.green.Sprintf("%d", summary.Scenes))
}

func (r *TerminalReporter) ExtractionStarted(totalScenes int) {
	r.finishProgress()
	r.section("extraction")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = newBar(int64(totalScenes), "Extracting [")
}

func (r *TerminalReporter) SceneExtracted(outcome SceneOutcome) {
	r.mu.Lock()
	bar := r.progress
	r.mu.Unlock()
	if bar != nil {
		_ = bar.Add(1)
	}
	if outcome.Failed {
		fmt.Fprintf(os.Stderr, "  %s scene %d: %s\n", r.red.Sprint("✗"), outcome.Index, outcome.Message)
	}
}

func (r *TerminalReporter) ExtractionComplete(summary ExtractionSummary) {
	r.finishProgress()
	if summary.Failed > 0 {
		fmt.Fprintf(os.Stderr, "  %s, %s\n",
			r.green.Sprintf("%d extracted", summary.Extracted),
			r.red.Sprintf("%d failed", summary.Failed))
	} else {
		fmt.Fprintf(os.Stderr, "  %s\n", r.green.Sprintf("%d scenes extracted", summary.Extracted))
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n", r.bold.Sprint("Saved to"), summary.OutputDir)
}

func (r *TerminalReporter) SceneTranscribed(progress TranscriptionProgress) {
	r.mu.Lock()
	newStage := r.lastStage != "transcription"
	r.lastStage = "transcription"
	r.mu.Unlock()
	if newStage {
		r.section("transcription")
	}
	fmt.Fprintf(os.Stderr, "  %s scene %d/%d (%s): %d segments\n",
		r.magenta.Sprint("›"), progress.Index, progress.Total, progress.TimeRange, progress.Segments)
}

func (r *TerminalReporter) SceneScored(progress ScoringProgress) {
	r.mu.Lock()
	newStage := r.lastStage != "scoring"
	r.lastStage = "scoring"
	r.mu.Unlock()
	if newStage {
		r.section("scoring")
	}
	fmt.Fprintf(os.Stderr, "  %s scene %d/%d: %d\n",
		r.magenta.Sprint("›"), progress.Index, progress.Total, progress.Score)
}

func (r *TerminalReporter) ScoreTable(rows []ScoreRow) {
	if len(rows) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.AppendHeader(table.Row{"#", "Scene", "Score", "Text"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Rank, row.TimeRange, row.Score, row.Preview})
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
	}
	fmt.Fprintln(os.Stderr)
	t.Render()
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Fprintln(os.Stderr)
	_, _ = r.yellow.Fprintf(os.Stderr, "WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) OperationComplete(message string) {
	r.finishProgress()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("✓"), r.bold.Sprint(message))
}

func newBar(total int64, barStart string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      barStart,
			BarEnd:        "]",
		}),
	)
}
