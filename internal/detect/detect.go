package detect

import (
	"context"
	"fmt"
	"math"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/ffprobe"
	"github.com/ogolknev/clip-factory/internal/logging"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/sample"
	"github.com/ogolknev/clip-factory/internal/scene"
	"github.com/ogolknev/clip-factory/internal/util"
)

// Params controls a detection run.
type Params struct {
	SamplingFPS float64
	Threshold   float64
	MinLength   float64
	MaxLength   float64
	// MaxSamples caps how many frames are sampled (0 = unlimited).
	MaxSamples int
}

// Validate rejects out-of-range parameters before any media is touched.
func (p Params) Validate() error {
	if p.SamplingFPS <= 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("sampling_fps must be > 0, got %g", p.SamplingFPS))
	}
	if p.Threshold < 0 || p.Threshold > 1 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("threshold must be within [0, 1], got %g", p.Threshold))
	}
	if p.MinLength <= 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("min_length must be > 0, got %g", p.MinLength))
	}
	if p.MaxLength <= 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("max_length must be > 0, got %g", p.MaxLength))
	}
	if p.MaxLength < p.MinLength {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("max_length (%g) must be >= min_length (%g)", p.MaxLength, p.MinLength))
	}
	if p.MaxSamples < 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("max_samples must be >= 0, got %d", p.MaxSamples))
	}
	return nil
}

// Detect runs the full boundary pipeline against a video file: probe,
// sample, score dissimilarity, filter by threshold, reconcile lengths.
// The returned scene list is contiguous and covers [0, duration].
func Detect(ctx context.Context, videoPath string, p Params, rep reporter.Reporter, logger *logging.Logger) (scene.List, *ffprobe.MediaInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	logger.Stage("detection")
	logger.Info("Probing %s", videoPath)
	info, err := ffprobe.GetMediaInfo(videoPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Media: duration=%.3fs resolution=%dx%d fps=%.3f",
		info.Duration, info.Width, info.Height, info.FrameRate)

	rep.VideoInfo(reporter.VideoSummary{
		InputFile:   videoPath,
		Duration:    util.FormatDuration(info.Duration),
		Resolution:  fmt.Sprintf("%dx%d", info.Width, info.Height),
		SamplingFPS: p.SamplingFPS,
		Threshold:   p.Threshold,
		MinLength:   p.MinLength,
		MaxLength:   p.MaxLength,
	})

	estimated := int64(math.Ceil(info.Duration * p.SamplingFPS))
	if estimated < 1 {
		estimated = 1
	}
	rep.SamplingStarted(estimated)

	var acc Accumulator
	samples, err := sample.Run(ctx, videoPath, sample.Params{
		SamplingFPS: p.SamplingFPS,
		MaxSamples:  p.MaxSamples,
	}, func(s sample.Sample) error {
		acc.Observe(s)
		rep.SamplingProgress(int64(len(acc.Points()) + 1))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Sampled %d frames at %g fps", samples, p.SamplingFPS)

	cuts, err := Boundaries(acc.Points(), p.Threshold)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Candidate cuts: %v", cuts)

	scenes, err := Reconcile(cuts, info.Duration, p.MinLength, p.MaxLength)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Detected %d scenes from %d candidate cuts", len(scenes), len(cuts))

	rep.DetectionComplete(reporter.DetectionSummary{
		Samples:    samples,
		Candidates: len(cuts),
		Cuts:       len(scenes) - 1,
		Scenes:     len(scenes),
	})

	return scenes, info, nil
}
