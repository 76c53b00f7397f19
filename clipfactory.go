// Package clipfactory provides a Go library for splitting videos into
// scenes by visual dissimilarity, extracting them, and rating them by
// transcription interest.
//
// Basic usage:
//
//	detector, err := clipfactory.New(
//	    clipfactory.WithThreshold(0.7),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scenes, err := detector.Detect(ctx, "input.mp4", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range scenes {
//	    fmt.Printf("%.2f - %.2f\n", s.Start, s.End)
//	}
package clipfactory

import (
	"context"
	"io"

	"github.com/ogolknev/clip-factory/internal/config"
	"github.com/ogolknev/clip-factory/internal/detect"
	"github.com/ogolknev/clip-factory/internal/discovery"
	"github.com/ogolknev/clip-factory/internal/extract"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
)

// Re-export the scene types used in results.
type (
	Scene   = scene.Scene
	Segment = scene.Segment
	Scenes  = scene.List
)

// Reporter receives progress events during detection and extraction.
// Pass nil to discard them.
type Reporter = reporter.Reporter

// Detector is the main entry point for scene boundary detection.
type Detector struct {
	params detect.Params
}

// Option configures the detector.
type Option func(*detect.Params)

// WithSamplingFPS sets how many frames per second are sampled (default 1).
func WithSamplingFPS(fps float64) Option {
	return func(p *detect.Params) {
		p.SamplingFPS = fps
	}
}

// WithThreshold sets the dissimilarity threshold in [0, 1] above which a
// frame pair becomes a candidate cut (default 0.6).
func WithThreshold(threshold float64) Option {
	return func(p *detect.Params) {
		p.Threshold = threshold
	}
}

// WithLengthBounds sets the scene length constraints in seconds
// (defaults 3 and 60).
func WithLengthBounds(minLength, maxLength float64) Option {
	return func(p *detect.Params) {
		p.MinLength = minLength
		p.MaxLength = maxLength
	}
}

// WithMaxSamples caps how many frames are sampled, for previewing long
// videos (default unlimited).
func WithMaxSamples(n int) Option {
	return func(p *detect.Params) {
		p.MaxSamples = n
	}
}

// New creates a Detector with the given options. Parameters are
// validated eagerly, so an out-of-range option fails here rather than
// mid-run.
func New(opts ...Option) (*Detector, error) {
	params := detect.Params{
		SamplingFPS: config.DefaultSamplingFPS,
		Threshold:   config.DefaultThreshold,
		MinLength:   config.DefaultMinLength,
		MaxLength:   config.DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(&params)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Detector{params: params}, nil
}

// Detect runs boundary detection on a video file. The returned scenes
// are contiguous and cover the full duration.
func (d *Detector) Detect(ctx context.Context, input string, rep Reporter) (Scenes, error) {
	scenes, _, err := detect.Detect(ctx, input, d.params, rep, nil)
	return scenes, err
}

// DetectToJSON runs detection and writes the scene document to w.
func (d *Detector) DetectToJSON(ctx context.Context, input string, w io.Writer, rep Reporter) error {
	scenes, _, err := detect.Detect(ctx, input, d.params, rep, nil)
	if err != nil {
		return err
	}
	return scenes.WriteJSON(w)
}

// ExtractResult summarizes a scene extraction run.
type ExtractResult struct {
	Extracted int
	Failed    int
	OutputDir string
	Files     []string
}

// Extract cuts the given scenes out of the source video into numbered
// files in a "<stem>_scenes" directory next to it.
func (d *Detector) Extract(ctx context.Context, input string, scenes Scenes, rep Reporter) (*ExtractResult, error) {
	res, err := extract.Scenes(ctx, input, scenes, extract.Options{}, rep, nil)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{
		Extracted: res.Extracted,
		Failed:    res.Failed,
		OutputDir: res.OutputDir,
		Files:     res.Files,
	}, nil
}

// FindVideos finds video files in a directory.
func FindVideos(dir string) ([]string, error) {
	return discovery.FindVideoFiles(dir)
}
