// Package sample decodes a video into evenly spaced frame samples and
// computes a color-histogram descriptor for each one.
package sample

import (
	"context"
	"fmt"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/ffmpeg"
)

// Decoded frame geometry. Frames are downscaled before histogramming;
// the histogram is insensitive to resolution.
const (
	FrameWidth  = 160
	FrameHeight = 90
	frameSize   = FrameWidth * FrameHeight * 3
)

// Sample is one sampled frame: its timestamp and histogram descriptor.
// The descriptor is owned by the receiver of the callback; the raw frame
// is never exposed.
type Sample struct {
	Timestamp  float64
	Descriptor Histogram
}

// Params controls the sampling pass.
type Params struct {
	// SamplingFPS is the target sampling rate. Must be > 0.
	SamplingFPS float64
	// MaxSamples stops decoding after this many samples (0 = unlimited).
	MaxSamples int
}

// Run decodes videoPath at the configured sampling rate and calls fn once
// per sample in timestamp order. The sequence is finite and not
// restartable; fn returning an error aborts decoding. Returns the number
// of samples delivered.
//
// A video with zero decodable frames is unreadable media. A video shorter
// than one sampling interval yields a single sample, which is a valid
// boundary condition for the pipeline (one scene spanning the duration).
func Run(ctx context.Context, videoPath string, p Params, fn func(Sample) error) (int, error) {
	if p.SamplingFPS <= 0 {
		return 0, errors.NewInvalidParameterError(
			fmt.Sprintf("sampling_fps must be > 0, got %g", p.SamplingFPS))
	}
	if p.MaxSamples < 0 {
		return 0, errors.NewInvalidParameterError(
			fmt.Sprintf("max_samples must be >= 0, got %d", p.MaxSamples))
	}

	args := ffmpeg.BuildSampleArgs(videoPath, p.SamplingFPS, FrameWidth, FrameHeight)

	count, err := ffmpeg.RunFrames(ctx, args, frameSize, func(index int, frame []byte) error {
		s := Sample{
			Timestamp:  float64(index) / p.SamplingFPS,
			Descriptor: NewHistogram(frame),
		}
		if err := fn(s); err != nil {
			return err
		}
		if p.MaxSamples > 0 && index+1 >= p.MaxSamples {
			return ffmpeg.ErrStopDecoding
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	if count == 0 {
		return 0, errors.NewUnreadableMediaError(
			fmt.Sprintf("no decodable frames in %s", videoPath), nil)
	}
	return count, nil
}
