// Package ffmpeg builds and executes ffmpeg invocations for frame sampling
// and scene extraction.
package ffmpeg

import (
	"fmt"
	"strconv"
)

// DefaultBinary is the ffmpeg executable name resolved from PATH.
const DefaultBinary = "ffmpeg"

// BuildSampleArgs builds the arguments for decoding a video into a raw
// RGB frame stream on stdout at the given sampling rate. Frames are
// downscaled to width x height; histogram comparison does not care about
// aspect ratio, so the scale is fixed rather than preserving it.
func BuildSampleArgs(input string, samplingFPS float64, width, height int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", input,
		"-vf", fmt.Sprintf("fps=%s,scale=%d:%d", formatFloat(samplingFPS), width, height),
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	}
}

// BuildCutArgs builds the arguments for stream-copying one scene out of the
// source into its own file. Codec copy keeps extraction fast and lossless.
func BuildCutArgs(input string, start, duration float64, output string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", input,
		"-ss", formatFloat(start),
		"-t", formatFloat(duration),
		"-c:v", "copy",
		"-c:a", "copy",
		"-y",
		output,
	}
}

// BuildAudioSegmentArgs builds the arguments for extracting a scene's audio
// as mono 16 kHz PCM WAV, the input format expected by Whisper.
func BuildAudioSegmentArgs(input string, start, duration float64, output string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-ss", formatFloat(start),
		"-i", input,
		"-t", formatFloat(duration),
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		output,
	}
}

// formatFloat renders a float without exponent notation or trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
