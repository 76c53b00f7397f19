// Package config provides configuration types and defaults for clip-factory.
package config

import (
	"fmt"
	"strings"

	"github.com/ogolknev/clip-factory/internal/errors"
)

// Default constants
const (
	// DefaultSamplingFPS is how many frames per second are sampled for detection.
	DefaultSamplingFPS = 1.0

	// DefaultThreshold is the histogram-distance cut threshold (0-1).
	DefaultThreshold = 0.6

	// DefaultMinLength is the minimum scene length in seconds.
	DefaultMinLength = 3.0

	// DefaultMaxLength is the maximum scene length in seconds.
	DefaultMaxLength = 60.0

	// DefaultWhisperModel is the speech recognition model used for transcription.
	DefaultWhisperModel = "small"

	// DefaultTopN is how many top-scored scenes are kept by the score stage.
	DefaultTopN = 10

	// DefaultLLMBaseURL is the chat-completions endpoint for model scoring.
	DefaultLLMBaseURL = "https://api.openai.com/v1/chat/completions"

	// DefaultLLMModel is the chat model used for model scoring.
	DefaultLLMModel = "gpt-3.5-turbo"

	// DefaultLLMTimeoutSeconds bounds a single scoring request.
	DefaultLLMTimeoutSeconds = 30
)

// ScoringMethod selects the interest-scoring strategy.
type ScoringMethod string

const (
	ScoringHeuristic ScoringMethod = "heuristic"
	ScoringModel     ScoringMethod = "model"
)

// ParseScoringMethod parses a string into a ScoringMethod.
func ParseScoringMethod(s string) (ScoringMethod, error) {
	switch strings.ToLower(s) {
	case "heuristic":
		return ScoringHeuristic, nil
	case "model", "ai":
		return ScoringModel, nil
	default:
		return "", errors.NewInvalidParameterError(
			fmt.Sprintf("unknown scoring method %q, valid options: heuristic, model", s))
	}
}

// Detection holds the scene-boundary detection parameters.
type Detection struct {
	// SamplingFPS is how many frames per second to sample. Must be > 0.
	SamplingFPS float64 `toml:"sampling_fps"`
	// Threshold is the histogram distance above which a cut is flagged (0-1).
	Threshold float64 `toml:"threshold"`
	// MinLength is the minimum scene length in seconds. Must be > 0.
	MinLength float64 `toml:"min_length"`
	// MaxLength is the maximum scene length in seconds. Must be >= MinLength.
	MaxLength float64 `toml:"max_length"`
	// MaxSamples stops sampling after this many frames (0 = unlimited).
	MaxSamples int `toml:"max_samples"`
}

// Extraction holds per-scene media extraction options.
type Extraction struct {
	// Workers is the number of parallel ffmpeg extraction processes.
	// Zero selects an automatic default from CPU topology.
	Workers int `toml:"workers"`
}

// Transcription holds speech-to-text options.
type Transcription struct {
	// Model is the Whisper model name (tiny, base, small, medium, large).
	Model string `toml:"model"`
	// Language optionally forces a language code (e.g. "en"); empty = auto.
	Language string `toml:"language"`
}

// Scoring holds interest-scoring options.
type Scoring struct {
	Method ScoringMethod `toml:"method"`
	// TopN keeps only the N highest-scored scenes. Ignored when KeepAll is set.
	TopN    int  `toml:"top_n"`
	KeepAll bool `toml:"keep_all"`
}

// LLM holds credentials and connection settings for the model scorer.
// Loaded once at startup and passed to the scorer constructor; nothing
// else in the pipeline reads it.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ChatCompletionsURL derives the chat-completions endpoint from an API
// base URL. OPENAI_API_BASE conventionally names the API root (for
// example "https://api.openai.com/v1"); a value that already names the
// endpoint is kept as is.
func ChatCompletionsURL(base string) string {
	base = strings.TrimRight(base, "/")
	if strings.HasSuffix(base, "/chat/completions") {
		return base
	}
	return base + "/chat/completions"
}

// Config holds all configuration for scene processing.
type Config struct {
	Detection     Detection     `toml:"detection"`
	Extraction    Extraction    `toml:"extraction"`
	Transcription Transcription `toml:"transcription"`
	Scoring       Scoring       `toml:"scoring"`
	LLM           LLM           `toml:"llm"`

	// Logging options
	LogDir  string `toml:"log_dir"`
	Verbose bool   `toml:"-"`
	NoLog   bool   `toml:"-"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Detection: Detection{
			SamplingFPS: DefaultSamplingFPS,
			Threshold:   DefaultThreshold,
			MinLength:   DefaultMinLength,
			MaxLength:   DefaultMaxLength,
		},
		Transcription: Transcription{
			Model: DefaultWhisperModel,
		},
		Scoring: Scoring{
			Method: ScoringHeuristic,
			TopN:   DefaultTopN,
		},
		LLM: LLM{
			BaseURL:        DefaultLLMBaseURL,
			Model:          DefaultLLMModel,
			TimeoutSeconds: DefaultLLMTimeoutSeconds,
		},
	}
}

// Validate checks the configuration for errors. Validation happens before
// any decoding work begins so bad input never pays for partial work.
func (c *Config) Validate() error {
	d := c.Detection
	if d.SamplingFPS <= 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("sampling_fps must be > 0, got %g", d.SamplingFPS))
	}
	if d.Threshold < 0 || d.Threshold > 1 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("threshold must be within [0, 1], got %g", d.Threshold))
	}
	if d.MinLength <= 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("min_length must be > 0, got %g", d.MinLength))
	}
	if d.MaxLength < d.MinLength {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("max_length (%g) must be >= min_length (%g)", d.MaxLength, d.MinLength))
	}
	if d.MaxSamples < 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("max_samples must be >= 0, got %d", d.MaxSamples))
	}

	if c.Extraction.Workers < 0 {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("workers must be >= 0, got %d", c.Extraction.Workers))
	}

	switch c.Scoring.Method {
	case ScoringHeuristic, ScoringModel:
	default:
		return errors.NewInvalidParameterError(
			fmt.Sprintf("unknown scoring method %q", c.Scoring.Method))
	}
	if c.Scoring.TopN <= 0 && !c.Scoring.KeepAll {
		return errors.NewInvalidParameterError(
			fmt.Sprintf("top_n must be > 0, got %d", c.Scoring.TopN))
	}

	if c.Scoring.Method == ScoringModel && strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.NewInvalidParameterError(
			"model scoring requires an API key (OPENAI_API_KEY or llm.api_key)")
	}

	return nil
}
