package score

import (
	"context"
	"strconv"
	"strings"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/llm"
	"github.com/ogolknev/clip-factory/internal/scene"
)

const (
	modelSystemPrompt = "You rate how interesting content is from 0 to 100. Reply with only the number, no explanation."
	modelTemperature  = 0.3
	modelMaxTokens    = 10
)

// Completer is the slice of the LLM client the model scorer needs.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Model scores scenes by asking a chat completion model for a number.
// It is interchangeable with Heuristic behind the Scorer interface.
type Model struct {
	client Completer
}

// NewModel creates a model-backed scorer.
func NewModel(client Completer) *Model {
	return &Model{client: client}
}

// Score rates one scene by its transcription text. Scenes without text
// score zero without touching the network.
func (m *Model) Score(ctx context.Context, s scene.Scene) (int, error) {
	text := strings.TrimSpace(s.Text())
	if text == "" {
		return 0, nil
	}

	content, err := m.client.Complete(ctx, llm.Request{
		System:      modelSystemPrompt,
		User:        "Rate how interesting this text is (0-100):\n\n" + text,
		Temperature: modelTemperature,
		MaxTokens:   modelMaxTokens,
	})
	if err != nil {
		return 0, err
	}
	return parseScore(content)
}

// parseScore extracts the leading integer from a model reply and clamps
// it to [0, 100].
func parseScore(content string) (int, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0, errors.NewScoringError("empty model reply", nil)
	}
	value, err := strconv.Atoi(strings.TrimSuffix(fields[0], "."))
	if err != nil {
		return 0, errors.NewScoringError("model reply is not a number: "+content, err)
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return value, nil
}
