package score

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ogolknev/clip-factory/internal/scene"
)

// DefaultKeywords are discourse markers that tend to flag explanatory or
// emphatic speech. Callers targeting other languages supply their own list.
var DefaultKeywords = []string{
	"important", "means", "because", "therefore", "consequently",
	"example", "result", "conclusion", "interesting", "unusual",
	"main", "key",
}

// Heuristic scores scenes from transcription text alone, with no
// network access. The scale is 0-100: up to 30 points for text length,
// up to 30 for speech density, and up to 40 for interest markers
// (question and exclamation punctuation plus keyword hits).
type Heuristic struct {
	Keywords []string
}

// NewHeuristic creates a heuristic scorer with the default keyword list.
func NewHeuristic() *Heuristic {
	return &Heuristic{Keywords: DefaultKeywords}
}

// Score rates one scene. Scenes without transcription score zero.
func (h *Heuristic) Score(_ context.Context, s scene.Scene) (int, error) {
	if len(s.Segments) == 0 {
		return 0, nil
	}

	var textLength, wordCount int
	var spokenDuration float64
	for _, seg := range s.Segments {
		textLength += utf8.RuneCountInString(strings.TrimSpace(seg.Text))
		wordCount += len(strings.Fields(seg.Text))
		spokenDuration += seg.End - seg.Start
	}

	lengthScore := math.Min(30, float64(textLength)/10)

	var densityScore float64
	if spokenDuration > 0 {
		wordsPerSecond := float64(wordCount) / spokenDuration
		densityScore = math.Min(30, wordsPerSecond*5)
	}

	var interestScore float64
	fullText := strings.ToLower(s.Text())
	if strings.Contains(fullText, "?") {
		interestScore += 10
	}
	if strings.Contains(fullText, "!") {
		interestScore += 10
	}
	keywordHits := 0
	for _, kw := range h.Keywords {
		keywordHits += strings.Count(fullText, kw)
	}
	interestScore += math.Min(20, float64(keywordHits)*3)

	total := math.Min(100, lengthScore+densityScore+interestScore)
	return int(math.Round(total)), nil
}
