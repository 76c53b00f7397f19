// Package score rates scenes by how interesting their transcription is,
// either with local text heuristics or a remote language model.
package score

import (
	"context"
	"sort"

	"github.com/ogolknev/clip-factory/internal/logging"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
)

// Scorer rates one scene on a 0-100 scale. Implementations must be safe
// to call sequentially over a scene list.
type Scorer interface {
	Score(ctx context.Context, s scene.Scene) (int, error)
}

// All scores every scene in place. A scene whose scorer fails gets a
// zero score and a warning; the rest of the list still gets scored.
func All(ctx context.Context, scenes scene.List, scorer Scorer, rep reporter.Reporter, logger *logging.Logger) error {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	logger.Stage("scoring")
	for i := range scenes {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := scorer.Score(ctx, scenes[i])
		if err != nil {
			logger.Warn("Scoring scene %d failed: %v", i+1, err)
			rep.Warning("scoring scene failed, assigning 0: " + err.Error())
			value = 0
		}
		scenes[i].Score = &value
		logger.Scene(i+1, len(scenes), "score %d", value)
		rep.SceneScored(reporter.ScoringProgress{
			Index: i + 1,
			Total: len(scenes),
			Score: value,
		})
	}
	return nil
}

// SelectTop keeps the n highest-scoring scenes and restores timeline
// order among them. Unscored scenes count as zero. n <= 0 or n beyond
// the list length keeps everything.
func SelectTop(scenes scene.List, n int) scene.List {
	if n <= 0 || n >= len(scenes) {
		return scenes
	}

	byScore := make(scene.List, len(scenes))
	copy(byScore, scenes)
	sort.SliceStable(byScore, func(i, j int) bool {
		return scoreOf(byScore[i]) > scoreOf(byScore[j])
	})

	top := byScore[:n]
	sort.Slice(top, func(i, j int) bool {
		return top[i].Start < top[j].Start
	})
	return top
}

func scoreOf(s scene.Scene) int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}
