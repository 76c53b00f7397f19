package main

import (
	"os"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ogolknev/clip-factory/internal/config"
	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/llm"
	"github.com/ogolknev/clip-factory/internal/reporter"
	"github.com/ogolknev/clip-factory/internal/scene"
	"github.com/ogolknev/clip-factory/internal/score"
	"github.com/ogolknev/clip-factory/internal/util"
)

const previewRuneLimit = 60

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var (
		topN     int
		keepAll  bool
		useModel bool
		table    bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "score [scenes.json]",
		Short: "Rate transcribed scenes by interest and keep the best",
		Long: `Score rates each scene 0-100 from its transcription, sorts by
score, keeps the top N, and restores timeline order among the
survivors. The default scorer uses local text heuristics; --use-model
asks an OpenAI-compatible chat model instead (requires OPENAI_API_KEY
in the environment or a .env file).

The document is read from the file argument, or from stdin when the
argument is "-" or stdin is piped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("top") {
				cfg.Scoring.TopN = topN
			}
			if keepAll {
				cfg.Scoring.KeepAll = true
			}
			if useModel {
				cfg.Scoring.Method = config.ScoringModel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			scenes, err := loadScoreInput(args)
			if err != nil {
				return err
			}

			logger, err := ctx.setupLogger(".")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			var scorer score.Scorer
			switch cfg.Scoring.Method {
			case config.ScoringModel:
				client := llm.NewClient(llm.Config{
					APIKey:         cfg.LLM.APIKey,
					BaseURL:        cfg.LLM.BaseURL,
					Model:          cfg.LLM.Model,
					TimeoutSeconds: cfg.LLM.TimeoutSeconds,
				})
				scorer = score.NewModel(client)
				logger.Info("Scoring %d scenes with model %s", len(scenes), cfg.LLM.Model)
			default:
				scorer = score.NewHeuristic()
				logger.Info("Scoring %d scenes with text heuristics", len(scenes))
			}

			rep := ctx.newReporter()
			if err := score.All(cmd.Context(), scenes, scorer, rep, logger); err != nil {
				return err
			}

			kept := scenes
			if !cfg.Scoring.KeepAll {
				kept = score.SelectTop(scenes, cfg.Scoring.TopN)
			}

			if table {
				rep.ScoreTable(scoreRows(kept))
			}

			w, closeOutput, err := openOutput(output)
			if err != nil {
				return err
			}
			if err := kept.WriteJSON(w); err != nil {
				_ = closeOutput()
				return err
			}
			return closeOutput()
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&topN, "top", config.DefaultTopN, "Keep only the top N most interesting scenes")
	fl.BoolVar(&keepAll, "all", false, "Keep all scenes without filtering")
	fl.BoolVar(&useModel, "use-model", false, "Score with a chat model instead of text heuristics")
	fl.BoolVar(&table, "table", false, "Print a score summary table to stderr")
	fl.StringVarP(&output, "output", "o", "", "Write the scene document to a file instead of stdout")

	return cmd
}

// loadScoreInput reads the scene document from the file argument, or from
// stdin when piped or the argument is "-".
func loadScoreInput(args []string) (scene.List, error) {
	fromStdin := len(args) == 0 || args[0] == "-"
	if fromStdin {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, errors.NewInvalidParameterError(
				"no scene document: pass a scenes.json path or pipe one to stdin")
		}
		return scene.Load(os.Stdin)
	}
	return scene.LoadFile(args[0])
}

func scoreRows(scenes scene.List) []reporter.ScoreRow {
	rows := make([]reporter.ScoreRow, len(scenes))
	for i, s := range scenes {
		value := 0
		if s.Score != nil {
			value = *s.Score
		}
		rows[i] = reporter.ScoreRow{
			Rank:      i + 1,
			TimeRange: util.FormatTimeRange(s.Start, s.End),
			Score:     value,
			Preview:   truncateText(s.Text(), previewRuneLimit),
		}
	}
	return rows
}

func truncateText(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
