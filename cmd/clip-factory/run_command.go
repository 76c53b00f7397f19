package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ogolknev/clip-factory/internal/config"
	"github.com/ogolknev/clip-factory/internal/detect"
	"github.com/ogolknev/clip-factory/internal/extract"
	"github.com/ogolknev/clip-factory/internal/llm"
	"github.com/ogolknev/clip-factory/internal/score"
	"github.com/ogolknev/clip-factory/internal/transcribe"
	"github.com/ogolknev/clip-factory/internal/util"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		topN     int
		keepAll  bool
		useModel bool
		skipCut  bool
		table    bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "run <video>",
		Short: "Run the full pipeline: detect, extract, transcribe, score",
		Long: `Run chains every stage over one video. The final scored scene
document goes to stdout (or --output); extracted scene files and the
document land in a "<name>_scenes" directory next to the input.`,
		Args: cobra.ExactArgs(1),
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

			videoPath := args[0]
			logger, err := ctx.setupLogger(videoPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			rep := ctx.newReporter()

			params := detect.Params{
				SamplingFPS: cfg.Detection.SamplingFPS,
				Threshold:   cfg.Detection.Threshold,
				MinLength:   cfg.Detection.MinLength,
				MaxLength:   cfg.Detection.MaxLength,
				MaxSamples:  cfg.Detection.MaxSamples,
			}
			scenes, _, err := detect.Detect(cmd.Context(), videoPath, params, rep, logger)
			if err != nil {
				return err
			}

			if !skipCut {
				result, err := extract.Scenes(cmd.Context(), videoPath, scenes,
					extract.Options{Workers: cfg.Extraction.Workers}, rep, logger)
				if err != nil {
					return err
				}
				if result.Failed > 0 {
					rep.Warning(fmt.Sprintf("%d scenes failed to extract", result.Failed))
				}
			}

			service := transcribe.NewService(transcribe.Config{
				Model:    cfg.Transcription.Model,
				Language: cfg.Transcription.Language,
			})
			if err := service.Scenes(cmd.Context(), videoPath, scenes, rep, logger); err != nil {
				return err
			}

			var scorer score.Scorer
			if cfg.Scoring.Method == config.ScoringModel {
				scorer = score.NewModel(llm.NewClient(llm.Config{
					APIKey:         cfg.LLM.APIKey,
					BaseURL:        cfg.LLM.BaseURL,
					Model:          cfg.LLM.Model,
					TimeoutSeconds: cfg.LLM.TimeoutSeconds,
				}))
			} else {
				scorer = score.NewHeuristic()
			}
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

			outDir := util.SceneOutputDir(videoPath)
			docPath := filepath.Join(outDir, "scenes.json")
			if err := util.EnsureDirectory(outDir); err != nil {
				logger.Warn("Could not create %s: %v", outDir, err)
			} else if err := kept.WriteFile(docPath); err != nil {
				logger.Warn("Could not write %s: %v", docPath, err)
			} else {
				logger.Info("Scene document written to %s", docPath)
			}

			w, closeOutput, err := openOutput(output)
			if err != nil {
				return err
			}
			if err := kept.WriteJSON(w); err != nil {
				_ = closeOutput()
				return err
			}
			if err := closeOutput(); err != nil {
				return err
			}

			rep.OperationComplete(fmt.Sprintf("Pipeline complete: %d scenes kept", len(kept)))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&topN, "top", config.DefaultTopN, "Keep only the top N most interesting scenes")
	fl.BoolVar(&keepAll, "all", false, "Keep all scenes without filtering")
	fl.BoolVar(&useModel, "use-model", false, "Score with a chat model instead of text heuristics")
	fl.BoolVar(&skipCut, "skip-extract", false, "Skip cutting scene files, only produce the document")
	fl.BoolVar(&table, "table", false, "Print a score summary table to stderr")
	fl.StringVarP(&output, "output", "o", "", "Write the final scene document to a file instead of stdout")

	return cmd
}
