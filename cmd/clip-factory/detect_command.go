package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ogolknev/clip-factory/internal/detect"
	"github.com/ogolknev/clip-factory/internal/discovery"
	"github.com/ogolknev/clip-factory/internal/util"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var (
		fps        float64
		threshold  float64
		minLength  float64
		maxLength  float64
		maxSamples int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "detect <video-or-directory>",
		Short: "Detect scene boundaries and print the scene document",
		Long: `Detect samples frames from the video, measures color-histogram
dissimilarity between consecutive samples, and turns threshold
crossings into a contiguous scene list honoring the length bounds.

The scene document goes to stdout (or --output). Given a directory,
every video in it is processed and each document is written next to
its video as <name>_scenes.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			params := detect.Params{
				SamplingFPS: cfg.Detection.SamplingFPS,
				Threshold:   cfg.Detection.Threshold,
				MinLength:   cfg.Detection.MinLength,
				MaxLength:   cfg.Detection.MaxLength,
				MaxSamples:  cfg.Detection.MaxSamples,
			}
			if cmd.Flags().Changed("fps") {
				params.SamplingFPS = fps
			}
			if cmd.Flags().Changed("threshold") {
				params.Threshold = threshold
			}
			if cmd.Flags().Changed("min-length") {
				params.MinLength = minLength
			}
			if cmd.Flags().Changed("max-length") {
				params.MaxLength = maxLength
			}
			if cmd.Flags().Changed("max-samples") {
				params.MaxSamples = maxSamples
			}
			if err := params.Validate(); err != nil {
				return err
			}

			input := args[0]
			logger, err := ctx.setupLogger(input)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			rep := ctx.newReporter()

			if util.DirectoryExists(input) {
				files, err := discovery.FindVideoFiles(input)
				if err != nil {
					return err
				}
				logger.Info("Batch detection over %d videos in %s", len(files), input)
				for _, file := range files {
					scenes, _, err := detect.Detect(cmd.Context(), file, params, rep, logger)
					if err != nil {
						return err
					}
					docPath := filepath.Join(filepath.Dir(file), util.GetFileStem(file)+"_scenes.json")
					if err := scenes.WriteFile(docPath); err != nil {
						return err
					}
					rep.OperationComplete(fmt.Sprintf("Wrote %s", docPath))
				}
				return nil
			}

			scenes, _, err := detect.Detect(cmd.Context(), input, params, rep, logger)
			if err != nil {
				return err
			}

			w, closeOutput, err := openOutput(output)
			if err != nil {
				return err
			}
			if err := scenes.WriteJSON(w); err != nil {
				_ = closeOutput()
				return err
			}
			return closeOutput()
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&fps, "fps", 0, "Frames per second to sample")
	fl.Float64Var(&threshold, "threshold", 0, "Dissimilarity threshold in [0, 1]")
	fl.Float64Var(&minLength, "min-length", 0, "Minimum scene length in seconds")
	fl.Float64Var(&maxLength, "max-length", 0, "Maximum scene length in seconds")
	fl.IntVar(&maxSamples, "max-samples", 0, "Stop sampling after this many frames (0 = unlimited)")
	fl.StringVarP(&output, "output", "o", "", "Write the scene document to a file instead of stdout")

	return cmd
}
