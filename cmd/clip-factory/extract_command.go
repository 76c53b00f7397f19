package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogolknev/clip-factory/internal/extract"
	"github.com/ogolknev/clip-factory/internal/scene"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		workers   int
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "extract <video> <scenes.json>",
		Short: "Cut detected scenes into individual video files",
		Long: `Extract stream-copies each scene from the source video into its
own numbered file (scene_001.mp4, scene_002.mp4, ...) inside a
"<name>_scenes" directory next to the input. A scene that fails to cut
is skipped; the rest of the batch continues.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			videoPath := args[0]
			scenes, err := scene.LoadFile(args[1])
			if err != nil {
				return err
			}

			logger, err := ctx.setupLogger(videoPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			opts := extract.Options{
				Workers:   cfg.Extraction.Workers,
				OutputDir: outputDir,
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}

			rep := ctx.newReporter()
			result, err := extract.Scenes(cmd.Context(), videoPath, scenes, opts, rep, logger)
			if err != nil {
				return err
			}
			if result.Extracted == 0 {
				return fmt.Errorf("no scenes were extracted")
			}

			rep.OperationComplete(fmt.Sprintf("Extracted %d scenes to %s", result.Extracted, result.OutputDir))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&workers, "workers", 0, "Parallel ffmpeg processes (0 = auto from CPU topology)")
	fl.StringVar(&outputDir, "output-dir", "", "Directory for extracted scenes")

	return cmd
}
