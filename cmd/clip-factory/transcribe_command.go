package main

import (
	"github.com/spf13/cobra"

	"github.com/ogolknev/clip-factory/internal/scene"
	"github.com/ogolknev/clip-factory/internal/transcribe"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var (
		model    string
		language string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "transcribe <video> <scenes.json>",
		Short: "Transcribe each scene's audio with Whisper",
		Long: `Transcribe extracts each scene's audio as 16 kHz mono WAV, runs
Whisper on it, and attaches the text segments to the scene document.
Segment timestamps are relative to the scene start.

The enriched document goes to stdout (or --output).`,
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

			tcfg := transcribe.Config{
				Model:    cfg.Transcription.Model,
				Language: cfg.Transcription.Language,
			}
			if cmd.Flags().Changed("model") {
				tcfg.Model = model
			}
			if cmd.Flags().Changed("language") {
				tcfg.Language = language
			}

			rep := ctx.newReporter()
			service := transcribe.NewService(tcfg)
			if err := service.Scenes(cmd.Context(), videoPath, scenes, rep, logger); err != nil {
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
	fl.StringVar(&model, "model", "", "Whisper model (tiny, base, small, medium, large)")
	fl.StringVar(&language, "language", "", "Force a language code (e.g. en, ru); empty = auto-detect")
	fl.StringVarP(&output, "output", "o", "", "Write the scene document to a file instead of stdout")

	return cmd
}
