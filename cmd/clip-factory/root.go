package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "clip-factory",
		Short: "Split videos into scenes and rate them by interest",
		Long: `clip-factory detects scene boundaries in a video by visual
dissimilarity, extracts the scenes into individual files, transcribes
them with Whisper, and scores them by how interesting the speech is.

Every stage reads and writes the same JSON scene document, so stages
can be run one at a time or end to end with "run".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (TOML)")
	pf.BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&ctx.jsonEvents, "json", false, "Emit progress as NDJSON events instead of text")
	pf.StringVarP(&ctx.logDir, "log-dir", "l", "", "Log directory (defaults to ./logs next to the input)")
	pf.BoolVar(&ctx.noLog, "no-log", false, "Disable log file creation")

	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newTranscribeCommand(ctx))
	rootCmd.AddCommand(newScoreCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clip-factory version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clip-factory %s\n", version)
		},
	}
}
