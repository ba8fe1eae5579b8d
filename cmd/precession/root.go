package main

import (
	"log/slog"

	"precession/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "precession",
	Short: "A simple tmux session starter",
	Long: `A simple tmux session starter.

Start, stop and manage pre-defined tmux sessions easily and declaratively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = logging.New(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every control operation to stderr")
}
