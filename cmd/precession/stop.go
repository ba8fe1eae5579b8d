package main

import (
	"precession/internal/mux"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop <session>",
	Short: "Stop a running tmux session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mux.Kill(args[0])
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
