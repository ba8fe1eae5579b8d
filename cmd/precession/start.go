package main

import (
	"context"
	"fmt"

	"precession/internal/definition"
	"precession/internal/mux"
	"precession/internal/render"

	"github.com/spf13/cobra"
)

var (
	startFile     string
	startDetached bool
)

var startCmd = &cobra.Command{
	Use:   "start [session] [alias]",
	Short: "Start a new tmux session",
	Long: `Start a new tmux session from a definition file.

The definition is located in the following order:
  1. the file supplied with -f
  2. <config dir>/precession/<session>.yaml
  3. ./.session.yaml

An optional alias renames the session without touching the definition.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startFile, "file", "f", "", "definition file to load")
	startCmd.Flags().BoolVarP(&startDetached, "detached", "d", false, "create the session without attaching to it")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	var name, alias string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		alias = args[1]
	}

	path, err := definition.Locate(name, startFile)
	if err != nil {
		return err
	}
	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	if alias != "" {
		def.Name = alias
	}
	return startSession(cmd.Context(), def, startDetached)
}

// startSession renders one definition against the local tmux server.
// Shared by start and pick.
func startSession(ctx context.Context, def *definition.Session, detached bool) error {
	if mux.Has(def.Name) {
		return fmt.Errorf("session %q is already running", def.Name)
	}
	client := mux.NewExecClient(logger)
	r := render.New(client, logger, render.Options{Detached: detached})
	return r.Render(ctx, def)
}
