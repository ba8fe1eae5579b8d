package main

import (
	"fmt"

	"precession/internal/definition"
	"precession/internal/picker"

	"github.com/spf13/cobra"
)

var pickDetached bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a session definition interactively and start it",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().BoolVarP(&pickDetached, "detached", "d", false, "create the session without attaching to it")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	dir, err := definition.ConfigDir()
	if err != nil {
		return err
	}
	defs, err := definition.List(dir)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("no session definitions in %s", dir)
	}

	names := make([]string, len(defs))
	byName := make(map[string]definition.Entry, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		byName[d.Name] = d
	}
	choice, err := picker.Run(names)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil // cancelled
	}

	def, err := definition.Load(byName[choice].Path)
	if err != nil {
		return err
	}
	return startSession(cmd.Context(), def, pickDetached)
}
