package main

import (
	"fmt"

	"precession/internal/definition"
	"precession/internal/mux"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listRunning bool

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available session definitions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listRunning, "running", "r", false, "also list running tmux sessions")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := definition.ConfigDir()
	if err != nil {
		return err
	}
	defs, err := definition.List(dir)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("Definitions"), dimStyle.Render(dir))
	if len(defs) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
	}
	for _, d := range defs {
		line := "  " + d.Name
		if mux.Has(d.Name) {
			line += " " + dimStyle.Render("(running)")
		}
		fmt.Println(line)
	}

	if !listRunning {
		return nil
	}
	sessions, err := mux.Running()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(headingStyle.Render("Running sessions"))
	if len(sessions) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
	}
	for _, s := range sessions {
		fmt.Printf("  %s %s\n", s.Name, dimStyle.Render(fmt.Sprintf("%d windows", s.Windows)))
	}
	return nil
}
