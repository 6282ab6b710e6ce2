package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	keyStyle := lipgloss.NewStyle().Bold(true).Width(12)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Controls:")
	fmt.Fprintln(out)
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(b.Help().Key), b.Help().Desc)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Click Play with the mouse to start a game as well.")
}
