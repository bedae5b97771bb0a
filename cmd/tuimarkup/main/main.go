package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/SkwalExe/tui-markup/cmd/tuimarkup"
)

func main() {
	rootCmd := tuimarkup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !tuimarkup.IsReported(err) {
			errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
