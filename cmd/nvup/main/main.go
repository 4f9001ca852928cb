package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/nvup/cmd/nvup"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})

func main() {
	rootCmd := nvup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
