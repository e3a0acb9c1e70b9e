package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gounits/uparse/cmd/uparse/tui"
)

var replCatalog string

func init() {
	rootCmd.Flags().StringVar(&replCatalog, "catalog", "", "extra YAML unit catalog to load")
}

// runREPL launches the interactive bubbletea explorer.
func runREPL() {
	sys, err := loadSystem(replCatalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(sys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
