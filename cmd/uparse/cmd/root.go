package cmd

import (
	"fmt"
	"os"

	"github.com/gounits/uparse/internal/config"
	"github.com/gounits/uparse/unitsys"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uparse",
	Short: "uparse - parse unit specifications like \"kg m s-2\" or \"celsius @ 273.15\"",
	Long: `uparse parses textual unit specifications into unit expressions over a
pluggable unit system: SI base and derived units, US customary units, SI
prefixes, offset units (celsius), time-since units, and logarithmic ratios.

Examples:
  uparse parse "kg m s-2"
  uparse parse "lg(re 1 mW)"
  uparse units --grep kilo
  uparse            (no subcommand: start the interactive REPL)`,
	// When called with no subcommand, start the REPL.
	Run: func(cmd *cobra.Command, args []string) {
		runREPL()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if _, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: config load failed, using built-in defaults: %v\n", err)
	}
}

// loadSystem builds the unit system every subcommand parses against:
// SeedDefault, then the catalog file named by --catalog, if any. The
// config's parse.catalog_dir is not read.
func loadSystem(catalogFlag string) (*unitsys.System, error) {
	sys := unitsys.NewSystem()
	unitsys.SeedDefault(sys)

	if catalogFlag == "" {
		return sys, nil
	}
	f, err := os.Open(catalogFlag)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	if err := unitsys.LoadCatalog(sys, f); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", catalogFlag, err)
	}
	return sys, nil
}
