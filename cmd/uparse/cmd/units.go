package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	unitsGrep    string
	unitsCatalog string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the names and symbols known to the seeded unit system",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnits()
	},
}

func init() {
	unitsCmd.Flags().StringVar(&unitsGrep, "grep", "", "only list entries containing this substring (case-insensitive)")
	unitsCmd.Flags().StringVar(&unitsCatalog, "catalog", "", "extra YAML unit catalog to load")
	rootCmd.AddCommand(unitsCmd)
}

func runUnits() error {
	sys, err := loadSystem(unitsCatalog)
	if err != nil {
		return err
	}

	needle := strings.ToLower(unitsGrep)
	matches := func(s string) bool {
		return needle == "" || strings.Contains(strings.ToLower(s), needle)
	}

	names := sys.Names()
	symbols := sys.Symbols()
	sort.Strings(names)
	sort.Strings(symbols)

	fmt.Println("names:")
	for _, n := range names {
		if matches(n) {
			fmt.Printf("  %s\n", n)
		}
	}
	fmt.Println("symbols:")
	for _, s := range symbols {
		if matches(s) {
			fmt.Printf("  %s\n", s)
		}
	}
	return nil
}
