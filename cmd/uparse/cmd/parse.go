package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gounits/uparse"
	"github.com/spf13/cobra"
)

var (
	parseEncoding string
	parseCatalog  string
)

var parseCmd = &cobra.Command{
	Use:   "parse <unit spec>",
	Short: "Parse a unit specification and print its resolved dimension and scale",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(strings.Join(args, " "))
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseEncoding, "encoding", "utf8", "input encoding: utf8, ascii, or latin1")
	parseCmd.Flags().StringVar(&parseCatalog, "catalog", "", "extra YAML unit catalog to load")
	rootCmd.AddCommand(parseCmd)
}

type stderrReporter struct{}

func (stderrReporter) Report(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func runParse(input string) error {
	sys, err := loadSystem(parseCatalog)
	if err != nil {
		return err
	}

	enc, err := parseEncodingFlag(parseEncoding)
	if err != nil {
		return err
	}

	u, status := uparse.Parse(sys, input, enc, stderrReporter{})
	if status != uparse.SUCCESS {
		return fmt.Errorf("%s", status)
	}

	fmt.Printf("scale=%s dims=%v\n", u.Scale.String(), u.Dims)
	if u.Offset != nil {
		fmt.Printf("offset=%s\n", u.Offset.String())
	}
	if u.Origin != nil {
		fmt.Printf("origin(epoch seconds)=%g\n", *u.Origin)
	}
	if u.Log != nil {
		fmt.Printf("log base=%s reference-scale=%s\n", u.Log.Base.String(), u.Log.Reference.Scale.String())
	}
	return nil
}

func parseEncodingFlag(s string) (uparse.Encoding, error) {
	switch strings.ToLower(s) {
	case "utf8", "utf-8", "":
		return uparse.UTF8, nil
	case "ascii":
		return uparse.ASCII, nil
	case "latin1", "latin-1", "iso-8859-1":
		return uparse.LATIN1, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", s)
	}
}
