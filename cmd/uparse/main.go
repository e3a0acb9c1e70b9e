// Command uparse parses textual unit specifications from the command line
// or an interactive explorer.
package main

import "github.com/gounits/uparse/cmd/uparse/cmd"

func main() {
	cmd.Execute()
}
