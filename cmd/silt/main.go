// Command silt is the command-line front end for the Silt language tools:
// lexing, layout, mixfix reparsing, scope checking, symbol mangling, and
// the diagnostic engine that ties them together.
package main

import (
	"os"

	"github.com/silt-lang/silt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
