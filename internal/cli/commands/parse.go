package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/cli/clictx"
	"github.com/silt-lang/silt/internal/driver"
)

// NewParseCommand builds "silt parse <file>": parses the file and dumps
// its RawSyntax tree, reporting any syntax errors the driver recovered
// from.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			raw, _, parseErrs := driver.Parse(args[0], src)
			writeRawTree(cmd.OutOrStdout(), raw, 0)

			if len(parseErrs) == 0 {
				return nil
			}
			styles := clictx.Styles(cmd.Context())
			for _, pe := range parseErrs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", styles.Error.Render("syntax error:"), pe.Error())
			}
			return fmt.Errorf("%d syntax error(s)", len(parseErrs))
		},
	}
}
