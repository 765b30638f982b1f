package commands

import (
	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/driver"
)

// NewShineCommand builds "silt shine <file>": dumps the token stream after
// the layout algorithm has inserted explicit braces and semicolons.
func NewShineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shine <file>",
		Short: "Dump the layout-explicit (shined) token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks := driver.Shine(args[0], src)
			writeTokenTable(cmd.OutOrStdout(), toks)
			return nil
		},
	}
}
