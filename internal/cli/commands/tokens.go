package commands

import (
	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/driver"
)

// NewTokensCommand builds "silt tokens <file>": dumps the raw (pre-layout)
// token stream.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the raw lexer token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks := driver.Tokenize(args[0], src)
			writeTokenTable(cmd.OutOrStdout(), toks)
			return nil
		},
	}
}
