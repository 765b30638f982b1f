package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/driver"
)

// NewFileCommand builds "silt file <file>": re-serializes the raw token
// stream back to source, byte-for-byte, proving the lexer's trivia model
// round-trips.
func NewFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file <file>",
		Short: "Re-render a file from its token stream (round-trip check)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks := driver.Tokenize(args[0], src)
			var rendered string
			for _, tok := range toks {
				rendered += tok.Render()
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			if rendered != src {
				return fmt.Errorf("round trip mismatch: rendered output differs from source")
			}
			return nil
		},
	}
}
