package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/driver"
)

// NewReplCommand builds "silt repl": an interactive line-editing front end
// over github.com/chzyer/readline that lexes/shines/dump-parses whatever
// expression the user types, useful for exploring layout/mixfix behavior
// interactively.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively lex, shine, and parse expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "silt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("initializing repl: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(cmd.OutOrStdout(), "Silt REPL — type an expression, .tokens/.shine/.parse to switch view, .quit to exit")

	mode := ".parse"
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ".quit", ".exit":
			return nil
		case ".tokens", ".shine", ".parse":
			mode = line
			continue
		}

		switch mode {
		case ".tokens":
			writeTokenTable(cmd.OutOrStdout(), driver.Tokenize("<repl>", line))
		case ".shine":
			writeTokenTable(cmd.OutOrStdout(), driver.Shine("<repl>", line))
		default:
			raw, _, errs := driver.Parse("<repl>", line)
			writeRawTree(cmd.OutOrStdout(), raw, 0)
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e.Error())
			}
		}
	}
}
