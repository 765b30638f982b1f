// Package commands holds one file per "silt" subcommand, each exposing a
// New*Command() *cobra.Command constructor wired into internal/cli.NewRootCmd.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// readSource reads path's contents as a string, or stdin's if path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// tokenLabel returns a token's literal text if it has one (Identifier,
// etc.), otherwise its kind's canonical symbol — used for dumping a
// shined (layout-explicit) stream whose inserted tokens carry no text.
func tokenLabel(tok token.Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Kind.String()
}

// writeTokenTable writes one line per token: its position, kind, and label.
func writeTokenTable(w io.Writer, toks []token.Token) {
	for _, tok := range toks {
		pos := tok.Span.Start
		fmt.Fprintf(w, "%4d:%-3d %-12s %s\n", pos.Line, pos.Column, tok.Kind.String(), tokenLabel(tok))
	}
}

// writeRawTree writes an indented s-expression dump of a RawSyntax tree:
// node kinds as parenthesized forms, tokens as their literal text.
func writeRawTree(w io.Writer, raw *syntax.Raw, depth int) {
	indent := strings.Repeat("  ", depth)
	if raw.IsToken() {
		tok := raw.Token()
		fmt.Fprintf(w, "%s%s %q\n", indent, tok.Kind.String(), tok.Text)
		return
	}
	fmt.Fprintf(w, "%s(%s\n", indent, raw.Kind().String())
	for _, child := range raw.Children() {
		writeRawTree(w, child, depth+1)
	}
	fmt.Fprintf(w, "%s)\n", indent)
}
