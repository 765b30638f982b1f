// Package driver is the glue between a source file on disk and the
// lex/layout/bind/mixfix pipeline: it is deliberately NOT "the"
// grammar-level parser that turns tokens into a full RawSyntax tree for
// every construct the surface language could ever express — that parser
// is an external collaborator, out of scope here. What lives here is a
// small recursive-descent reader over a reduced declaration/expression
// grammar, just expressive enough to let
// cmd/silt's parse/scopes/verify/compile subcommands feed real source
// files into internal/bind.Checker and internal/mixfix.Reparse without
// requiring a second front end to exist first.
//
// Grammar covered: module headers, import/open, fixity declarations,
// type signatures, data/record declarations, function clauses, and an
// expression/pattern grammar of variables, holes, Type, parenthesized
// expressions, Pi types, function arrows, lambdas, and let. Mixfix
// notations are never disambiguated here — a run of juxtaposed atoms is
// always handed to internal/mixfix.Reparse as a flat KindMixfixApp, the
// same division of labor internal/bind.Checker already assumes.
package driver

import (
	"fmt"

	"github.com/silt-lang/silt/internal/layout"
	"github.com/silt-lang/silt/internal/lex"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// Tokenize lexes source into its raw token stream, with no layout
// insertion — what "silt tokens" dumps.
func Tokenize(file, source string) []token.Token {
	return lex.New(file, source).Tokenize()
}

// Shine runs the layout algorithm over source's raw tokens, producing the
// explicit-brace/semicolon stream "silt shine" renders.
func Shine(file, source string) []token.Token {
	return layout.Run(Tokenize(file, source))
}

// Parse lexes, lays out, and parses source into a RawSyntax tree rooted
// at KindSourceFile, along with the SourceLocationConverter needed to
// resolve diagnostic spans against it.
func Parse(file, source string) (*syntax.Raw, *syntax.SourceLocationConverter, []ParseError) {
	toks := Shine(file, source)
	p := newParser(toks)
	raw := p.parseSourceFile()
	conv := syntax.NewSourceLocationConverter(file, source)
	return raw, conv, p.errors
}

// ParseError is a syntax error encountered while reading the reduced
// grammar this package covers — distinct from internal/diagnostic.Diagnostic
// since it is reported before there is a View tree to locate it against.
type ParseError struct {
	Offset  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Offset, e.Message)
}
