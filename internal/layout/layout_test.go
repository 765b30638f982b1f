package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/internal/lex"
	"github.com/silt-lang/silt/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func lexAndLayout(src string) []token.Token {
	return Run(lex.New("t.silt", src).Tokenize())
}

func TestLayoutInsertsBraceAndSemisInModuleBody(t *testing.T) {
	src := "module M where\n  x : Type\n  y : Type\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	want := []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.LBrace,
		token.Identifier, token.Colon, token.KwType,
		token.Semi,
		token.Identifier, token.Colon, token.KwType,
		token.RBrace,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutContinuationLineDoesNotInsertSemi(t *testing.T) {
	src := "module M where\n  x : Type\n    Type\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	// The second "Type" is indented deeper than the block column, so it is
	// a continuation of the first declaration: no semi before it.
	want := []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.LBrace,
		token.Identifier, token.Colon, token.KwType,
		token.KwType,
		token.RBrace,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutNestedWhereClosesInnerBlockFirst(t *testing.T) {
	src := "module M where\n  x : Type\n  y where\n    z : Type\n  w : Type\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	want := []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.LBrace, // outer block (col 3)
		token.Identifier, token.Colon, token.KwType, // x : Type
		token.Semi,
		token.Identifier, token.KwWhere, // y where
		token.LBrace, // inner block (col 5)
		token.Identifier, token.Colon, token.KwType, // z : Type
		token.RBrace, // inner closes: w is back at col 3
		token.Semi,
		token.Identifier, token.Colon, token.KwType, // w : Type
		token.RBrace,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutExplicitBracesBypassLayout(t *testing.T) {
	src := "module M where { x : Type\n      y : Type }\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	// No implicit braces/semis are inserted anywhere: the explicit block
	// suppresses layout entirely for its whole extent.
	want := []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.LBrace,
		token.Identifier, token.Colon, token.KwType,
		token.Identifier, token.Colon, token.KwType,
		token.RBrace,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutClosesAllBlocksAtEOF(t *testing.T) {
	src := "module M where\n  x where\n    y : Type\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	want := []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.LBrace,
		token.Identifier, token.KwWhere,
		token.LBrace,
		token.Identifier, token.Colon, token.KwType,
		token.RBrace,
		token.RBrace,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutLetOpensBlock(t *testing.T) {
	src := "f = let\n      x : Type\n    in x\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	want := []token.Kind{
		token.Identifier, token.Equal, token.KwLet,
		token.LBrace,
		token.Identifier, token.Colon, token.KwType,
		token.RBrace,
		token.KwIn, token.Identifier,
		token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLayoutIdempotent(t *testing.T) {
	src := "module M where\n  x : Type\n  y : Type\n"
	once := lexAndLayout(src)
	twice := Run(once)
	assert.Equal(t, kinds(once), kinds(twice))
}

func TestLayoutPreservesRoundTrip(t *testing.T) {
	src := "module M where\n  x : Type\n  y where\n    z : Type\n  w : Type\n"
	toks := lexAndLayout(src)
	var rendered string
	for _, tk := range toks {
		rendered += tk.Render()
	}
	assert.Equal(t, src, rendered)
}

func TestLayoutNoLayoutKeywordNoOp(t *testing.T) {
	src := "x : Type\ny : Type\n"
	toks := lexAndLayout(src)
	got := kinds(toks)
	require.Equal(t, []token.Kind{
		token.Identifier, token.Colon, token.KwType,
		token.Identifier, token.Colon, token.KwType,
		token.EOF,
	}, got)
}
