package lex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/pkg/token"
)

// renderAll reproduces the source from Present tokens only, exercising
// the lexer's round-trip property.
func renderAll(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Render())
	}
	return b.String()
}

func TestLexRoundTrip(t *testing.T) {
	srcs := []string{
		"module M where\n  x : Type\n  x = Type\n",
		"-- a comment\n{- nested {- block -} comment -}\nid x = x\n",
		"if_then_else_ : Type\n_+_ : Type\n",
		"",
		"   \t\n\n",
	}
	for _, src := range srcs {
		toks := New("t.silt", src).Tokenize()
		assert.Equal(t, src, renderAll(toks), "round trip for %q", src)
		require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	}
}

func TestLexKeywordsAndPunctuation(t *testing.T) {
	toks := New("t.silt", "module A where data D : Type").Tokenize()
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.KwModule, token.Identifier, token.KwWhere,
		token.KwData, token.Identifier, token.Colon, token.KwType,
		token.EOF,
	}, kinds)
}

func TestLexMixfixIdentifier(t *testing.T) {
	toks := New("t.silt", "if_then_else_").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "if_then_else_", toks[0].Text)
}

func TestLexUnderscoreAlone(t *testing.T) {
	toks := New("t.silt", "_").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.Underscore, toks[0].Kind)
}

func TestLexArrowBothSpellings(t *testing.T) {
	for _, src := range []string{"->", "→"} {
		toks := New("t.silt", src).Tokenize()
		require.Len(t, toks, 2)
		assert.Equal(t, token.Arrow, toks[0].Kind)
	}
}

func TestLexForallBothSpellings(t *testing.T) {
	toks := New("t.silt", "∀").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.Forall, toks[0].Kind)

	toks = New("t.silt", "forall").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.KwForall, toks[0].Kind)
}

func TestLexUnterminatedBlockCommentRecoversAtEOF(t *testing.T) {
	src := "x {- never closed"
	toks := New("t.silt", src).Tokenize()
	assert.Equal(t, src, renderAll(toks))
	require.Len(t, toks, 2) // "x" then EOF; the comment is trailing trivia on x
	assert.Contains(t, toks[0].Trailing.Render(), "never closed")
}

func TestLexUnknownByteRecovers(t *testing.T) {
	src := "x \xff y"
	toks := New("t.silt", src).Tokenize()
	require.Len(t, toks, 4)
	assert.Equal(t, token.Unknown, toks[1].Kind)
	assert.Equal(t, "\xff", toks[1].Text)
	assert.Equal(t, src, renderAll(toks))
}

func TestLexBacktickIsOrdinaryIdentifierChar(t *testing.T) {
	toks := New("t.silt", "`weird`").Tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "`weird`", toks[0].Text)
}

func TestTrailingTriviaStopsBeforeNewline(t *testing.T) {
	toks := New("t.silt", "x  \ny").Tokenize()
	require.Len(t, toks, 3)
	assert.Equal(t, "  ", toks[0].Trailing.Render())
	assert.Equal(t, "\n", toks[1].Leading.Render())
}

func TestCRLFCountsAsOneNewline(t *testing.T) {
	toks := New("t.silt", "x\r\ny").Tokenize()
	require.Len(t, toks, 3)
	require.Len(t, toks[1].Leading, 1)
	assert.Equal(t, token.TriviaNewlines, toks[1].Leading[0].Kind)
	assert.Equal(t, 1, toks[1].Leading[0].Count)
}
