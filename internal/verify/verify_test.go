package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/lex"
	"github.com/silt-lang/silt/pkg/token"
)

func TestExtractExpectationsFindsTrailingComment(t *testing.T) {
	src := "x : Type -- expected-error{{undefined name}}\n"
	toks := lex.New("t.silt", src).Tokenize()

	got := ExtractExpectations(toks)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, "undefined name", got[0].Pattern)
}

func TestExtractExpectationsIgnoresLeadingComment(t *testing.T) {
	src := "-- expected-error{{should not count}}\nx : Type\n"
	toks := lex.New("t.silt", src).Tokenize()

	got := ExtractExpectations(toks)
	assert.Empty(t, got)
}

func TestExtractExpectationsIgnoresPlainComment(t *testing.T) {
	src := "x : Type -- just a note\n"
	toks := lex.New("t.silt", src).Tokenize()

	got := ExtractExpectations(toks)
	assert.Empty(t, got)
}

func TestCheckAllMet(t *testing.T) {
	expected := []Expectation{{Line: 1, Pattern: "undefined"}}
	diags := []diagnostic.Diagnostic{
		{Severity: diagnostic.Error, Message: "undefined name x", Location: token.Span{Start: token.Position{Line: 1}}},
	}

	res := Check(expected, diags)
	assert.True(t, res.Passed())
	assert.Empty(t, res.Unmet)
	assert.Empty(t, res.Unlisted)
}

func TestCheckUnmetExpectation(t *testing.T) {
	expected := []Expectation{{Line: 1, Pattern: "undefined"}}
	res := Check(expected, nil)

	assert.False(t, res.Passed())
	require.Len(t, res.Unmet, 1)
	assert.Equal(t, "undefined", res.Unmet[0].Pattern)
}

func TestCheckUnlistedDiagnostic(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		{Severity: diagnostic.Error, Message: "surprising error", Location: token.Span{Start: token.Position{Line: 3}}},
	}
	res := Check(nil, diags)

	assert.False(t, res.Passed())
	require.Len(t, res.Unlisted, 1)
	assert.Equal(t, "surprising error", res.Unlisted[0].Message)
}

func TestCheckPatternMustBeSubstringOfMessage(t *testing.T) {
	expected := []Expectation{{Line: 1, Pattern: "wrong kind"}}
	diags := []diagnostic.Diagnostic{
		{Severity: diagnostic.Error, Message: "undefined name x", Location: token.Span{Start: token.Position{Line: 1}}},
	}

	res := Check(expected, diags)
	assert.False(t, res.Passed())
	assert.Len(t, res.Unmet, 1)
	assert.Len(t, res.Unlisted, 1)
}
