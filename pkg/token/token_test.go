package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriviaAppendCombinesWhitespace(t *testing.T) {
	var tr Trivia
	tr = tr.Append(Spaces(2))
	tr = tr.Append(Spaces(3))
	require.Len(t, tr, 1)
	assert.Equal(t, 5, tr[0].Count)
	assert.Equal(t, "     ", tr.Render())
}

func TestTriviaAppendDoesNotCombineComments(t *testing.T) {
	var tr Trivia
	tr = tr.Append(LineComment("-- a"))
	tr = tr.Append(LineComment("-- b"))
	require.Len(t, tr, 2)
	assert.Equal(t, "-- a-- b", tr.Render())
}

func TestTriviaAppendDoesNotCombineAcrossKinds(t *testing.T) {
	var tr Trivia
	tr = tr.Append(Spaces(1))
	tr = tr.Append(Newlines("\n"))
	tr = tr.Append(Spaces(2))
	require.Len(t, tr, 3)
}

func TestTokenRenderRoundTrip(t *testing.T) {
	tok := Token{
		Kind:     Identifier,
		Text:     "foo",
		Leading:  Trivia{Spaces(2)},
		Trailing: Trivia{Spaces(1)},
		Presence: Present,
	}
	assert.Equal(t, "  foo ", tok.Render())
}

func TestImplicitTokenRendersEmpty(t *testing.T) {
	tok := NewImplicit(LBrace)
	assert.Equal(t, "", tok.Render())
	assert.False(t, tok.Span.IsValid())
}

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("where")
	require.True(t, ok)
	assert.Equal(t, KwWhere, k)

	_, ok = LookupKeyword("whereabouts")
	assert.False(t, ok)
}

func TestIsLayoutKeyword(t *testing.T) {
	assert.True(t, IsLayoutKeyword(KwWhere))
	assert.True(t, IsLayoutKeyword(KwLet))
	assert.False(t, IsLayoutKeyword(KwIn))
}
