package token

import "strings"

// TriviaKind identifies the base kind of a TriviaPiece. Pieces of the same
// base kind appearing back-to-back are combined additively by the lexer
// (e.g. three spaces in a row become one spaces(3) piece).
type TriviaKind int

const (
	TriviaSpaces TriviaKind = iota
	TriviaTabs
	TriviaNewlines
	TriviaVerticalTabs
	TriviaFormfeeds
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpaces:
		return "spaces"
	case TriviaTabs:
		return "tabs"
	case TriviaNewlines:
		return "newlines"
	case TriviaVerticalTabs:
		return "verticalTabs"
	case TriviaFormfeeds:
		return "formfeeds"
	case TriviaLineComment:
		return "lineComment"
	case TriviaBlockComment:
		return "blockComment"
	default:
		return "unknown"
	}
}

// TriviaPiece is one run of non-syntactic material: whitespace of a single
// kind, or a single comment. Most whitespace pieces carry a repeat count
// rather than literal text, since all copies of e.g. a space are
// byte-identical; comment pieces carry their full text (including
// delimiters) since that text varies. Newlines also carry literal Text:
// a "\r\n" pair counts as a single logical newline but must
// still render back its exact two bytes, so Count alone is not enough.
type TriviaPiece struct {
	Kind  TriviaKind
	Count int    // for whitespace kinds: number of repeated characters/lines
	Text  string // for comment and newline kinds: exact source bytes
}

// Spaces constructs a run of n space characters.
func Spaces(n int) TriviaPiece { return TriviaPiece{Kind: TriviaSpaces, Count: n} }

// Tabs constructs a run of n tab characters.
func Tabs(n int) TriviaPiece { return TriviaPiece{Kind: TriviaTabs, Count: n} }

// Newlines constructs a single newlines piece from its exact source text
// (e.g. "\n", "\r\n", or "\n\n\r\n"). Count is the number of logical
// newlines therein: a "\r\n" pair counts once.
func Newlines(text string) TriviaPiece {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	n := strings.Count(normalized, "\n") + strings.Count(normalized, "\r")
	return TriviaPiece{Kind: TriviaNewlines, Count: n, Text: text}
}

// VerticalTabs constructs a run of n vertical tab characters.
func VerticalTabs(n int) TriviaPiece { return TriviaPiece{Kind: TriviaVerticalTabs, Count: n} }

// Formfeeds constructs a run of n form feed characters.
func Formfeeds(n int) TriviaPiece { return TriviaPiece{Kind: TriviaFormfeeds, Count: n} }

// LineComment constructs a "-- ..." comment piece. text includes the "--".
func LineComment(text string) TriviaPiece { return TriviaPiece{Kind: TriviaLineComment, Text: text} }

// BlockComment constructs a "{- ... -}" comment piece, possibly nested.
// text includes the delimiters.
func BlockComment(text string) TriviaPiece {
	return TriviaPiece{Kind: TriviaBlockComment, Text: text}
}

// byteLen returns the number of source bytes this piece occupies.
func (p TriviaPiece) byteLen() int {
	switch p.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaNewlines:
		return len(p.Text)
	default:
		return p.Count
	}
}

// Render renders the piece back to its exact source bytes.
func (p TriviaPiece) Render() string {
	switch p.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaNewlines:
		return p.Text
	case TriviaSpaces:
		return strings.Repeat(" ", p.Count)
	case TriviaTabs:
		return strings.Repeat("\t", p.Count)
	case TriviaVerticalTabs:
		return strings.Repeat("\v", p.Count)
	case TriviaFormfeeds:
		return strings.Repeat("\f", p.Count)
	default:
		return ""
	}
}

// combinable reports whether two pieces of the same Kind can be merged into
// one (true for every whitespace kind; comments never combine since each
// has distinct text and source extent).
func combinable(kind TriviaKind) bool {
	switch kind {
	case TriviaLineComment, TriviaBlockComment:
		return false
	default:
		return true
	}
}

// Trivia is an ordered run of TriviaPieces, appearing either before a
// token (leading) or after it up to but not across a newline (trailing).
type Trivia []TriviaPiece

// Append adds a piece to the trivia run, combining it with the trailing
// piece if both share a combinable Kind.
func (t Trivia) Append(p TriviaPiece) Trivia {
	if n := len(t); n > 0 {
		last := t[n-1]
		if last.Kind == p.Kind && combinable(p.Kind) {
			last.Count += p.Count
			last.Text += p.Text
			t[n-1] = last
			return t
		}
	}
	return append(t, p)
}

// Render concatenates every piece back to its exact source bytes.
func (t Trivia) Render() string {
	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Render())
	}
	return b.String()
}

// ByteLen returns the total number of source bytes spanned by the trivia.
func (t Trivia) ByteLen() int {
	n := 0
	for _, p := range t {
		n += p.byteLen()
	}
	return n
}
