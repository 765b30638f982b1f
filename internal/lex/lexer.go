// Package lex implements the Silt lexer: it turns the UTF-8 text of one
// source file into a full-fidelity token stream whose concatenated
// leading+text+trailing bytes reproduce the input exactly.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/silt-lang/silt/pkg/token"
)

// hardDelimiters are single-rune punctuation that always terminate an
// identifier run and are lexed as their own token: an identifier is any
// maximal non-whitespace run not beginning with one of these reserved
// punctuation characters. Underscore is deliberately excluded: it may
// appear inside an identifier to mark a mixfix hole.
var hardDelimiters = map[rune]token.Kind{
	'(':  token.LParen,
	')':  token.RParen,
	'{':  token.LBrace,
	'}':  token.RBrace,
	';':  token.Semi,
	':':  token.Colon,
	'.':  token.Dot,
	'|':  token.Pipe,
	'=':  token.Equal,
	'\\': token.Backslash,
}

// Lexer tokenizes Silt source text.
type Lexer struct {
	file  string
	input string

	pos  int  // byte offset of the rune under the cursor
	line int  // 1-based
	col  int  // 1-based, in runes
	ch   rune // rune under the cursor, or utf8.RuneError/0 at EOF
	w    int  // byte width of ch
}

// New creates a Lexer over input, attributing positions to file (used only
// for diagnostics, not stored in tokens).
func New(file, input string) *Lexer {
	l := &Lexer{file: file, input: input, line: 1, col: 1}
	if len(input) > 0 {
		r, w := utf8.DecodeRuneInString(input)
		l.ch, l.w = r, w
	}
	return l
}

func (l *Lexer) atEOF() bool { return l.w == 0 }

// peekRune returns the rune after the cursor without advancing.
func (l *Lexer) peekRune() rune {
	if l.w == 0 {
		return 0
	}
	next := l.pos + l.w
	if next >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[next:])
	return r
}

// hasPrefixAt reports whether s occurs in the input starting at the
// current cursor position.
func (l *Lexer) hasPrefixAt(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// advance consumes the rune under the cursor (tracking line/column) and
// moves to the next one.
func (l *Lexer) advance() {
	if l.w == 0 {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.pos += l.w
	if l.pos >= len(l.input) {
		l.ch, l.w = 0, 0
		l.col++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch, l.w = r, w
	l.col++
}

// Tokenize lexes the entire input and returns the full token stream,
// terminated by exactly one EOF token. The lexer never aborts: invalid
// byte sequences are recovered as Unknown tokens.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next lexes and returns the next token, including its leading and
// trailing trivia.
func (l *Lexer) Next() token.Token {
	leading := l.collectTrivia(true)

	if l.atEOF() {
		return token.Token{
			Kind:     token.EOF,
			Leading:  leading,
			Span:     token.Span{Start: l.currentPos(), End: l.currentPos()},
			Presence: token.Present,
		}
	}

	start := l.currentPos()
	kind, text := l.scanOne()
	end := l.currentPos()

	trailing := l.collectTrivia(false)

	return token.Token{
		Kind:     kind,
		Text:     text,
		Leading:  leading,
		Trailing: trailing,
		Span:     token.Span{Start: start, End: end},
		Presence: token.Present,
	}
}

// scanOne recognizes exactly one token at the cursor (which is guaranteed
// not to be at EOF and not sitting on trivia).
func (l *Lexer) scanOne() (token.Kind, string) {
	switch {
	case l.hasPrefixAt("->"):
		l.advance()
		l.advance()
		return token.Arrow, "->"
	case l.ch == '→':
		l.advance()
		return token.Arrow, "→"
	case l.ch == '∀':
		l.advance()
		return token.Forall, "∀"
	}

	if k, ok := hardDelimiters[l.ch]; ok {
		ch := l.ch
		l.advance()
		return k, string(ch)
	}

	if unicode.IsSpace(l.ch) {
		// collectTrivia should have consumed all whitespace already; if
		// we land here it is an exotic space character outside the closed
		// trivia set collectTrivia recognizes — treat it as an unknown
		// token rather than looping forever.
		ch := l.ch
		l.advance()
		return token.Unknown, string(ch)
	}

	return l.scanIdentifierOrUnknown()
}

// scanIdentifierOrUnknown consumes a maximal run of non-whitespace runes
// that are not hard delimiters, not "->"/"→", and classifies the result as
// Underscore, a keyword, or a plain Identifier. A single invalid/illegal
// rune that cannot start such a run is recovered as Unknown.
func (l *Lexer) scanIdentifierOrUnknown() (token.Kind, string) {
	start := l.pos
	if !l.identifierRuneOK() {
		text := l.input[start : start+max(l.w, 1)]
		l.advance()
		return token.Unknown, text
	}
	for l.identifierRuneOK() {
		l.advance()
	}
	text := l.input[start:l.pos]

	if text == "_" {
		return token.Underscore, text
	}
	if k, ok := token.LookupKeyword(text); ok {
		return k, text
	}
	return token.Identifier, text
}

// identifierRuneOK reports whether the rune under the cursor may continue
// (or start) an identifier run.
func (l *Lexer) identifierRuneOK() bool {
	if l.atEOF() {
		return false
	}
	if l.ch == utf8.RuneError && l.w == 1 {
		// Malformed UTF-8 byte; not a valid rune at all, so it cannot
		// continue an identifier and is instead recovered as Unknown.
		return false
	}
	if unicode.IsSpace(l.ch) {
		return false
	}
	if l.ch == '→' || l.ch == '∀' {
		return false
	}
	if l.hasPrefixAt("->") {
		return false
	}
	if _, ok := hardDelimiters[l.ch]; ok {
		return false
	}
	return true
}

// collectTrivia gathers whitespace and comments. When leading is true it
// runs until the next real token (crossing any number of newlines); when
// false (collecting trailing trivia for the token just lexed) it stops at
// but does not consume the first newline, so that newline becomes leading
// trivia of the following token.
func (l *Lexer) collectTrivia(leading bool) token.Trivia {
	var tr token.Trivia
	for {
		switch {
		case l.atEOF():
			return tr
		case l.ch == ' ':
			n := 0
			for l.ch == ' ' {
				n++
				l.advance()
			}
			tr = tr.Append(token.Spaces(n))
		case l.ch == '\t':
			n := 0
			for l.ch == '\t' {
				n++
				l.advance()
			}
			tr = tr.Append(token.Tabs(n))
		case l.ch == '\v':
			n := 0
			for l.ch == '\v' {
				n++
				l.advance()
			}
			tr = tr.Append(token.VerticalTabs(n))
		case l.ch == '\f':
			n := 0
			for l.ch == '\f' {
				n++
				l.advance()
			}
			tr = tr.Append(token.Formfeeds(n))
		case l.ch == '\n' || l.ch == '\r':
			if !leading {
				return tr
			}
			start := l.pos
			for l.ch == '\n' || l.ch == '\r' {
				// A \r\n pair counts as a single newline but both its
				// bytes are preserved.
				if l.ch == '\r' && l.peekRune() == '\n' {
					l.advance()
				}
				l.advance()
			}
			tr = tr.Append(token.Newlines(l.input[start:l.pos]))
		case l.hasPrefixAt("--"):
			tr = tr.Append(l.scanLineComment())
		case l.hasPrefixAt("{-"):
			tr = tr.Append(l.scanBlockComment())
		default:
			return tr
		}
	}
}

// scanLineComment consumes a "-- ... \n" comment, not including the
// terminating newline (which is left for the trivia loop to classify).
func (l *Lexer) scanLineComment() token.TriviaPiece {
	start := l.pos
	l.advance() // first '-'
	l.advance() // second '-'
	for !l.atEOF() && l.ch != '\n' && l.ch != '\r' {
		l.advance()
	}
	return token.LineComment(l.input[start:l.pos])
}

// scanBlockComment consumes a nestable "{- ... -}" comment. A mismatched
// open is recovered at EOF: the unterminated comment simply runs to the
// end of the file.
func (l *Lexer) scanBlockComment() token.TriviaPiece {
	start := l.pos
	l.advance() // '{'
	l.advance() // '-'
	depth := 1
	for !l.atEOF() && depth > 0 {
		switch {
		case l.hasPrefixAt("{-"):
			depth++
			l.advance()
			l.advance()
		case l.hasPrefixAt("-}"):
			depth--
			l.advance()
			l.advance()
		default:
			l.advance()
		}
	}
	return token.BlockComment(l.input[start:l.pos])
}
