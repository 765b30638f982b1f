package driver

import (
	"fmt"

	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// parser walks a shined token stream by index: current/peek lookahead
// plus a collected error slice, specialized to this package's reduced
// grammar.
type parser struct {
	toks   []token.Token
	pos    int
	errors []ParseError
}

func newParser(toks []token.Token) *parser {
	return &parser{toks: toks}
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Presence: token.Implicit}
	}
	return p.toks[p.pos]
}

func (p *parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF, Presence: token.Implicit}
	}
	return p.toks[i]
}

func (p *parser) at(k token.Kind) bool { return p.cur().Kind == k }

// advance consumes and returns the current token, never stepping past a
// trailing EOF so repeated error recovery cannot run off the end.
func (p *parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has kind k, else records a
// ParseError and returns a Missing placeholder so the caller can keep
// building a well-shaped tree.
func (p *parser) expect(k token.Kind) *syntax.Raw {
	if p.at(k) {
		return syntax.NewToken(p.advance())
	}
	p.errorf("expected %s, found %s", k, p.cur().Kind)
	return syntax.NewToken(token.NewMissing(k))
}

func (p *parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, ParseError{Offset: p.cur().Span.Start.Offset, Message: fmt.Sprintf(format, args...)})
}
