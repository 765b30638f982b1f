package driver

import (
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// holeExpr builds a KindHole wrapping a Missing underscore, used for error
// recovery when an expression was expected but the input did not contain
// one.
func (p *parser) holeExpr() *syntax.Raw {
	return syntax.NewNode(syntax.KindHole, syntax.NewToken(token.NewMissing(token.Underscore)))
}

// parseExpr parses the widest expression form: an arrow-level expression
// optionally followed by "= rhs" (the propositional equality type).
func (p *parser) parseExpr() *syntax.Raw {
	lhs := p.parseArrowExpr()
	if p.at(token.Equal) {
		eq := p.advance()
		rhs := p.parseArrowExpr()
		return syntax.NewNode(syntax.KindEqual, lhs, syntax.NewToken(eq), rhs)
	}
	return lhs
}

// parseArrowExpr parses an explicit Pi type, or an application sequence
// optionally followed by "-> codomain" (right-associative).
func (p *parser) parseArrowExpr() *syntax.Raw {
	if p.looksLikePi() {
		return p.parsePi()
	}
	lhs := p.parseAppSeq()
	if p.at(token.Arrow) {
		arrow := p.advance()
		rhs := p.parseArrowExpr()
		return syntax.NewNode(syntax.KindFunctionTy, lhs, syntax.NewToken(arrow), rhs)
	}
	return lhs
}

// looksLikePi reports whether the next three tokens open an explicit
// binder "( name :", the only shape parseArrowExpr cannot tell apart from
// a parenthesized application by its first token alone.
func (p *parser) looksLikePi() bool {
	return p.at(token.LParen) && p.peek(1).Kind == token.Identifier && p.peek(2).Kind == token.Colon
}

func (p *parser) parsePi() *syntax.Raw {
	lparen := p.expect(token.LParen)
	name := p.expect(token.Identifier)
	colon := p.expect(token.Colon)
	domain := p.parseExpr()
	rparen := p.expect(token.RParen)
	arrow := p.expect(token.Arrow)
	codomain := p.parseArrowExpr()
	return syntax.NewNode(syntax.KindPi, lparen, name, colon, domain, rparen, arrow, codomain)
}

// atomCanStart reports whether k can open an atom, i.e. whether the
// application sequence should keep collecting more atoms.
func atomCanStart(k token.Kind) bool {
	switch k {
	case token.Identifier, token.Underscore, token.KwType, token.LParen, token.Backslash, token.KwLet:
		return true
	default:
		return false
	}
}

// parseAppSeq collects a run of juxtaposed atoms. A single atom is
// returned bare; two or more are wrapped as a flat KindMixfixApp, left for
// internal/mixfix.Reparse to disambiguate between plain application and a
// declared notation.
func (p *parser) parseAppSeq() *syntax.Raw {
	var atoms []*syntax.Raw
	atoms = append(atoms, p.parseAtom())
	for atomCanStart(p.cur().Kind) {
		atoms = append(atoms, p.parseAtom())
	}
	if len(atoms) == 1 {
		return atoms[0]
	}
	return syntax.NewNode(syntax.KindMixfixApp, syntax.NewNode(syntax.KindList, atoms...))
}

func (p *parser) parseAtom() *syntax.Raw {
	switch p.cur().Kind {
	case token.Identifier:
		name := p.parseQualifiedName()
		return syntax.NewNode(syntax.KindVar, name)
	case token.Underscore:
		tok := p.advance()
		return syntax.NewNode(syntax.KindHole, syntax.NewToken(tok))
	case token.KwType:
		tok := p.advance()
		return syntax.NewNode(syntax.KindTypeExpr, syntax.NewToken(tok))
	case token.LParen:
		lparen := p.advance()
		inner := p.parseExpr()
		rparen := p.expect(token.RParen)
		return syntax.NewNode(syntax.KindParen, syntax.NewToken(lparen), inner, rparen)
	case token.Backslash:
		return p.parseLambda()
	case token.KwLet:
		return p.parseLet()
	default:
		p.errorf("expected an expression, found %s", p.cur().Kind)
		p.advance()
		return p.holeExpr()
	}
}

func (p *parser) parseLambda() *syntax.Raw {
	backslash := p.expect(token.Backslash)
	patterns := p.parsePatternList(func(k token.Kind) bool { return k == token.Arrow })
	arrow := p.expect(token.Arrow)
	body := p.parseExpr()
	return syntax.NewNode(syntax.KindLambda, backslash, patterns, arrow, body)
}

func (p *parser) parseLet() *syntax.Raw {
	letKw := p.expect(token.KwLet)
	block := p.parseBlock()
	inKw := p.expect(token.KwIn)
	body := p.parseExpr()
	return syntax.NewNode(syntax.KindLet, letKw, block, inKw, body)
}

// parsePatternList reads patterns until stop reports true of the current
// token's kind.
func (p *parser) parsePatternList(stop func(token.Kind) bool) *syntax.Raw {
	var pats []*syntax.Raw
	for !stop(p.cur().Kind) && patternCanStart(p.cur().Kind) {
		pats = append(pats, p.parsePattern())
	}
	return syntax.NewNode(syntax.KindList, pats...)
}

func patternCanStart(k token.Kind) bool {
	return k == token.Identifier || k == token.Underscore || k == token.LParen
}

func (p *parser) parsePattern() *syntax.Raw {
	switch p.cur().Kind {
	case token.Underscore:
		tok := p.advance()
		return syntax.NewNode(syntax.KindWildcardPattern, syntax.NewToken(tok))
	case token.LParen:
		p.advance()
		inner := p.parseConPatternBody()
		p.expect(token.RParen)
		return inner
	case token.Identifier:
		tok := p.cur()
		if isUpperFirst(tok.Text) {
			name := p.parseQualifiedName()
			return syntax.NewNode(syntax.KindConPattern, name, syntax.NewNode(syntax.KindList))
		}
		p.advance()
		return syntax.NewNode(syntax.KindVarPattern, syntax.NewToken(tok))
	default:
		p.errorf("expected a pattern, found %s", p.cur().Kind)
		tok := p.advance()
		return syntax.NewNode(syntax.KindWildcardPattern, syntax.NewToken(tok))
	}
}

// parseConPatternBody parses a parenthesized constructor application
// pattern's contents: a qualified constructor name applied to zero or
// more nested patterns, e.g. "Cons x xs".
func (p *parser) parseConPatternBody() *syntax.Raw {
	name := p.parseQualifiedName()
	args := p.parsePatternList(func(k token.Kind) bool { return k == token.RParen })
	return syntax.NewNode(syntax.KindConPattern, name, args)
}

func isUpperFirst(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= 'A' && c <= 'Z'
}
