package driver

import (
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// parseSourceFile parses a whole file: either a single "module ... where"
// header, or a bare top-level declaration list, followed by EOF —
// internal/bind.Checker.CheckModule accepts either shape for a
// KindSourceFile's first child.
func (p *parser) parseSourceFile() *syntax.Raw {
	var first *syntax.Raw
	if p.at(token.KwModule) {
		first = p.parseModuleDecl()
	} else {
		first = p.parseDeclList(isTopLevelStop)
	}
	eof := p.expect(token.EOF)
	return syntax.NewNode(syntax.KindSourceFile, first, eof)
}

func isTopLevelStop(k token.Kind) bool { return k == token.EOF }
func isBraceStop(k token.Kind) bool    { return k == token.RBrace || k == token.EOF }

func (p *parser) parseModuleDecl() *syntax.Raw {
	moduleKw := p.expect(token.KwModule)
	name := p.parseQualifiedName()
	whereKw := p.expect(token.KwWhere)
	block := p.parseBlock()
	return syntax.NewNode(syntax.KindModuleDecl, moduleKw, name, whereKw, block)
}

func (p *parser) parseBlock() *syntax.Raw {
	lbrace := p.expect(token.LBrace)
	list := p.parseDeclList(isBraceStop)
	rbrace := p.expect(token.RBrace)
	return syntax.NewNode(syntax.KindBlock, lbrace, list, rbrace)
}

// parseDeclList reads declarations separated by ';' until stop reports
// true of the current token's kind, skipping stray separators the layout
// algorithm may have inserted around blank lines.
func (p *parser) parseDeclList(stop func(token.Kind) bool) *syntax.Raw {
	var decls []*syntax.Raw
	for !stop(p.cur().Kind) {
		for p.at(token.Semi) {
			p.advance()
		}
		if stop(p.cur().Kind) {
			break
		}
		decls = append(decls, p.parseDecl())
		for p.at(token.Semi) {
			p.advance()
		}
	}
	return syntax.NewNode(syntax.KindList, decls...)
}

func (p *parser) parseDecl() *syntax.Raw {
	switch p.cur().Kind {
	case token.KwImport:
		kw := p.advance()
		name := p.parseQualifiedName()
		return syntax.NewNode(syntax.KindImportDecl, syntax.NewToken(kw), name)
	case token.KwOpen:
		kw := p.advance()
		name := p.parseQualifiedName()
		return syntax.NewNode(syntax.KindOpenDecl, syntax.NewToken(kw), name)
	case token.KwInfixL, token.KwInfixR, token.KwInfix:
		kw := p.advance()
		level := p.expect(token.Identifier)
		name := p.expect(token.Identifier)
		return syntax.NewNode(syntax.KindFixityDecl, syntax.NewToken(kw), level, name)
	case token.KwData:
		return p.parseDataDecl()
	case token.KwRecord:
		return p.parseRecordDecl()
	case token.Identifier:
		return p.parseTypeSigOrClause()
	default:
		p.errorf("expected a declaration, found %s", p.cur().Kind)
		bad := syntax.NewToken(p.advance())
		return syntax.NewNode(syntax.KindTypeSig, bad, syntax.NewToken(token.NewMissing(token.Colon)), p.holeExpr())
	}
}

func (p *parser) parseDataDecl() *syntax.Raw {
	dataKw := p.expect(token.KwData)
	name := p.expect(token.Identifier)
	colon := p.expect(token.Colon)
	ty := p.parseExpr()
	whereKw := p.expect(token.KwWhere)
	block := p.parseConSigBlock()
	return syntax.NewNode(syntax.KindDataDecl, dataKw, name, colon, ty, whereKw, block)
}

func (p *parser) parseConSigBlock() *syntax.Raw {
	lbrace := p.expect(token.LBrace)
	var sigs []*syntax.Raw
	for !isBraceStop(p.cur().Kind) {
		for p.at(token.Semi) {
			p.advance()
		}
		if isBraceStop(p.cur().Kind) {
			break
		}
		sigs = append(sigs, p.parseConSig())
		for p.at(token.Semi) {
			p.advance()
		}
	}
	list := syntax.NewNode(syntax.KindList, sigs...)
	rbrace := p.expect(token.RBrace)
	return syntax.NewNode(syntax.KindBlock, lbrace, list, rbrace)
}

func (p *parser) parseConSig() *syntax.Raw {
	name := p.expect(token.Identifier)
	colon := p.expect(token.Colon)
	ty := p.parseExpr()
	return syntax.NewNode(syntax.KindConSig, name, colon, ty)
}

func (p *parser) parseRecordDecl() *syntax.Raw {
	recordKw := p.expect(token.KwRecord)
	name := p.expect(token.Identifier)
	colon := p.expect(token.Colon)
	ty := p.parseExpr()
	whereKw := p.expect(token.KwWhere)
	block := p.parseFieldSigBlock()
	return syntax.NewNode(syntax.KindRecordDecl, recordKw, name, colon, ty, whereKw, block)
}

func (p *parser) parseFieldSigBlock() *syntax.Raw {
	lbrace := p.expect(token.LBrace)
	var sigs []*syntax.Raw
	for !isBraceStop(p.cur().Kind) {
		for p.at(token.Semi) {
			p.advance()
		}
		if isBraceStop(p.cur().Kind) {
			break
		}
		sigs = append(sigs, p.parseFieldSig())
		for p.at(token.Semi) {
			p.advance()
		}
	}
	list := syntax.NewNode(syntax.KindList, sigs...)
	rbrace := p.expect(token.RBrace)
	return syntax.NewNode(syntax.KindBlock, lbrace, list, rbrace)
}

func (p *parser) parseFieldSig() *syntax.Raw {
	fieldKw := p.expect(token.KwField)
	name := p.expect(token.Identifier)
	colon := p.expect(token.Colon)
	ty := p.parseExpr()
	return syntax.NewNode(syntax.KindFieldSig, fieldKw, name, colon, ty)
}

// parseTypeSigOrClause disambiguates "name : type" from "name pat* = body"
// by one token of lookahead after the name: a following ':' is a
// signature, anything else starts a function clause.
func (p *parser) parseTypeSigOrClause() *syntax.Raw {
	name := p.expect(token.Identifier)
	if p.at(token.Colon) {
		colon := p.advance()
		ty := p.parseExpr()
		return syntax.NewNode(syntax.KindTypeSig, name, syntax.NewToken(colon), ty)
	}
	patterns := p.parsePatternList(func(k token.Kind) bool { return k == token.Equal })
	eq := p.expect(token.Equal)
	body := p.parseExpr()
	return syntax.NewNode(syntax.KindFunClause, name, patterns, eq, body)
}

func (p *parser) parseQualifiedName() *syntax.Raw {
	var parts []*syntax.Raw
	parts = append(parts, p.expect(token.Identifier))
	for p.at(token.Dot) {
		parts = append(parts, syntax.NewToken(p.advance()))
		parts = append(parts, p.expect(token.Identifier))
	}
	return syntax.NewNode(syntax.KindQualifiedName, parts...)
}
