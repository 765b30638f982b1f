package mixfix

import (
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// Atom is one position in the flattened token list the scope checker hands
// the reparser. Text is non-empty when View is a single bare identifier,
// making it eligible to match a notation's literal piece in addition to
// standing as an ordinary closed operand.
type Atom struct {
	View *syntax.View
	Text string
}

// NewIdentifierAtom builds an Atom for a bare identifier view, recording
// its text so the reparser can try it as a notation piece.
func NewIdentifierAtom(v *syntax.View, text string) Atom {
	return Atom{View: v, Text: text}
}

// NewOperandAtom builds an Atom for a view that can never itself be an
// operator piece (a parenthesized expression, a literal, an application).
func NewOperandAtom(v *syntax.View) Atom {
	return Atom{View: v}
}

type parser struct {
	dag    *PrecedenceDAG
	atoms  []Atom
	pos    int
	engine *diagnostic.Engine
}

// Reparse runs the recursive-descent recognizer over atoms restricted to
// dag and returns a new syntax tree: a notation match becomes a left-spine
// KindApp chain headed by a KindVar for the notation's canonical name
// (e.g. "if_then_else_"), with the hole fillers as successive arguments,
// so ordinary scope checking can walk the result like any other
// application. A single atom with no candidate notation is returned
// unchanged. On a partial match the longest successfully interpreted
// prefix is returned and a reparseLHSFailed/reparseRHSFailed diagnostic
// is emitted.
func Reparse(d *PrecedenceDAG, atoms []Atom, engine *diagnostic.Engine, at *syntax.View) *syntax.Raw {
	if len(atoms) == 0 {
		return nil
	}
	if len(atoms) == 1 {
		return atoms[0].View.Raw()
	}

	texts := make(map[string]struct{})
	for _, a := range atoms {
		if a.Text != "" {
			texts[a.Text] = struct{}{}
		}
	}
	restricted := d.ContainingAll(texts)
	if len(restricted) == 0 {
		// No declared notation's pieces are even present among these
		// atoms: this is an ordinary application spine, not a mixfix
		// expression, so there is nothing to reparse and nothing to
		// diagnose.
		return atomChain(atoms)
	}
	local := NewPrecedenceDAG()
	for _, n := range restricted {
		local.Insert(n)
	}

	p := &parser{dag: local, atoms: atoms, engine: engine}
	result := p.parseExpr(scope.Unrelated(), false)

	if result == nil {
		if engine != nil {
			engine.Emit(diagnostic.Diagnostic{
				Severity: diagnostic.Error,
				Message:  "reparseLHSFailed: no notation or closed expression could start this application",
				Location: spanOf(at),
			})
		}
		return atomChain(atoms)
	}
	if p.pos < len(atoms) {
		if engine != nil {
			engine.Emit(diagnostic.Diagnostic{
				Severity: diagnostic.Error,
				Message:  "reparseRHSFailed: trailing tokens after the longest mixfix parse were not consumed",
				Location: spanOf(at),
			})
		}
		// Fold the unconsumed suffix back on as plain applications so
		// checking can still proceed over the whole expression.
		acc := result
		for _, a := range atoms[p.pos:] {
			acc = syntax.NewNode(syntax.KindApp, acc, a.View.Raw())
		}
		return acc
	}
	return result
}

func spanOf(v *syntax.View) token.Span {
	if v == nil {
		return token.Span{}
	}
	return token.Span{Start: token.Position{Offset: v.Offset()}, End: token.Position{Offset: v.EndOffset()}}
}

// atomChain folds a run of atoms into a plain left-associative application
// chain, the same shape checkExpr already builds for ordinary KindApp
// spines, used as a safe fallback when no notation can be recognized.
func atomChain(atoms []Atom) *syntax.Raw {
	acc := atoms[0].View.Raw()
	for _, a := range atoms[1:] {
		acc = syntax.NewNode(syntax.KindApp, acc, a.View.Raw())
	}
	return acc
}

func headVarRaw(name scope.Name) *syntax.Raw {
	nameTok := syntax.NewToken(token.Token{Kind: token.Identifier, Text: string(name), Presence: token.Present})
	qn := syntax.NewNode(syntax.KindQualifiedName, nameTok)
	return syntax.NewNode(syntax.KindVar, qn)
}

func appChain(head *syntax.Raw, args []*syntax.Raw) *syntax.Raw {
	acc := head
	for _, a := range args {
		acc = syntax.NewNode(syntax.KindApp, acc, a)
	}
	return acc
}

// parseExpr tries every notation visible at floor (Tighter when strict,
// AtOrAbove otherwise) in ascending-level DAG order: the first
// successful parse in DAG order wins, and the reparser never backtracks
// across a committed operator. Falls back to a single closed atom.
func (p *parser) parseExpr(floor scope.PrecedenceLevel, strict bool) *syntax.Raw {
	var candidates []*Notation
	if strict {
		candidates = p.dag.Tighter(floor)
	} else {
		candidates = p.dag.AtOrAbove(floor)
	}
	for _, n := range candidates {
		start := p.pos
		if raw, ok := p.tryNotation(n); ok {
			return raw
		}
		p.pos = start
	}
	return p.parseClosed()
}

func (p *parser) parseClosed() *syntax.Raw {
	if p.pos >= len(p.atoms) {
		return nil
	}
	v := p.atoms[p.pos].View.Raw()
	p.pos++
	return v
}

// parseHole fills one hole of a notation declared at level. Interior
// holes must bind strictly tighter than level; the leftmost/rightmost
// exterior hole of the notation binds at or above it instead, so a
// left-assoc operator's own level can recur into its own leading hole.
func (p *parser) parseHole(level scope.PrecedenceLevel, exterior bool) (*syntax.Raw, bool) {
	raw := p.parseExpr(level, !exterior)
	if raw == nil {
		return nil, false
	}
	return raw, true
}

func (p *parser) tryNotation(n *Notation) (*syntax.Raw, bool) {
	if n.isSimpleBinary() && n.Fixity.Assoc != scope.NonAssoc {
		return p.tryBinaryAssoc(n)
	}
	return p.tryFixedShape(n)
}

// tryFixedShape matches a notation's sections against the atom stream
// exactly once, with no left/right repetition — the shape non-assoc
// operators (and any higher-arity notation like "if_then_else_") use.
func (p *parser) tryFixedShape(n *Notation) (*syntax.Raw, bool) {
	var args []*syntax.Raw
	level := n.Fixity.Precedence
	// A notation dangling on both sides (both its first and last section
	// are holes) must not let either of those holes recurse into itself
	// at-or-above its own level, or the descent never consumes an atom
	// before recursing again; holding both to the strictly-tighter floor
	// is what guarantees termination.
	bothDangling := n.Sections[0].Wild && n.Sections[len(n.Sections)-1].Wild
	for i, sec := range n.Sections {
		if sec.Wild {
			exterior := (i == 0 || i == len(n.Sections)-1) && !bothDangling
			raw, ok := p.parseHole(level, exterior)
			if !ok {
				return nil, false
			}
			args = append(args, raw)
			continue
		}
		if p.pos >= len(p.atoms) || p.atoms[p.pos].Text != string(sec.Name) {
			return nil, false
		}
		p.pos++
	}
	return appChain(headVarRaw(n.Name), args), true
}

// tryBinaryAssoc matches "_piece_" repeatedly, folding the matched holes
// left or right according to the notation's declared associativity.
func (p *parser) tryBinaryAssoc(n *Notation) (*syntax.Raw, bool) {
	level := n.Fixity.Precedence
	piece := string(n.Sections[1].Name)

	// Every hole inside the repeat binds strictly tighter than the
	// operator's own level: the fold below is what supplies
	// associativity, so a hole that itself admitted this same level
	// would let the recursive descent re-match the operator from the
	// wrong side and invert the intended fold direction.
	first, ok := p.parseHole(level, false)
	if !ok {
		return nil, false
	}
	operands := []*syntax.Raw{first}
	for p.pos < len(p.atoms) && p.atoms[p.pos].Text == piece {
		save := p.pos
		p.pos++
		next, ok := p.parseHole(level, false)
		if !ok {
			p.pos = save
			break
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return nil, false
	}

	if n.Fixity.Assoc == scope.RightAssoc {
		acc := operands[len(operands)-1]
		for i := len(operands) - 2; i >= 0; i-- {
			acc = appChain(headVarRaw(n.Name), []*syntax.Raw{operands[i], acc})
		}
		return acc, true
	}

	acc := operands[0]
	for _, o := range operands[1:] {
		acc = appChain(headVarRaw(n.Name), []*syntax.Raw{acc, o})
	}
	return acc, true
}
