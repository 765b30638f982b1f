// Package mixfix implements Silt's Danielsson–Norell mixfix reparser: it
// turns a flattened run of application atoms into a notation-headed
// application tree, choosing among the operators visible at a given scope
// by walking a precedence DAG instead of a fixed grammar.
package mixfix

import (
	"strings"

	"github.com/silt-lang/silt/internal/scope"
)

// NotationSection is one piece of a mixfix name: either a literal
// identifier segment or a hole ("_") the reparser must fill with an
// operand.
type NotationSection struct {
	Wild bool
	Name scope.Name // empty when Wild
}

// Notation is a declared name's mixfix shape: "if_then_else_" splits into
// [id("if"), wild, id("then"), wild, id("else"), wild].
type Notation struct {
	Name     scope.Name
	Fixity   scope.Fixity
	Sections []NotationSection
	pieces   map[string]struct{}
}

// NewNotation derives a Notation from a declared name by splitting on "_".
// A name with no underscore at all is not a notation; callers only call
// this for names already known to contain one.
func NewNotation(name scope.Name, fixity scope.Fixity) *Notation {
	parts := strings.Split(string(name), "_")
	n := &Notation{Name: name, Fixity: fixity, pieces: make(map[string]struct{})}
	for i, part := range parts {
		if i > 0 {
			n.Sections = append(n.Sections, NotationSection{Wild: true})
		}
		if part != "" {
			n.Sections = append(n.Sections, NotationSection{Name: scope.Name(part)})
			n.pieces[part] = struct{}{}
		}
	}
	return n
}

// piecesSubsetOf reports whether every literal piece of n appears in
// texts, restricting the active notation DAG to notations whose name
// pieces all occur in the token list.
func (n *Notation) piecesSubsetOf(texts map[string]struct{}) bool {
	for p := range n.pieces {
		if _, ok := texts[p]; !ok {
			return false
		}
	}
	return true
}

// isSimpleBinary reports whether n is exactly "_piece_" — the shape that
// left/right-associative repetition (a op b op c ...) applies to.
func (n *Notation) isSimpleBinary() bool {
	return len(n.Sections) == 3 && n.Sections[0].Wild && !n.Sections[1].Wild && n.Sections[2].Wild
}
