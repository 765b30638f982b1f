package syntax

import "github.com/silt-lang/silt/pkg/token"

// Raw is an immutable syntax tree node (the "green" tree, after Swift's
// libSyntax terminology): either a single token leaf or a node carrying an
// ordered, fixed-arity list of children. Raw trees carry no absolute
// position or parent pointer — only relative byte width — so that the same
// Raw subtree can be shared across many parses: raw nodes are immutable
// and may be structurally shared, so editing one part of a tree never
// forces copying an unrelated part.
type Raw struct {
	kind     Kind
	tok      token.Token // valid iff kind == KindToken
	children []*Raw      // valid iff kind != KindToken
	width    int         // total source bytes spanned, leading+text+trailing
}

// NewToken wraps a single lexical token as a leaf Raw node.
func NewToken(tok token.Token) *Raw {
	return &Raw{kind: KindToken, tok: tok, width: len(tok.Render())}
}

// NewNode builds an interior Raw node of the given kind over children, in
// order. children may include leaf token nodes and other interior nodes;
// missing children are represented by leaf nodes wrapping a
// token.NewMissing token, not by omitting the slot.
func NewNode(kind Kind, children ...*Raw) *Raw {
	n := &Raw{kind: kind, children: children}
	for _, c := range children {
		n.width += c.width
	}
	return n
}

// Kind returns the node's kind.
func (r *Raw) Kind() Kind { return r.kind }

// IsToken reports whether r is a leaf token node.
func (r *Raw) IsToken() bool { return r.kind == KindToken }

// Token returns the wrapped token. Only valid when IsToken is true.
func (r *Raw) Token() token.Token { return r.tok }

// Children returns r's child nodes. Returns nil for a leaf token node.
func (r *Raw) Children() []*Raw { return r.children }

// Width returns the number of source bytes r spans (leading trivia through
// trailing trivia of its rightmost descendant token).
func (r *Raw) Width() int { return r.width }

// Text renders r back to its exact source bytes, recursively.
func (r *Raw) Text() string {
	if r.IsToken() {
		return r.tok.Render()
	}
	var out string
	for _, c := range r.children {
		out += c.Text()
	}
	return out
}

// ReplacingChild returns a new Raw node with the child at index i replaced
// by replacement, sharing every other child and leaving r itself
// untouched: siblings of the replaced child are shared, not copied.
// Panics if r is a token leaf or i is out of range.
func (r *Raw) ReplacingChild(i int, replacement *Raw) *Raw {
	if r.IsToken() {
		panic("syntax: ReplacingChild on a token leaf")
	}
	if i < 0 || i >= len(r.children) {
		panic("syntax: ReplacingChild index out of range")
	}
	next := make([]*Raw, len(r.children))
	copy(next, r.children)
	next[i] = replacement
	return NewNode(r.kind, next...)
}
