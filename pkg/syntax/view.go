package syntax

import "github.com/silt-lang/silt/pkg/token"

// View is a lazily-materialized, parent-threaded reading of a Raw tree
// (the "red" tree): it adds the absolute byte offset and parent link that
// Raw intentionally omits, computed on demand as a caller walks down from
// the root, through a thin wrapper layer distinct from the immutable raw
// tree. A View is cheap to construct and safe to discard; nothing is
// cached beyond the single node it wraps.
type View struct {
	raw    *Raw
	parent *View
	offset int // absolute byte offset of raw's first byte (including its own leading trivia)
	index  int // this node's index among parent's children, -1 at the root
}

// Root wraps raw as the root of a View tree at absolute offset 0.
func Root(raw *Raw) *View {
	return &View{raw: raw, offset: 0, index: -1}
}

// Raw returns the wrapped immutable node.
func (v *View) Raw() *Raw { return v.raw }

// Kind returns the wrapped node's kind.
func (v *View) Kind() Kind { return v.raw.Kind() }

// Parent returns the enclosing View, or nil at the root.
func (v *View) Parent() *View { return v.parent }

// IndexInParent returns this node's position among its parent's children,
// or -1 at the root.
func (v *View) IndexInParent() int { return v.index }

// Offset returns the absolute byte offset of the node's first byte
// (including its own leading trivia) within the source file.
func (v *View) Offset() int { return v.offset }

// EndOffset returns the absolute byte offset one past the node's last byte.
func (v *View) EndOffset() int { return v.offset + v.raw.Width() }

// Children materializes the node's children as Views, each threaded back
// to v as parent and positioned at its absolute offset. Materialization is
// O(children), not O(subtree): grandchildren are only computed when asked
// for via a further Children() call.
func (v *View) Children() []*View {
	raw := v.raw.Children()
	if raw == nil {
		return nil
	}
	out := make([]*View, len(raw))
	off := v.offset
	for i, c := range raw {
		out[i] = &View{raw: c, parent: v, offset: off, index: i}
		off += c.Width()
	}
	return out
}

// Token returns the wrapped token when v is a leaf, with ok true.
func (v *View) Token() (token.Token, bool) {
	if !v.raw.IsToken() {
		return token.Token{}, false
	}
	return v.raw.Token(), true
}

// Text renders v's subtree back to its exact source bytes.
func (v *View) Text() string { return v.raw.Text() }

// Span computes v's source span using conv to translate its absolute byte
// offsets into (line, column) positions.
func (v *View) Span(conv *SourceLocationConverter) token.Span {
	return token.Span{
		Start: conv.Position(v.Offset()),
		End:   conv.Position(v.EndOffset()),
	}
}
