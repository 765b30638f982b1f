package bind

import (
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// listOf returns the element Views of a KindList node, or nil if v is nil
// or not a list.
func listOf(v *syntax.View) []*syntax.View {
	if v == nil || v.Kind() != KindList {
		return nil
	}
	return v.Children()
}

// blockList returns the inner KindList of a KindBlock node ("{" list "}"),
// or v itself if v is already a KindList (so callers can pass either a
// full block or a bare list interchangeably).
func blockList(v *syntax.View) *syntax.View {
	if v == nil {
		return nil
	}
	if v.Kind() == KindList {
		return v
	}
	if v.Kind() != KindBlock {
		return nil
	}
	kids := v.Children()
	if len(kids) < 2 {
		return nil
	}
	return kids[1]
}

// qualifiedNameOf reads a KindQualifiedName node's dotted identifier
// chain, skipping the "." separator tokens.
func qualifiedNameOf(v *syntax.View) scope.QualifiedName {
	if v == nil {
		return nil
	}
	if v.Kind() != KindQualifiedName {
		if tok, ok := v.Token(); ok {
			return scope.QualifiedName{scope.Name(tok.Text)}
		}
		return nil
	}
	var parts scope.QualifiedName
	for _, k := range v.Children() {
		tok, ok := k.Token()
		if !ok || tok.Kind == token.Dot {
			continue
		}
		parts = append(parts, scope.Name(tok.Text))
	}
	return parts
}

// firstTokenText returns the text of v's first descendant token leaf, for
// quick name-shape checks (e.g. "does this signature's name contain an
// underscore") without fully resolving it.
func firstTokenText(v *syntax.View) (string, bool) {
	if v == nil {
		return "", false
	}
	if tok, ok := v.Token(); ok {
		return tok.Text, true
	}
	for _, k := range v.Children() {
		if s, ok := firstTokenText(k); ok {
			return s, true
		}
	}
	return "", false
}

// pathsEqual reports whether two qualified names have identical components.
func pathsEqual(a, b scope.QualifiedName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
