package mangle

import (
	"strings"

	"github.com/silt-lang/silt/internal/scope"
)

// Demangle inverts Mangler.Mangle, reporting ok=false on any grammar
// violation rather than erroring. It never consults a Mangler; its only
// dependency on this package's encoding is the shared substTable/
// letter-index conventions both directions agree on.
func Demangle(s string) (*Decl, bool) {
	if !strings.HasPrefix(s, "_S") {
		return nil, false
	}
	d, next, ok := demangleEntity(s, 2)
	if !ok || next != len(s) {
		return nil, false
	}
	return d, true
}

func demangleEntity(s string, pos int) (*Decl, int, bool) {
	words := &substTable{}
	var entities []Type

	moduleText, p, ok := decodeIdentifier(words, s, pos)
	if !ok {
		return nil, pos, false
	}
	module := splitQualified(moduleText)

	name, p, ok := decodeIdentifier(words, s, p)
	if !ok {
		return nil, pos, false
	}
	if p >= len(s) {
		return nil, pos, false
	}

	switch s[p] {
	case 'D':
		return &Decl{Module: module, Name: scope.Name(name), Kind: DeclData}, p + 1, true
	case 'R':
		return &Decl{Module: module, Name: scope.Name(name), Kind: DeclRecord}, p + 1, true
	default:
		var params []Type
		for p < len(s) && s[p] != 'F' {
			t, next, ok := demangleType(&entities, s, p)
			if !ok {
				return nil, pos, false
			}
			params = append(params, t)
			p = next
		}
		if p >= len(s) || s[p] != 'F' {
			return nil, pos, false
		}
		return &Decl{Module: module, Name: scope.Name(name), Kind: DeclFunction, Params: params}, p + 1, true
	}
}

// demangleType mirrors Mangler.mangleType: an 'A'-prefixed node is a
// back-reference into entities; any other leading byte starts a fresh
// node, which is appended to entities after it is fully parsed, in the
// same order mangleType records them.
func demangleType(entities *[]Type, s string, pos int) (Type, int, bool) {
	if pos >= len(s) {
		return nil, pos, false
	}

	if s[pos] == 'A' {
		idx, next, ok := decodeLetterIndex(s, pos+1)
		if !ok || next >= len(s) || s[next] != '_' {
			return nil, pos, false
		}
		if idx < 0 || idx >= len(*entities) {
			return nil, pos, false
		}
		return (*entities)[idx], next + 1, true
	}

	var result Type
	var next int
	switch s[pos] {
	case 'T':
		result, next = SortType{}, pos+1
	case 'B':
		n, p, ok := readDecimal(s, pos+1)
		if !ok || p >= len(s) || s[p] != '_' {
			return nil, pos, false
		}
		result, next = BoundType{Index: n}, p+1
	case 'N':
		n, p, ok := readDecimal(s, pos+1)
		if !ok || p >= len(s) || s[p] != '_' {
			return nil, pos, false
		}
		p++
		if p+n > len(s) {
			return nil, pos, false
		}
		result, next = NamedType{Name: splitQualified(s[p : p+n])}, p+n
	default:
		return nil, pos, false
	}

	*entities = append(*entities, result)
	return result, next, true
}

// splitQualified inverts scope.QualifiedName.String(). "" decodes to a
// nil (empty) path rather than QualifiedName{""}.
func splitQualified(name string) scope.QualifiedName {
	if name == "" {
		return nil
	}
	parts := strings.Split(name, ".")
	out := make(scope.QualifiedName, len(parts))
	for i, p := range parts {
		out[i] = scope.Name(p)
	}
	return out
}
