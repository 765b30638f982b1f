package mangle

import (
	"fmt"
	"strconv"
)

// Mangler encodes a Decl into the "_S"-prefixed symbol grammar. Every
// Mangle call resets both substitution tables and self-checks its own
// output by demangling and remangling it before returning; a mismatch
// here is a bug in the encoder, not something a caller can trigger, so
// it panics rather than returning an error.
type Mangler struct {
	words    *substTable
	entities *substTable
}

// NewMangler returns a Mangler with empty tables, ready to mangle the
// first of possibly many declarations. Each compilation unit owns its
// own mangler state; tables are never shared across units.
func NewMangler() *Mangler {
	return &Mangler{words: &substTable{}, entities: &substTable{}}
}

// Mangle encodes d, asserting the round-trip property before returning.
// The panic path is only reachable from a bug in the encoder itself — a
// self-consistent encoder never violates its own grammar.
func (m *Mangler) Mangle(d *Decl) string {
	out := m.manglePlain(d)
	decoded, ok := Demangle(out)
	if !ok {
		panic(fmt.Sprintf("mangle: produced an unmanglable symbol %q for %+v", out, d))
	}
	remangled := NewMangler().manglePlain(decoded)
	if remangled != out {
		panic(fmt.Sprintf("mangle: round-trip mismatch: mangled %q, demangled+remangled to %q", out, remangled))
	}
	return out
}

func (m *Mangler) manglePlain(d *Decl) string {
	m.words = &substTable{}
	m.entities = &substTable{}
	return "_S" + m.mangleEntity(d)
}

// mangleEntity encodes d as "context identifier [type...] terminator":
// context is the whole module path joined into one dotted identifier,
// identifier is d's own unqualified name — each self-delimiting via its
// own length prefix, so no separator byte is needed between them.
func (m *Mangler) mangleEntity(d *Decl) string {
	var body []byte
	body = append(body, encodeIdentifier(m.words, d.Module.String())...)
	body = append(body, encodeIdentifier(m.words, string(d.Name))...)
	switch d.Kind {
	case DeclData:
		body = append(body, 'D')
	case DeclRecord:
		body = append(body, 'R')
	case DeclFunction:
		for _, p := range d.Params {
			body = append(body, m.mangleType(p)...)
		}
		body = append(body, 'F')
	}
	return string(body)
}

// mangleType encodes one parameter type, then checks the resulting body
// against the entity table before emitting it: an identical type seen
// earlier in this same Mangle call becomes an 'A'-prefixed back-reference
// instead of being spelled out again. NamedType does not go through
// encodeIdentifier's word table — a type reference tags itself with a
// leading 'N' so the demangler's type-list loop can tell it apart from
// whatever follows, which a bare length-prefixed identifier cannot do.
func (m *Mangler) mangleType(t Type) string {
	var body string
	switch v := t.(type) {
	case SortType:
		body = "T"
	case BoundType:
		body = "B" + strconv.Itoa(v.Index) + "_"
	case NamedType:
		name := v.Name.String()
		body = "N" + strconv.Itoa(len(name)) + "_" + name
	default:
		body = "T"
	}
	if idx, ok := m.entities.indexOf(body); ok {
		return "A" + encodeLetterIndex(idx) + "_"
	}
	m.entities.add(body)
	return body
}
