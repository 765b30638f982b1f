// Package mangle implements Silt's bidirectional symbol-name codec: a
// deterministic postfix encoding of a qualified declaration into a
// bit-exact linker symbol, and its inverse. The two directions are
// independently testable — Demangle never consults a Mangler, and Mangle
// never consults a Demangler except for its own round-trip self-check.
//
// Every qualified name and type here goes through an "encode once,
// substitute on repeat" discipline: a spelling or type expression seen
// earlier in the same Mangle call becomes a back-reference instead of
// being spelled out again, the same space-saving substitution table
// shape real mangling schemes use for repeated qualified names.
package mangle

import "github.com/silt-lang/silt/internal/scope"

// DeclKind selects which entity terminator a Decl mangles to.
type DeclKind int

const (
	DeclData DeclKind = iota
	DeclFunction
	DeclRecord
)

// Type is the mangled grammar's type sublanguage: just enough structure
// to round-trip a declaration's parameter types through a symbol, never
// enough to serve as a real type representation — this front end never
// type-checks anything. Only a function's parameter types are mangled;
// the return type at the end of a curried signature is elided from the
// symbol entirely, the same way the Itanium C++ ABI leaves return types
// out of a mangled name since they never participate in overload
// resolution.
type Type interface{ isType() }

// SortType is the universe of types itself ("Type" / "Set"), mangled 'T'.
type SortType struct{}

// BoundType references a Pi-bound variable by the de Bruijn index
// counting outward from the signature's own binders, mangled 'B'.
type BoundType struct{ Index int }

// NamedType references a previously declared type constructor by its
// qualified name, mangled 'N'<length>'_'<name>.
type NamedType struct{ Name scope.QualifiedName }

func (SortType) isType()  {}
func (BoundType) isType() {}
func (NamedType) isType() {}

// Decl is everything the mangler needs from a checked declaration: its
// module path, its own name, which entity shape it is, and — for
// DeclFunction only — its flattened parameter types. A curried
// signature such as "A -> B -> C" flattens to Params{A, B}, dropping the
// trailing return type C.
type Decl struct {
	Module scope.QualifiedName
	Name   scope.Name
	Kind   DeclKind
	Params []Type
}
