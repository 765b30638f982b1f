// Package scope implements Silt's name binding model: qualified names,
// namespaces, fixity, and the stack-disciplined Scope used by the scope
// checker to resolve every identifier to exactly one declaration.
package scope

import "strings"

// Name is a single, unqualified identifier as written in source.
type Name string

// QualifiedName is a dot-separated path of Names, most specific last (e.g.
// "List.map" is QualifiedName{"List", "map"}).
type QualifiedName []Name

// String renders the qualified name back to its dotted source form.
func (q QualifiedName) String() string {
	parts := make([]string, len(q))
	for i, n := range q {
		parts[i] = string(n)
	}
	return strings.Join(parts, ".")
}

// Base returns the final, unqualified component of q, or "" if q is empty.
func (q QualifiedName) Base() Name {
	if len(q) == 0 {
		return ""
	}
	return q[len(q)-1]
}

// Module returns every component of q except the last, i.e. the module
// path a qualified reference was resolved through.
func (q QualifiedName) Module() QualifiedName {
	if len(q) == 0 {
		return nil
	}
	return q[:len(q)-1]
}

// ParseQualifiedName splits a dotted source identifier into its components.
func ParseQualifiedName(s string) QualifiedName {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make(QualifiedName, len(parts))
	for i, p := range parts {
		out[i] = Name(p)
	}
	return out
}

// Plicity marks whether a binder is explicit (written at every call site)
// or implicit (solved by unification unless overridden).
type Plicity int

const (
	Explicit Plicity = iota
	Implicit
)

// NameInfo is what a Scope knows about one bound name: its fully qualified
// form, its declaration site, its binding plicity, and whether it is a
// value-level, data-type, or constructor declaration (the kind a reference
// to it must be checked against at the use site).
type NameInfo struct {
	Qualified   QualifiedName
	Plicity     Plicity
	Kind        DeclKind
	DeclaredAt  int // byte offset of the declaration, for shadowing diagnostics
}

// DeclKind distinguishes the namespace a declaration inhabits. Silt has a
// single namespace for values, data types, and constructors — all occupy
// the same lookup table — but the scope checker still needs to know which
// kind of declaration produced a given NameInfo to catch malformed references
// (e.g. applying a data type as if it were a constructor).
type DeclKind int

const (
	DeclValue DeclKind = iota
	DeclDataType
	DeclConstructor
	DeclField
	DeclModule
)
