// Package bind implements Silt's name resolution pass: it walks a parsed
// module's syntax tree twice and produces a DeclaredModule whose every
// identifier has been resolved to exactly one declaration, or has been
// flagged with a diagnostic.
package bind

import (
	"github.com/silt-lang/silt/internal/scope"
)

// DeclaredModule is the bound form of one source file's module: its own
// qualified name, the modules it opens and imports, and its declarations,
// every one of which has already been scope-checked.
type DeclaredModule struct {
	Name    scope.QualifiedName
	Opens   []scope.QualifiedName
	Imports []Import
	Decls   []Decl
}

// Import records one "import M" declaration, plus the alias it is
// reachable under (its last path component, unless the import syntax
// later grows an "as" clause).
type Import struct {
	Module scope.QualifiedName
	Alias  string
}

// Decl is the sum type of top-level declarations.
type Decl interface{ declNode() }

// ValueDecl binds a name to a type signature and one or more function
// clauses (pattern-matching equations), e.g. "id : A -> A" / "id x = x".
type ValueDecl struct {
	Name    scope.Name
	Info    scope.NameInfo
	Type    Expr
	Clauses []FunClause
}

func (*ValueDecl) declNode() {}

// FunClause is one pattern-matching equation of a ValueDecl.
type FunClause struct {
	Params []DeclaredPattern
	Body   Expr
}

// DataDecl declares an inductive type and its constructors.
type DataDecl struct {
	Name         scope.Name
	Info         scope.NameInfo
	Type         Expr
	Constructors []ConSig
}

func (*DataDecl) declNode() {}

// ConSig is one constructor's name and type signature within a DataDecl.
type ConSig struct {
	Name scope.Name
	Info scope.NameInfo
	Type Expr
}

// RecordDecl declares a record type and its fields.
type RecordDecl struct {
	Name   scope.Name
	Info   scope.NameInfo
	Type   Expr
	Fields []FieldSig
}

func (*RecordDecl) declNode() {}

// FieldSig is one field's name and type signature within a RecordDecl.
type FieldSig struct {
	Name scope.Name
	Info scope.NameInfo
	Type Expr
}

// FixityDecl declares an operator's precedence and associativity.
type FixityDecl struct {
	Name  scope.Name
	Assoc scope.Associativity
	Level scope.PrecedenceLevel
}

func (*FixityDecl) declNode() {}

// Expr is the sum type of bound expressions: apply, pi, function,
// lambda, constructor, type, meta, equal, refl, and let.
type Expr interface{ exprNode() }

// Var is a resolved reference to a value-level binding.
type Var struct {
	Name scope.QualifiedName
	Info scope.NameInfo
}

func (*Var) exprNode() {}

// Hole is an unresolved "_" in expression position, standing for a value
// to be solved by unification (out of this front end's scope — see
// Non-goals — but still a distinct bound-AST node so later stages have
// somewhere to attach a metavariable).
type Hole struct{}

func (*Hole) exprNode() {}

// Apply is a single-argument application; application chains are built
// left-associatively (fn applied to arg1, result applied to arg2, ...)
// before mixfix reparsing and re-shaped by it afterward.
type Apply struct {
	Fn      Expr
	Arg     Expr
	Plicity scope.Plicity
}

func (*Apply) exprNode() {}

// Pi is a dependent function type: "(x : A) -> B" or "forall x -> B".
type Pi struct {
	Name     scope.Name
	Plicity  scope.Plicity
	Domain   Expr
	Codomain Expr
}

func (*Pi) exprNode() {}

// FunctionTy is a non-dependent function type "A -> B", i.e. Pi with no
// bound name in its codomain.
type FunctionTy struct {
	Domain   Expr
	Codomain Expr
}

func (*FunctionTy) exprNode() {}

// Lambda binds zero or more patterns over a body expression.
type Lambda struct {
	Params []DeclaredPattern
	Body   Expr
}

func (*Lambda) exprNode() {}

// Constructor is a resolved reference to a data constructor.
type Constructor struct {
	Name scope.QualifiedName
	Info scope.NameInfo
}

func (*Constructor) exprNode() {}

// TypeExpr is the literal "Type" sort.
type TypeExpr struct{}

func (*TypeExpr) exprNode() {}

// Meta is an explicit "?" metavariable placeholder.
type Meta struct{}

func (*Meta) exprNode() {}

// Equal is a propositional equality type "a = b".
type Equal struct {
	Lhs, Rhs Expr
}

func (*Equal) exprNode() {}

// Refl is the reflexivity proof "refl".
type Refl struct{}

func (*Refl) exprNode() {}

// Let binds a block of local declarations over a body expression.
type Let struct {
	Decls []Decl
	Body  Expr
}

func (*Let) exprNode() {}

// DeclaredPattern is the sum type of bound patterns.
type DeclaredPattern interface{ patternNode() }

// VarPattern binds a fresh name.
type VarPattern struct {
	Name scope.Name
	Info scope.NameInfo
}

func (*VarPattern) patternNode() {}

// WildcardPattern discards its matched value ("_").
type WildcardPattern struct{}

func (*WildcardPattern) patternNode() {}

// ConPattern matches a constructor applied to sub-patterns.
type ConPattern struct {
	Name scope.QualifiedName
	Info scope.NameInfo
	Args []DeclaredPattern
}

func (*ConPattern) patternNode() {}
