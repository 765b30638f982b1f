package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/internal/bind"
	"github.com/silt-lang/silt/internal/mangle"
	"github.com/silt-lang/silt/internal/scope"
)

func TestMangleTypeOfNamedTypes(t *testing.T) {
	v := &bind.Var{Name: scope.QualifiedName{"Nat"}}
	got := mangleTypeOf(v)
	named, ok := got.(mangle.NamedType)
	require.True(t, ok)
	assert.Equal(t, scope.QualifiedName{"Nat"}, named.Name)

	con := &bind.Constructor{Name: scope.QualifiedName{"List", "Cons"}}
	got = mangleTypeOf(con)
	named, ok = got.(mangle.NamedType)
	require.True(t, ok)
	assert.Equal(t, scope.QualifiedName{"List", "Cons"}, named.Name)
}

func TestMangleTypeOfFallsBackToSort(t *testing.T) {
	got := mangleTypeOf(&bind.TypeExpr{})
	_, ok := got.(mangle.SortType)
	assert.True(t, ok)
}

func TestFlattenParamTypesDropsReturnType(t *testing.T) {
	// "Nat -> Nat -> Type", i.e. a two-argument function returning Type.
	sig := &bind.FunctionTy{
		Domain: &bind.Var{Name: scope.QualifiedName{"Nat"}},
		Codomain: &bind.FunctionTy{
			Domain:   &bind.Var{Name: scope.QualifiedName{"Nat"}},
			Codomain: &bind.TypeExpr{},
		},
	}

	params := flattenParamTypes(sig)
	require.Len(t, params, 2)
	for _, p := range params {
		named, ok := p.(mangle.NamedType)
		require.True(t, ok)
		assert.Equal(t, scope.QualifiedName{"Nat"}, named.Name)
	}
}

func TestFlattenParamTypesOverPiSpine(t *testing.T) {
	sig := &bind.Pi{
		Name:     "n",
		Domain:   &bind.Var{Name: scope.QualifiedName{"Nat"}},
		Codomain: &bind.TypeExpr{},
	}

	params := flattenParamTypes(sig)
	require.Len(t, params, 1)
	_, ok := params[0].(mangle.NamedType)
	assert.True(t, ok)
}

func TestFlattenParamTypesNoArgs(t *testing.T) {
	params := flattenParamTypes(&bind.TypeExpr{})
	assert.Empty(t, params)
}

func TestDeclToMangleDeclValue(t *testing.T) {
	decl := &bind.ValueDecl{Name: "id", Type: &bind.FunctionTy{Domain: &bind.Var{Name: scope.QualifiedName{"Nat"}}, Codomain: &bind.Var{Name: scope.QualifiedName{"Nat"}}}}

	mangled, ok := declToMangleDecl(scope.QualifiedName{"Example"}, decl)
	require.True(t, ok)
	assert.Equal(t, mangle.DeclFunction, mangled.Kind)
	assert.Equal(t, scope.Name("id"), mangled.Name)
	require.Len(t, mangled.Params, 1)
}

func TestDeclToMangleDeclUnknownKind(t *testing.T) {
	_, ok := declToMangleDecl(scope.QualifiedName{"Example"}, &bind.FixityDecl{Name: "plus"})
	assert.False(t, ok)
}
