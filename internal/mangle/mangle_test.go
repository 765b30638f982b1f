package mangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/internal/scope"
)

func TestMangleDataDecl(t *testing.T) {
	d := &Decl{Module: scope.QualifiedName{"Example"}, Name: "Nat", Kind: DeclData}
	out := NewMangler().Mangle(d)
	assert.Equal(t, "_S7Example3NatD", out)

	decoded, ok := Demangle(out)
	require.True(t, ok)
	assert.Equal(t, d.Module, decoded.Module)
	assert.Equal(t, d.Name, decoded.Name)
	assert.Equal(t, d.Kind, decoded.Kind)
}

// TestMangleFunctionMatchesLiteralVector is the ground-truth worked
// example: "foo : N -> N" declared in module "Example" mangles to
// "_S7Example3fooN1_NF" — identifier "Example" length 7, identifier
// "foo" length 3, one parameter type (the named type "N"), function
// signature closing with F. The return type N is not part of the
// symbol.
func TestMangleFunctionMatchesLiteralVector(t *testing.T) {
	d := &Decl{
		Module: scope.QualifiedName{"Example"},
		Name:   "foo",
		Kind:   DeclFunction,
		Params: []Type{NamedType{Name: scope.QualifiedName{"N"}}},
	}
	out := NewMangler().Mangle(d)
	assert.Equal(t, "_S7Example3fooN1_NF", out)

	decoded, ok := Demangle(out)
	require.True(t, ok)
	require.Equal(t, DeclFunction, decoded.Kind)
	require.Len(t, decoded.Params, 1)
	param, ok := decoded.Params[0].(NamedType)
	require.True(t, ok)
	assert.Equal(t, scope.QualifiedName{"N"}, param.Name)
}

func TestMangleFunctionWithRepeatedNamedType(t *testing.T) {
	d := &Decl{
		Module: scope.QualifiedName{"Example"},
		Name:   "bar",
		Kind:   DeclFunction,
		Params: []Type{
			NamedType{Name: scope.QualifiedName{"N"}},
			NamedType{Name: scope.QualifiedName{"N"}},
		},
	}
	out := NewMangler().Mangle(d)
	// The second parameter is structurally identical to the first, so
	// it is emitted as an entity back-reference ("AA_": entity table
	// index 0) rather than spelled out again.
	assert.Equal(t, "_S7Example3barN1_NAA_F", out)

	decoded, ok := Demangle(out)
	require.True(t, ok)
	require.Equal(t, DeclFunction, decoded.Kind)
	require.Len(t, decoded.Params, 2)
	for _, p := range decoded.Params {
		named, ok := p.(NamedType)
		require.True(t, ok)
		assert.Equal(t, scope.QualifiedName{"N"}, named.Name)
	}
}

func TestMangleRoundTripsForEveryDeclKind(t *testing.T) {
	decls := []*Decl{
		{Module: scope.QualifiedName{"List"}, Name: "map", Kind: DeclRecord},
		{Module: nil, Name: "Unit", Kind: DeclData},
		{
			Module: scope.QualifiedName{"A", "B"},
			Name:   "compose",
			Kind:   DeclFunction,
			Params: []Type{
				BoundType{Index: 0},
				SortType{},
				NamedType{Name: scope.QualifiedName{"A", "B"}},
			},
		},
	}
	for _, d := range decls {
		out := NewMangler().Mangle(d)
		decoded, ok := Demangle(out)
		require.True(t, ok, "demangle of %q failed", out)

		remangled := NewMangler().Mangle(decoded)
		assert.Equal(t, out, remangled)
	}
}

func TestMangleNonASCIIIdentifierUsesPunycode(t *testing.T) {
	d := &Decl{Module: scope.QualifiedName{"Café"}, Name: "naïve", Kind: DeclData}
	out := NewMangler().Mangle(d)
	require.Contains(t, out, "00")

	decoded, ok := Demangle(out)
	require.True(t, ok)
	assert.Equal(t, scope.QualifiedName{"Café"}, decoded.Module)
	assert.Equal(t, scope.Name("naïve"), decoded.Name)
}

func TestDemangleRejectsMalformedGrammar(t *testing.T) {
	cases := []string{
		"",
		"_X7Example3NatD",
		"_S7Example3Nat",      // missing terminator
		"_S99Example3NatD",    // length longer than remaining input
		"_S1N3fooAA_F",        // back-reference to entity 0 before any type was recorded
		"_S1N3fooXF",          // 'X' is not a valid type tag
	}
	for _, c := range cases {
		_, ok := Demangle(c)
		assert.False(t, ok, "expected %q to be rejected", c)
	}
}

func TestLetterIndexRoundTrips(t *testing.T) {
	for _, n := range []int{0, 1, 25, 26, 27, 51, 52, 675, 676, 701, 10000} {
		enc := encodeLetterIndex(n)
		got, next, ok := decodeLetterIndex(enc, 0)
		require.True(t, ok)
		assert.Equal(t, len(enc), next)
		assert.Equal(t, n, got)
	}
}

func TestPunycodeRoundTrips(t *testing.T) {
	cases := []string{"café", "naïve", "日本語", "Ω", "a日b本c"}
	for _, c := range cases {
		enc := punycodeEncode([]rune(c))
		dec, ok := punycodeDecode(enc)
		require.True(t, ok)
		assert.Equal(t, c, string(dec))
	}
}
