package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

func leaf(kind token.Kind, text string) *syntax.Raw {
	return syntax.NewToken(token.Token{Kind: kind, Text: text, Presence: token.Present})
}

func qualifiedName(names ...string) *syntax.Raw {
	kids := make([]*syntax.Raw, len(names))
	for i, n := range names {
		kids[i] = leaf(token.Identifier, n)
	}
	return syntax.NewNode(syntax.KindQualifiedName, kids...)
}

func list(kids ...*syntax.Raw) *syntax.Raw {
	return syntax.NewNode(syntax.KindList, kids...)
}

func block(list *syntax.Raw) *syntax.Raw {
	return syntax.NewNode(syntax.KindBlock, leaf(token.LBrace, "{"), list, leaf(token.RBrace, "}"))
}

func typeExpr() *syntax.Raw {
	return syntax.NewNode(syntax.KindTypeExpr, leaf(token.KwType, "Type"))
}

func varExpr(name string) *syntax.Raw {
	return syntax.NewNode(syntax.KindVar, qualifiedName(name))
}

func typeSig(name string, ty *syntax.Raw) *syntax.Raw {
	return syntax.NewNode(syntax.KindTypeSig, leaf(token.Identifier, name), leaf(token.Colon, ":"), ty)
}

func funClause(name string, body *syntax.Raw) *syntax.Raw {
	return syntax.NewNode(syntax.KindFunClause,
		leaf(token.Identifier, name),
		list(),
		leaf(token.Equal, "="),
		body,
	)
}

func moduleFile(name string, decls *syntax.Raw) *syntax.Raw {
	mod := syntax.NewNode(syntax.KindModuleDecl,
		leaf(token.KwModule, "module"),
		qualifiedName(name),
		leaf(token.KwWhere, "where"),
		block(decls),
	)
	return syntax.NewNode(syntax.KindSourceFile, mod, syntax.NewToken(token.Token{Kind: token.EOF, Presence: token.Present}))
}

func newChecker() (*Checker, *diagnostic.Engine) {
	e := diagnostic.NewEngine()
	return NewChecker(e, nil), e
}

func TestCheckModuleSimpleValueDecl(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list(
		typeSig("x", typeExpr()),
		funClause("x", typeExpr()),
	))

	dm := c.CheckModule(syntax.Root(file), nil)

	assert.False(t, e.HasErrors())
	require.Equal(t, scope.QualifiedName{"M"}, dm.Name)
	require.Len(t, dm.Decls, 1)
	vd, ok := dm.Decls[0].(*ValueDecl)
	require.True(t, ok)
	assert.Equal(t, scope.Name("x"), vd.Name)
	require.Len(t, vd.Clauses, 1)
	_, isType := vd.Type.(*TypeExpr)
	assert.True(t, isType)
}

func TestCheckModuleUnboundIdentifier(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list(
		typeSig("y", typeExpr()),
		funClause("y", varExpr("z")),
	))

	dm := c.CheckModule(syntax.Root(file), nil)

	require.True(t, e.HasErrors())
	vd := dm.Decls[0].(*ValueDecl)
	_, isHole := vd.Clauses[0].Body.(*Hole)
	assert.True(t, isHole)
}

func TestCheckModuleRedeclarationIsError(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list(
		typeSig("x", typeExpr()),
		typeSig("x", typeExpr()),
	))

	c.CheckModule(syntax.Root(file), nil)
	assert.True(t, e.HasErrors())
}

func TestCheckModuleValueReferencesEarlierSibling(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list(
		typeSig("A", typeExpr()),
		funClause("A", typeExpr()),
		typeSig("x", varExpr("A")),
		funClause("x", varExpr("A")),
	))

	dm := c.CheckModule(syntax.Root(file), nil)
	assert.False(t, e.HasErrors())
	vd := dm.Decls[1].(*ValueDecl)
	_, isVar := vd.Type.(*Var)
	assert.True(t, isVar)
}

func TestCheckModuleDataDeclAndConstructorReference(t *testing.T) {
	c, e := newChecker()
	conSig := syntax.NewNode(syntax.KindConSig, leaf(token.Identifier, "mk"), leaf(token.Colon, ":"), typeExpr())
	dataDecl := syntax.NewNode(syntax.KindDataDecl,
		leaf(token.KwData, "data"),
		leaf(token.Identifier, "Unit"),
		leaf(token.Colon, ":"),
		typeExpr(),
		leaf(token.KwWhere, "where"),
		block(list(conSig)),
	)
	file := moduleFile("M", list(
		dataDecl,
		typeSig("u", varExpr("Unit")),
		funClause("u", varExpr("mk")),
	))

	dm := c.CheckModule(syntax.Root(file), nil)
	require.False(t, e.HasErrors())

	dd, ok := dm.Decls[0].(*DataDecl)
	require.True(t, ok)
	require.Len(t, dd.Constructors, 1)
	assert.Equal(t, scope.Name("mk"), dd.Constructors[0].Name)

	vd := dm.Decls[1].(*ValueDecl)
	_, isCon := vd.Clauses[0].Body.(*Constructor)
	assert.True(t, isCon)
}

func TestCheckModuleDuplicateImportWarns(t *testing.T) {
	c, e := newChecker()
	importDecl := func() *syntax.Raw {
		return syntax.NewNode(syntax.KindImportDecl, leaf(token.KwImport, "import"), qualifiedName("Data", "List"))
	}
	file := moduleFile("M", list(importDecl(), importDecl()))

	c.CheckModule(syntax.Root(file), nil)

	var warnings int
	for _, d := range e.All() {
		if d.Severity == diagnostic.Warning {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestCheckModulePathMismatchErrors(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list())

	c.CheckModule(syntax.Root(file), scope.QualifiedName{"Other"})
	assert.True(t, e.HasErrors())
}

func mixfixApp(pieces ...*syntax.Raw) *syntax.Raw {
	return syntax.NewNode(syntax.KindMixfixApp, list(pieces...))
}

// TestCheckModuleResolvesMixfixIfThenElse exercises checkMixfixApp through
// the full CheckModule pipeline: "if_then_else_" is declared like any other
// underscore-bearing signature, notationPass picks it up with the default
// fixity, and a later KindMixfixApp spine naming its pieces is reparsed
// into a headed application rather than left as a flat App chain.
func TestCheckModuleResolvesMixfixIfThenElse(t *testing.T) {
	c, e := newChecker()
	file := moduleFile("M", list(
		typeSig("if_then_else_", typeExpr()),
		funClause("if_then_else_", typeExpr()),
		typeSig("c", typeExpr()),
		funClause("c", typeExpr()),
		typeSig("x", typeExpr()),
		funClause("x", typeExpr()),
		typeSig("y", typeExpr()),
		funClause("y", typeExpr()),
		typeSig("result", typeExpr()),
		funClause("result", mixfixApp(
			varExpr("if"), varExpr("c"),
			varExpr("then"), varExpr("x"),
			varExpr("else"), varExpr("y"),
		)),
	))

	dm := c.CheckModule(syntax.Root(file), nil)
	require.False(t, e.HasErrors())

	var result *ValueDecl
	for _, d := range dm.Decls {
		if vd, ok := d.(*ValueDecl); ok && vd.Name == "result" {
			result = vd
		}
	}
	require.NotNil(t, result)
	require.Len(t, result.Clauses, 1)

	app, ok := result.Clauses[0].Body.(*Apply)
	require.True(t, ok)
	require.Equal(t, scope.Explicit, app.Plicity)

	inner, ok := app.Fn.(*Apply)
	require.True(t, ok)
	innerInner, ok := inner.Fn.(*Apply)
	require.True(t, ok)

	head, ok := innerInner.Fn.(*Var)
	require.True(t, ok)
	assert.Equal(t, scope.Name("if_then_else_"), head.Info.Qualified.Base())
}

func TestLambdaBindsParamsInBody(t *testing.T) {
	c, e := newChecker()
	lambdaRaw := syntax.NewNode(syntax.KindLambda,
		leaf(token.Backslash, "\\"),
		list(syntax.NewNode(syntax.KindVarPattern, leaf(token.Identifier, "p"))),
		leaf(token.Arrow, "->"),
		varExpr("p"),
	)
	file := moduleFile("M", list(
		typeSig("f", typeExpr()),
		funClause("f", lambdaRaw),
	))

	dm := c.CheckModule(syntax.Root(file), nil)
	assert.False(t, e.HasErrors())
	vd := dm.Decls[0].(*ValueDecl)
	lam, ok := vd.Clauses[0].Body.(*Lambda)
	require.True(t, ok)
	_, isVar := lam.Body.(*Var)
	assert.True(t, isVar)
}
