package bind

import (
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/mixfix"
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
)

// checkExpr resolves every Var within v's subtree against sc and returns
// the corresponding bound Expr. Unresolvable references are reported and
// represented as a Hole so the walk can continue: scope checking never
// aborts the whole file on one unresolved name.
func (c *Checker) checkExpr(sc *scope.Scope, v *syntax.View) Expr {
	if v == nil {
		return &Hole{}
	}
	switch v.Kind() {
	case KindVar:
		return c.checkVar(sc, v)
	case KindHole:
		return &Hole{}
	case KindTypeExpr:
		return &TypeExpr{}
	case KindMeta:
		return &Meta{}
	case KindRefl:
		return &Refl{}
	case KindParen:
		kids := v.Children()
		if len(kids) >= 2 {
			return c.checkExpr(sc, kids[1])
		}
		return &Hole{}
	case KindApp:
		kids := v.Children()
		if len(kids) < 2 {
			return &Hole{}
		}
		return &Apply{
			Fn:      c.checkExpr(sc, kids[0]),
			Arg:     c.checkExpr(sc, kids[1]),
			Plicity: scope.Explicit,
		}
	case KindMixfixApp:
		return c.checkMixfixApp(sc, v)
	case KindFunctionTy:
		kids := v.Children()
		if len(kids) < 3 {
			return &Hole{}
		}
		return &FunctionTy{
			Domain:   c.checkExpr(sc, kids[0]),
			Codomain: c.checkExpr(sc, kids[2]),
		}
	case KindEqual:
		kids := v.Children()
		if len(kids) < 3 {
			return &Hole{}
		}
		return &Equal{Lhs: c.checkExpr(sc, kids[0]), Rhs: c.checkExpr(sc, kids[2])}
	case KindPi:
		return c.checkPi(sc, v)
	case KindLambda:
		return c.checkLambda(sc, v)
	case KindLet:
		return c.checkLet(sc, v)
	default:
		return &Hole{}
	}
}

func (c *Checker) checkVar(sc *scope.Scope, v *syntax.View) Expr {
	kids := v.Children()
	if len(kids) == 0 {
		return &Hole{}
	}
	name := qualifiedNameOf(kids[0])
	if len(name) == 0 {
		return &Hole{}
	}

	infos := sc.Resolve(name.Base())
	if len(infos) == 0 {
		c.emit(diagnostic.Error, v, "unbound identifier "+name.String())
		return &Hole{}
	}
	if len(infos) > 1 {
		c.emit(diagnostic.Error, v, "ambiguous reference to "+name.String())
	}
	info := infos[0]
	if info.Kind == scope.DeclConstructor {
		return &Constructor{Name: info.Qualified, Info: info}
	}
	return &Var{Name: info.Qualified, Info: info}
}

func (c *Checker) checkPi(sc *scope.Scope, v *syntax.View) Expr {
	kids := v.Children()
	if len(kids) < 7 {
		return &Hole{}
	}
	nameTok, ok := kids[1].Token()
	if !ok {
		return &Hole{}
	}
	domain := c.checkExpr(sc, kids[3])

	var codomain Expr
	child := sc.Child()
	child.Declare(scope.Name(nameTok.Text), scope.NameInfo{
		Qualified: scope.QualifiedName{scope.Name(nameTok.Text)},
		Kind:      scope.DeclValue,
		DeclaredAt: v.Offset(),
	})
	codomain = c.checkExpr(child, kids[6])

	return &Pi{Name: scope.Name(nameTok.Text), Plicity: scope.Explicit, Domain: domain, Codomain: codomain}
}

func (c *Checker) checkLambda(sc *scope.Scope, v *syntax.View) Expr {
	kids := v.Children()
	if len(kids) < 4 {
		return &Hole{}
	}
	child := sc.Child()
	patterns := c.checkPatternList(child, kids[1])
	body := c.checkExpr(child, kids[3])
	return &Lambda{Params: patterns, Body: body}
}

func (c *Checker) checkLet(sc *scope.Scope, v *syntax.View) Expr {
	kids := v.Children()
	if len(kids) < 4 {
		return &Hole{}
	}
	child := sc.Child()
	list := blockList(kids[1])
	dm := &DeclaredModule{}
	c.notationPass(child, list)
	c.declPass(child, list, dm)
	body := c.checkExpr(child, kids[3])
	return &Let{Decls: dm.Decls, Body: body}
}

// checkPatternList checks a KindList of patterns, declaring every bound
// variable directly into sc (patterns are checked left-to-right in the
// same scope, so a name bound by an earlier pattern is already visible
// to every later lookup in sc).
func (c *Checker) checkPatternList(sc *scope.Scope, list *syntax.View) []DeclaredPattern {
	var out []DeclaredPattern
	for _, p := range listOf(list) {
		out = append(out, c.checkPattern(sc, p))
	}
	return out
}

func (c *Checker) checkPattern(sc *scope.Scope, v *syntax.View) DeclaredPattern {
	switch v.Kind() {
	case KindWildcardPattern:
		return &WildcardPattern{}
	case KindVarPattern:
		kids := v.Children()
		if len(kids) == 0 {
			return &WildcardPattern{}
		}
		tok, ok := kids[0].Token()
		if !ok {
			return &WildcardPattern{}
		}
		info := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(tok.Text)}, Kind: scope.DeclValue, DeclaredAt: v.Offset()}
		sc.Declare(scope.Name(tok.Text), info)
		return &VarPattern{Name: scope.Name(tok.Text), Info: info}
	case KindConPattern:
		kids := v.Children()
		if len(kids) < 2 {
			return &WildcardPattern{}
		}
		name := qualifiedNameOf(kids[0])
		infos := sc.Resolve(name.Base())
		var info scope.NameInfo
		if len(infos) == 0 {
			c.emit(diagnostic.Error, v, "unbound constructor "+name.String())
		} else {
			info = infos[0]
		}
		args := c.checkPatternList(sc, kids[1])
		return &ConPattern{Name: name, Info: info, Args: args}
	default:
		return &WildcardPattern{}
	}
}

// checkMixfixApp hands a flattened application spine to the mixfix
// reparser before checking it: each child that is a bare, single-segment
// identifier reference is also offered to the reparser as a candidate
// notation piece, since at this point in the tree it is ambiguous between
// an ordinary variable and an operator fragment until the reparser's
// grammar decides.
func (c *Checker) checkMixfixApp(sc *scope.Scope, v *syntax.View) Expr {
	var atoms []mixfix.Atom
	var segments *syntax.View
	if kids := v.Children(); len(kids) > 0 {
		segments = kids[0]
	}
	for _, k := range listOf(segments) {
		if text, ok := bareIdentifierText(k); ok {
			atoms = append(atoms, mixfix.NewIdentifierAtom(k, text))
			continue
		}
		atoms = append(atoms, mixfix.NewOperandAtom(k))
	}
	if len(atoms) == 0 {
		return &Hole{}
	}
	raw := mixfix.Reparse(c.dag, atoms, c.engine, v)
	if raw == nil {
		return &Hole{}
	}
	return c.checkExpr(sc, syntax.Root(raw))
}

// bareIdentifierText reports the spelling of v when it is a KindVar
// wrapping a single, unqualified name — the only shape that can also be a
// notation's literal piece.
func bareIdentifierText(v *syntax.View) (string, bool) {
	if v.Kind() != KindVar {
		return "", false
	}
	kids := v.Children()
	if len(kids) != 1 || kids[0].Kind() != KindQualifiedName {
		return "", false
	}
	qkids := kids[0].Children()
	if len(qkids) != 1 {
		return "", false
	}
	tok, ok := qkids[0].Token()
	if !ok {
		return "", false
	}
	return tok.Text, true
}
