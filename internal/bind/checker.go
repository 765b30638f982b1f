package bind

import (
	"strings"

	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/mixfix"
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// Checker performs a two-pass scope check: a first pass over a
// declaration block that records every fixity declaration and every
// mixfix-notation name it introduces, so that a second pass resolving
// expression bodies can see operators declared later in the very same
// block. Every other name is declared by the second pass in source
// order, so a reference to it must follow its declaration in the block.
type Checker struct {
	engine *diagnostic.Engine
	conv   *syntax.SourceLocationConverter
	dag    *mixfix.PrecedenceDAG
}

// NewChecker builds a Checker that reports through engine, resolving
// source positions for diagnostics via conv.
func NewChecker(engine *diagnostic.Engine, conv *syntax.SourceLocationConverter) *Checker {
	return &Checker{engine: engine, conv: conv, dag: mixfix.NewPrecedenceDAG()}
}

// CheckModule scope-checks a KindSourceFile (or bare KindModuleDecl) view
// and returns its DeclaredModule. expectedPath is the module path implied
// by the file's location on disk — a module's declared name must match
// its file's path within the source root; pass nil to skip that check.
func (c *Checker) CheckModule(v *syntax.View, expectedPath scope.QualifiedName) *DeclaredModule {
	root := scope.NewRoot()

	modDecl := v
	if v.Kind() == KindSourceFile {
		kids := v.Children()
		if len(kids) > 0 {
			modDecl = kids[0]
		}
	}
	if modDecl.Kind() != KindModuleDecl {
		return c.checkBareDeclList(root, modDecl)
	}

	kids := modDecl.Children()
	if len(kids) < 4 {
		return &DeclaredModule{}
	}
	nameView, block := kids[1], kids[3]
	name := qualifiedNameOf(nameView)

	if expectedPath != nil && !pathsEqual(name, expectedPath) {
		c.emit(diagnostic.Error, modDecl,
			"module name "+name.String()+" does not match its file path "+expectedPath.String(),
		)
	}

	dm := &DeclaredModule{Name: name}
	list := blockList(block)
	c.notationPass(root, list)
	c.declPass(root, list, dm)
	return dm
}

// checkBareDeclList handles a top-level file with no enclosing "module"
// header (every declaration lives directly in the implicit root module).
func (c *Checker) checkBareDeclList(root *scope.Scope, list *syntax.View) *DeclaredModule {
	dm := &DeclaredModule{}
	c.notationPass(root, list)
	c.declPass(root, list, dm)
	return dm
}

// notationPass walks decls once, before declPass resolves any expression
// body in the same block, so that a mixfix operator or an explicit fixity
// declared later in source order is still visible to an earlier use
// within the same block. It does three things in order: (1) every
// ascribed name containing "_" (function signature, data constructor,
// record field) gets the default fixity; (2) every explicit
// KindFixityDecl then overrides its operator's default; (3) a Notation is
// registered in the checker's precedence DAG for each underscore name,
// carrying whichever fixity won.
func (c *Checker) notationPass(sc *scope.Scope, list *syntax.View) {
	names := collectUnderscoreNames(list)
	for _, name := range names {
		sc.DeclareFixity(name, scope.DefaultFixity())
	}
	for _, d := range listOf(list) {
		if d.Kind() == KindFixityDecl {
			c.declareFixity(sc, d)
		}
	}
	for _, name := range names {
		c.dag.Insert(mixfix.NewNotation(name, sc.ResolveFixity(name)))
	}
}

// collectUnderscoreNames returns every ascribed name in list (function
// signatures, data constructors, record fields) that contains a "_",
// making it eligible for mixfix notation.
func collectUnderscoreNames(list *syntax.View) []scope.Name {
	var names []scope.Name
	add := func(tok token.Token, ok bool) {
		if ok && strings.Contains(tok.Text, "_") {
			names = append(names, scope.Name(tok.Text))
		}
	}
	for _, d := range listOf(list) {
		switch d.Kind() {
		case KindTypeSig:
			kids := d.Children()
			if len(kids) > 0 {
				tok, ok := kids[0].Token()
				add(tok, ok)
			}
		case KindDataDecl:
			kids := d.Children()
			if len(kids) < 6 {
				continue
			}
			for _, con := range listOf(blockList(kids[5])) {
				ckids := con.Children()
				if len(ckids) > 0 {
					tok, ok := ckids[0].Token()
					add(tok, ok)
				}
			}
		case KindRecordDecl:
			kids := d.Children()
			if len(kids) < 6 {
				continue
			}
			for _, f := range listOf(blockList(kids[5])) {
				fkids := f.Children()
				if len(fkids) > 1 {
					tok, ok := fkids[1].Token()
					add(tok, ok)
				}
			}
		}
	}
	return names
}

func (c *Checker) declareFixity(sc *scope.Scope, d *syntax.View) {
	kids := d.Children()
	if len(kids) < 3 {
		return
	}
	fixityKw, levelTok, nameTok := kids[0], kids[1], kids[2]
	level := scope.MinLevel
	if tok, ok := levelTok.Token(); ok {
		level = parseLevel(tok.Text)
	}
	assoc := scope.NonAssoc
	if kwTok, ok := fixityKw.Token(); ok {
		switch kwTok.Kind {
		case token.KwInfixL:
			assoc = scope.LeftAssoc
		case token.KwInfixR:
			assoc = scope.RightAssoc
		}
	}
	if nameTokVal, ok := nameTok.Token(); ok {
		sc.DeclareFixity(scope.Name(nameTokVal.Text), scope.Fixity{
			Precedence: scope.Related(level),
			Assoc:      assoc,
		})
	}
}

func parseLevel(text string) int {
	n := 0
	neg := false
	for i, r := range text {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// declPass declares and scope-checks every top-level declaration in list,
// in source order, appending each to dm.Decls.
func (c *Checker) declPass(sc *scope.Scope, list *syntax.View, dm *DeclaredModule) {
	for _, d := range listOf(list) {
		switch d.Kind() {
		case KindImportDecl:
			kids := d.Children()
			if len(kids) < 2 {
				continue
			}
			mod := qualifiedNameOf(kids[1])
			alias := string(mod.Base())
			if _, dup := sc.ResolveImport(alias); dup {
				c.emit(diagnostic.Warning, d, "duplicate import of module "+mod.String())
			}
			sc.Import(alias, mod)
			dm.Imports = append(dm.Imports, Import{Module: mod, Alias: alias})
		case KindOpenDecl:
			kids := d.Children()
			if len(kids) < 2 {
				continue
			}
			mod := qualifiedNameOf(kids[1])
			sc.Open(mod)
			dm.Opens = append(dm.Opens, mod)
		case KindFixityDecl:
			kids := d.Children()
			if len(kids) < 3 {
				continue
			}
			nameTok, _ := kids[2].Token()
			assoc := scope.NonAssoc
			if kwTok, ok := kids[0].Token(); ok {
				switch kwTok.Kind {
				case token.KwInfixL:
					assoc = scope.LeftAssoc
				case token.KwInfixR:
					assoc = scope.RightAssoc
				}
			}
			levelTok, _ := kids[1].Token()
			dm.Decls = append(dm.Decls, &FixityDecl{
				Name:  scope.Name(nameTok.Text),
				Assoc: assoc,
				Level: scope.Related(parseLevel(levelTok.Text)),
			})
		case KindTypeSig:
			decl := c.checkTypeSig(sc, d)
			if decl != nil {
				dm.Decls = append(dm.Decls, decl)
			}
		case KindDataDecl:
			decl := c.checkDataDecl(sc, d)
			if decl != nil {
				dm.Decls = append(dm.Decls, decl)
			}
		case KindRecordDecl:
			decl := c.checkRecordDecl(sc, d)
			if decl != nil {
				dm.Decls = append(dm.Decls, decl)
			}
		case KindFunClause:
			c.attachClause(sc, d, dm)
		}
	}
}

// checkTypeSig declares name : expr as a ValueDecl shell; its clauses are
// attached later by attachClause as KindFunClause siblings are visited.
func (c *Checker) checkTypeSig(sc *scope.Scope, d *syntax.View) *ValueDecl {
	kids := d.Children()
	if len(kids) < 3 {
		return nil
	}
	nameTok, ok := kids[0].Token()
	if !ok {
		return nil
	}
	ty := c.checkExpr(sc, kids[2])

	info := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(nameTok.Text)}, Kind: scope.DeclValue, DeclaredAt: d.Offset()}
	c.declareChecked(sc, scope.Name(nameTok.Text), info, d)

	return &ValueDecl{Name: scope.Name(nameTok.Text), Info: info, Type: ty}
}

// attachClause finds the most recently declared ValueDecl with a matching
// name in dm.Decls and appends this clause to it. A clause with no
// preceding type signature is an error in Silt's surface grammar (every
// function clause must follow its signature within the same block) but is
// tolerated here as a signature-less ValueDecl so checking can continue.
func (c *Checker) attachClause(sc *scope.Scope, d *syntax.View, dm *DeclaredModule) {
	kids := d.Children()
	if len(kids) < 4 {
		return
	}
	nameTok, ok := kids[0].Token()
	if !ok {
		return
	}
	patterns := c.checkPatternList(sc, kids[1])
	body := c.checkExpr(sc, kids[3])
	clause := FunClause{Params: patterns, Body: body}

	for i := len(dm.Decls) - 1; i >= 0; i-- {
		if vd, ok := dm.Decls[i].(*ValueDecl); ok && vd.Name == scope.Name(nameTok.Text) {
			vd.Clauses = append(vd.Clauses, clause)
			return
		}
	}
	c.emit(diagnostic.Error, d, "clause for "+nameTok.Text+" has no preceding type signature")
	dm.Decls = append(dm.Decls, &ValueDecl{Name: scope.Name(nameTok.Text), Clauses: []FunClause{clause}})
}

func (c *Checker) checkDataDecl(sc *scope.Scope, d *syntax.View) *DataDecl {
	kids := d.Children()
	if len(kids) < 6 {
		return nil
	}
	nameTok, ok := kids[1].Token()
	if !ok {
		return nil
	}
	ty := c.checkExpr(sc, kids[3])
	info := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(nameTok.Text)}, Kind: scope.DeclDataType, DeclaredAt: d.Offset()}
	c.declareChecked(sc, scope.Name(nameTok.Text), info, d)

	dd := &DataDecl{Name: scope.Name(nameTok.Text), Info: info, Type: ty}
	for _, con := range listOf(blockList(kids[5])) {
		if con.Kind() != KindConSig {
			continue
		}
		ckids := con.Children()
		if len(ckids) < 3 {
			continue
		}
		conTok, ok := ckids[0].Token()
		if !ok {
			continue
		}
		conTy := c.checkExpr(sc, ckids[2])
		conInfo := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(conTok.Text)}, Kind: scope.DeclConstructor, DeclaredAt: con.Offset()}
		c.declareChecked(sc, scope.Name(conTok.Text), conInfo, con)
		dd.Constructors = append(dd.Constructors, ConSig{Name: scope.Name(conTok.Text), Info: conInfo, Type: conTy})
	}
	return dd
}

func (c *Checker) checkRecordDecl(sc *scope.Scope, d *syntax.View) *RecordDecl {
	kids := d.Children()
	if len(kids) < 6 {
		return nil
	}
	nameTok, ok := kids[1].Token()
	if !ok {
		return nil
	}
	ty := c.checkExpr(sc, kids[3])
	info := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(nameTok.Text)}, Kind: scope.DeclDataType, DeclaredAt: d.Offset()}
	c.declareChecked(sc, scope.Name(nameTok.Text), info, d)

	rd := &RecordDecl{Name: scope.Name(nameTok.Text), Info: info, Type: ty}
	for _, f := range listOf(blockList(kids[5])) {
		if f.Kind() != KindFieldSig {
			continue
		}
		fkids := f.Children()
		if len(fkids) < 4 {
			continue
		}
		fieldTok, ok := fkids[1].Token()
		if !ok {
			continue
		}
		fieldTy := c.checkExpr(sc, fkids[3])
		fieldInfo := scope.NameInfo{Qualified: scope.QualifiedName{scope.Name(fieldTok.Text)}, Kind: scope.DeclField, DeclaredAt: f.Offset()}
		c.declareChecked(sc, scope.Name(fieldTok.Text), fieldInfo, f)
		rd.Fields = append(rd.Fields, FieldSig{Name: scope.Name(fieldTok.Text), Info: fieldInfo, Type: fieldTy})
	}
	return rd
}

// declareChecked declares name in sc, flagging a redeclaration if name
// already has a declaration directly in sc.
func (c *Checker) declareChecked(sc *scope.Scope, name scope.Name, info scope.NameInfo, at *syntax.View) {
	if existing := sc.LookupOwn(name); len(existing) > 0 {
		c.emit(diagnostic.Error, at, "redeclaration of "+string(name)+" in the same scope")
	}
	sc.Declare(name, info)
}

func (c *Checker) emit(sev diagnostic.Severity, at *syntax.View, msg string) {
	span := token.Span{}
	if c.conv != nil {
		span = at.Span(c.conv)
	}
	c.engine.Emit(diagnostic.Diagnostic{Severity: sev, Message: msg, Location: span})
}
