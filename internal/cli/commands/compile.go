package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/silt-lang/silt/internal/bind"
	"github.com/silt-lang/silt/internal/cli/clictx"
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/driver"
	"github.com/silt-lang/silt/internal/mangle"
	"github.com/silt-lang/silt/internal/scope"
	"github.com/silt-lang/silt/pkg/syntax"
)

// NewCompileCommand builds "silt compile <file>...": parses, scope-checks,
// and mangles every declaration in each file. Multiple files are processed
// concurrently, one goroutine per file via golang.org/x/sync/errgroup,
// each owning its own diagnostic.Engine/mangle.Mangler with zero shared
// mutable state.
func NewCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>...",
		Short: "Scope-check and mangle every declaration in one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]fileCompileResult, len(args))

			var g errgroup.Group
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					results[i] = compileOneFile(path)
					return nil
				})
			}
			_ = g.Wait()

			styles := clictx.Styles(cmd.Context())
			failed := false
			for _, r := range results {
				if r.hasErrors {
					failed = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", styles.Path.Render(r.file))
				for _, sym := range r.mangled {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", sym)
				}
			}
			if failed {
				return fmt.Errorf("compilation failed")
			}
			return nil
		},
	}
}

type fileCompileResult struct {
	file      string
	mangled   []string
	hasErrors bool
}

func compileOneFile(path string) fileCompileResult {
	src, err := readSource(path)
	if err != nil {
		return fileCompileResult{file: path, mangled: []string{err.Error()}, hasErrors: true}
	}

	raw, conv, parseErrs := driver.Parse(path, src)
	engine := diagnostic.NewEngine()
	checker := bind.NewChecker(engine, conv)
	dm := checker.CheckModule(syntax.Root(raw), nil)

	res := fileCompileResult{file: path, hasErrors: engine.HasErrors() || len(parseErrs) > 0}

	mangler := mangle.NewMangler()
	for _, d := range dm.Decls {
		decl, ok := declToMangleDecl(dm.Name, d)
		if !ok {
			continue
		}
		res.mangled = append(res.mangled, mangler.Mangle(decl))
	}
	return res
}

// declToMangleDecl converts one checked declaration into the shape
// mangle.Mangler consumes: a module path, the declaration's own name,
// which entity kind it is, and (for values) its flattened parameter types.
func declToMangleDecl(module scope.QualifiedName, d bind.Decl) (*mangle.Decl, bool) {
	switch d := d.(type) {
	case *bind.ValueDecl:
		return &mangle.Decl{Module: module, Name: d.Name, Kind: mangle.DeclFunction, Params: flattenParamTypes(d.Type)}, true
	case *bind.DataDecl:
		return &mangle.Decl{Module: module, Name: d.Name, Kind: mangle.DeclData, Params: flattenParamTypes(d.Type)}, true
	case *bind.RecordDecl:
		return &mangle.Decl{Module: module, Name: d.Name, Kind: mangle.DeclRecord, Params: flattenParamTypes(d.Type)}, true
	default:
		return nil, false
	}
}

// flattenParamTypes walks a curried signature's FunctionTy/Pi spine,
// dropping the trailing return type, the same flattening mangle.Decl.Params
// documents. Bound-variable de Bruijn indices are not tracked by this
// front end's bind pass, so a Pi's domain is mangled by its resolved name
// (NamedType) or as the universe (SortType) rather than as a BoundType —
// a known limitation of driving the mangler straight from bind's AST
// instead of a fuller dependent-type checker (see DESIGN.md).
func flattenParamTypes(e bind.Expr) []mangle.Type {
	var params []mangle.Type
	cur := e
	for {
		switch t := cur.(type) {
		case *bind.FunctionTy:
			params = append(params, mangleTypeOf(t.Domain))
			cur = t.Codomain
		case *bind.Pi:
			params = append(params, mangleTypeOf(t.Domain))
			cur = t.Codomain
		default:
			return params
		}
	}
}

func mangleTypeOf(e bind.Expr) mangle.Type {
	switch t := e.(type) {
	case *bind.Var:
		return mangle.NamedType{Name: t.Name}
	case *bind.Constructor:
		return mangle.NamedType{Name: t.Name}
	default:
		return mangle.SortType{}
	}
}
