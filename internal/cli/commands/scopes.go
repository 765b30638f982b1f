package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/bind"
	"github.com/silt-lang/silt/internal/cli/clictx"
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/driver"
	"github.com/silt-lang/silt/pkg/syntax"
)

// NewScopesCommand builds "silt scopes <file>": parses and scope-checks a
// file, then renders its declared names in a jedib0t/go-pretty/v6/table.
func NewScopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes <file>",
		Short: "Scope-check a file and dump its declared names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			raw, conv, _ := driver.Parse(args[0], src)

			styles := clictx.Styles(cmd.Context())
			engine := diagnostic.NewEngineContext(cmd.Context())
			printer := diagnostic.NewPrinter(cmd.ErrOrStderr(), styles, conv, args[0])
			engine.Register(printer.Consumer())

			checker := bind.NewChecker(engine, conv)
			dm := checker.CheckModule(syntax.Root(raw), nil)

			writeScopeTable(cmd.OutOrStdout(), dm)

			if engine.HasErrors() {
				return fmt.Errorf("scope checking failed")
			}
			return nil
		},
	}
}

func writeScopeTable(w io.Writer, dm *bind.DeclaredModule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Kind"})
	for _, d := range dm.Decls {
		switch d := d.(type) {
		case *bind.ValueDecl:
			t.AppendRow(table.Row{string(d.Name), "value"})
		case *bind.DataDecl:
			t.AppendRow(table.Row{string(d.Name), "data"})
			for _, con := range d.Constructors {
				t.AppendRow(table.Row{string(con.Name), "constructor"})
			}
		case *bind.RecordDecl:
			t.AppendRow(table.Row{string(d.Name), "record"})
			for _, field := range d.Fields {
				t.AppendRow(table.Row{string(field.Name), "field"})
			}
		case *bind.FixityDecl:
			t.AppendRow(table.Row{string(d.Name), "fixity"})
		}
	}
	t.Render()
}
