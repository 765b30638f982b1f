package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/bind"
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/driver"
	"github.com/silt-lang/silt/internal/verify"
	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// NewVerifyCommand builds "silt verify parse|scopes <dir>": runs every
// golang.org/x/tools/txtar fixture in dir through the requested stage and
// checks its "-- expected-error{{...}}" annotations against what actually
// came out.
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify {parse|scopes} <dir>",
		Short: "Check a corpus of fixtures against their expected-error annotations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, dir := args[0], args[1]
			if stage != "parse" && stage != "scopes" {
				return fmt.Errorf("unknown verify stage %q (want parse or scopes)", stage)
			}

			cases, err := verify.LoadCorpus(dir)
			if err != nil {
				return err
			}

			failed := 0
			for _, c := range cases {
				for name, src := range c.Sources {
					res := verifyOneSource(stage, name, src)
					if res.Passed() {
						fmt.Fprintf(cmd.OutOrStdout(), "ok   %s/%s\n", c.Name, name)
						continue
					}
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s/%s\n", c.Name, name)
					for _, u := range res.Unmet {
						fmt.Fprintf(cmd.OutOrStdout(), "  unmet: line %d: %s\n", u.Line, u.Pattern)
					}
					for _, d := range res.Unlisted {
						fmt.Fprintf(cmd.OutOrStdout(), "  unlisted: line %d: %s\n", d.Location.Start.Line, d.Message)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d fixture(s) failed", failed)
			}
			return nil
		},
	}
	return cmd
}

func verifyOneSource(stage, name, src string) verify.Result {
	toks := driver.Shine(name, src)
	expectations := verify.ExtractExpectations(toks)

	raw, conv, parseErrs := driver.Parse(name, src)

	var diags []diagnostic.Diagnostic
	for _, pe := range parseErrs {
		diags = append(diags, diagnostic.Diagnostic{
			Severity: diagnostic.Error,
			Message:  pe.Message,
			Location: token.Span{Start: conv.Position(pe.Offset)},
		})
	}

	if stage == "scopes" {
		engine := diagnostic.NewEngine()
		engine.Register(func(d diagnostic.Diagnostic) { diags = append(diags, d) })
		checker := bind.NewChecker(engine, conv)
		checker.CheckModule(syntax.Root(raw), nil)
	}

	return verify.Check(expectations, diags)
}
