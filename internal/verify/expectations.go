// Package verify gives an external test runner a typed view of the
// diagnostic expectations embedded in a corpus file's own comments, and a
// loader for bundling a source file with its expectations in one
// golang.org/x/tools/txtar archive. It deliberately does not implement a
// matching engine of its own beyond a minimal, line-based one sufficient
// to drive "silt verify" — a fuller fixture-diffing harness is treated as
// an external collaborator.
package verify

import (
	"regexp"
	"strings"

	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/pkg/token"
)

// Expectation is one "-- expected-error{{pattern}}" annotation extracted
// from a token's trailing trivia, naming the 1-based source line it
// applies to and the substring a diagnostic's message must contain to
// satisfy it.
type Expectation struct {
	Line    int
	Pattern string
}

var expectedErrorRe = regexp.MustCompile(`expected-error\{\{(.*?)\}\}`)

// ExtractExpectations scans a token stream's trailing trivia for
// "expected-error{{...}}" line comments. Trailing trivia never crosses a
// newline (pkg/token's Trivia doc), so a match's token's own start line is
// always the comment's line — leading trivia (a comment on its own line)
// is not scanned, since attributing it to a following declaration that
// may be several lines down is ambiguous without a fuller parse.
func ExtractExpectations(toks []token.Token) []Expectation {
	var out []Expectation
	for _, tok := range toks {
		for _, piece := range tok.Trailing {
			if piece.Kind != token.TriviaLineComment {
				continue
			}
			m := expectedErrorRe.FindStringSubmatch(piece.Text)
			if m == nil {
				continue
			}
			out = append(out, Expectation{Line: tok.Span.Start.Line, Pattern: strings.TrimSpace(m[1])})
		}
	}
	return out
}

// Result is the outcome of checking one file's expectations against the
// diagnostics its front end actually produced.
type Result struct {
	Unmet    []Expectation           // expected but no matching diagnostic landed on that line
	Unlisted []diagnostic.Diagnostic // diagnostics on lines with no expectation
}

// Passed reports whether every expectation was met and no unlisted
// diagnostic appeared.
func (r Result) Passed() bool {
	return len(r.Unmet) == 0 && len(r.Unlisted) == 0
}

// Check compares expected against the diagnostics a diagnostic.Engine's
// consumer collected for one file. A diagnostic satisfies an expectation
// when its Location starts on the same line and its Message contains the
// expectation's Pattern as a substring.
func Check(expected []Expectation, diags []diagnostic.Diagnostic) Result {
	var res Result
	matched := make([]bool, len(diags))

	for _, exp := range expected {
		met := false
		for i, d := range diags {
			if matched[i] {
				continue
			}
			if d.Location.Start.Line != exp.Line {
				continue
			}
			if !strings.Contains(d.Message, exp.Pattern) {
				continue
			}
			matched[i] = true
			met = true
			break
		}
		if !met {
			res.Unmet = append(res.Unmet, exp)
		}
	}

	for i, d := range diags {
		if !matched[i] {
			res.Unlisted = append(res.Unlisted, d)
		}
	}
	return res
}
