package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/silt-lang/silt/pkg/syntax"
	"github.com/silt-lang/silt/pkg/token"
)

// Styles holds the lipgloss styles used to render diagnostics to a
// terminal, one per severity plus a muted style for source snippets and
// carets. Colors are resolved against the detected color profile so that
// piping to a file or a dumb terminal degrades to plain text automatically.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles builds Styles for the given output, honoring noColor (set from
// the --no-color flag or the SILT_NO_COLOR environment variable).
func NewStyles(out io.Writer, noColor bool) *Styles {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	} else {
		renderer.SetColorProfile(termenv.EnvColorProfile())
	}

	return &Styles{
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: renderer.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Note:    renderer.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		Path:    renderer.NewStyle().Bold(true),
	}
}

func (s *Styles) forSeverity(sev Severity) lipgloss.Style {
	switch sev {
	case Error:
		return s.Error
	case Warning:
		return s.Warning
	default:
		return s.Note
	}
}

// Printer renders diagnostics to an io.Writer in the conventional
// "path:line:col: severity: message" compiler format, with an optional
// source snippet and caret under the offending span.
type Printer struct {
	w      io.Writer
	styles *Styles
	conv   *syntax.SourceLocationConverter
	file   string
}

// NewPrinter builds a Printer that renders against file's source, located
// via conv, writing to w.
func NewPrinter(w io.Writer, styles *Styles, conv *syntax.SourceLocationConverter, file string) *Printer {
	return &Printer{w: w, styles: styles, conv: conv, file: file}
}

// Consumer returns a Consumer function suitable for Engine.Register.
func (p *Printer) Consumer() Consumer {
	return func(d Diagnostic) { p.Print(d) }
}

// Print renders one diagnostic: its header line, a source snippet with a
// caret under its primary span, any secondary highlights, and its notes.
func (p *Printer) Print(d Diagnostic) {
	style := p.styles.forSeverity(d.Severity)
	start := d.Location.Start

	fmt.Fprintf(p.w, "%s: %s: %s\n",
		p.styles.Path.Render(fmt.Sprintf("%s:%d:%d", p.file, start.Line, start.Column)),
		style.Render(d.Severity.String()),
		d.Message,
	)

	p.printSnippet(d.Location)

	for _, h := range d.Highlights {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Muted.Render("note:"), h.Message)
		p.printSnippet(h.Span)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Note.Render("note:"), n)
	}
}

// printSnippet prints the source line containing span's start position and
// a caret line under it, spanning to span's end column when both ends fall
// on the same line.
func (p *Printer) printSnippet(span token.Span) {
	if p.conv == nil {
		return
	}
	line := span.Start.Line
	text := p.conv.LineText(line)
	if text == "" && line != 1 {
		return
	}

	width := 1
	if span.End.Line == line && span.End.Column > span.Start.Column {
		width = span.End.Column - span.Start.Column
	}

	fmt.Fprintf(p.w, "  %s\n", text)
	fmt.Fprintf(p.w, "  %s%s\n",
		strings.Repeat(" ", maxInt(span.Start.Column-1, 0)),
		p.styles.Muted.Render(strings.Repeat("^", width)),
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
