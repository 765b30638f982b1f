package syntax

import (
	"sort"
	"unicode/utf8"

	"github.com/silt-lang/silt/pkg/token"
)

// SourceLocationConverter translates byte offsets into a source file into
// (line, column) positions in O(log n) time after an O(n) one-time scan,
// rather than re-scanning from the start of the file on every query.
type SourceLocationConverter struct {
	file       string
	text       string
	lineStarts []int // byte offset of the first byte of each line; lineStarts[0] == 0
}

// NewSourceLocationConverter scans text once, recording the byte offset of
// the start of every line (the byte immediately after each '\n'; a
// "\r\n" pair is still a single line break, consistent with the lexer's
// trivia counting).
func NewSourceLocationConverter(file, text string) *SourceLocationConverter {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &SourceLocationConverter{file: file, text: text, lineStarts: starts}
}

// Position converts a byte offset into a (line, column) position. Column is
// counted in runes from the start of the line, 1-based, matching the
// lexer's own column accounting. Offsets past the end of the file clamp to
// the file's final position.
func (c *SourceLocationConverter) Position(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.text) {
		offset = len(c.text)
	}
	// sort.Search finds the first lineStarts[i] > offset; the line
	// containing offset is the one before it.
	i := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > offset
	})
	lineIdx := i - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	lineStart := c.lineStarts[lineIdx]
	col := utf8.RuneCountInString(c.text[lineStart:offset]) + 1
	return token.Position{Line: lineIdx + 1, Column: col, Offset: offset}
}

// LineText returns the full text of the given 1-based line number,
// excluding its terminating newline, for rendering diagnostic source
// snippets. Returns "" for an out-of-range line.
func (c *SourceLocationConverter) LineText(line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(c.lineStarts) {
		return ""
	}
	start := c.lineStarts[idx]
	end := len(c.text)
	if idx+1 < len(c.lineStarts) {
		end = c.lineStarts[idx+1]
	}
	for end > start && (c.text[end-1] == '\n' || c.text[end-1] == '\r') {
		end--
	}
	return c.text[start:end]
}

// File returns the file name this converter was built for.
func (c *SourceLocationConverter) File() string { return c.file }
