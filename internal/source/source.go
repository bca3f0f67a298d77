// Package source holds the original program text and the single fatal
// diagnostic path every other package reports through.
package source

import "strings"

// Buffer stores the original source text and its per-line slices so
// diagnostics can quote the offending line without re-splitting it.
type Buffer struct {
	Path  string
	Text  string
	lines []string
}

// NewBuffer splits text into lines once, up front.
func NewBuffer(path, text string) *Buffer {
	return &Buffer{Path: path, Text: text, lines: strings.Split(text, "\n")}
}

// Line returns the 1-indexed source line, or "" if out of range.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}
