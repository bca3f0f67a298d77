// Package interner deduplicates string literals into stable `.str<N>`
// labels and renders their DW definitions for the end of the emitted
// URCL text.
package interner

import (
	"fmt"
	"strings"
)

// Interner maps raw string literals to monotonically numbered labels,
// preserving first-registration order for final emission.
type Interner struct {
	labels map[string]string
	order  []string
	next   int
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{labels: make(map[string]string)}
}

// Register returns raw's label, allocating a new one on first sight.
func (in *Interner) Register(raw string) string {
	if label, ok := in.labels[raw]; ok {
		return label
	}
	label := fmt.Sprintf(".str%d", in.next)
	in.next++
	in.labels[raw] = label
	in.order = append(in.order, raw)
	return label
}

// escape converts embedded newline and tab characters back into their
// backslash-n / backslash-t spellings for textual DW emission.
func escape(raw string) string {
	r := strings.ReplaceAll(raw, "\\", "\\\\")
	r = strings.ReplaceAll(r, "\n", "\\n")
	r = strings.ReplaceAll(r, "\t", "\\t")
	r = strings.ReplaceAll(r, "\"", "\\\"")
	return r
}

// EmitAll renders every registered string's `<label>\nDW [ "<escaped>" 0 ]`
// block in registration order.
func (in *Interner) EmitAll() []string {
	out := make([]string, 0, len(in.order))
	for _, raw := range in.order {
		label := in.labels[raw]
		out = append(out, fmt.Sprintf("%s\nDW [ \"%s\" 0 ]", label, escape(raw)))
	}
	return out
}
