package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Kind is the fatal-error taxonomy of §7: every diagnostic belongs to
// exactly one of these categories.
type Kind string

const (
	LexError     Kind = "LexError"
	ParseError   Kind = "ParseError"
	ResolveError Kind = "ResolveError"
	LinkError    Kind = "LinkError"
	ImportError  Kind = "ImportError"
)

// Diagnostic is a single fatal compiler error: a one-line message, the
// quoted source line, and a caret band under the offending span.
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Start   int
	End     int
}

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	caretStyle = color.New(color.FgRed, color.Bold)
	lineStyle  = color.New(color.FgCyan)
)

// Reporter renders and terminates the process on the first diagnostic
// raised against a given Buffer. There is no recovery and no second
// diagnostic per run, per the error-handling design.
type Reporter struct {
	buf *Buffer
}

// NewReporter binds a Reporter to the buffer whose lines it will quote.
func NewReporter(buf *Buffer) *Reporter {
	return &Reporter{buf: buf}
}

// Fatalf renders a diagnostic of the given kind and exits the process with
// status 1. It never returns.
func (r *Reporter) Fatalf(kind Kind, line, start, end int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.print(Diagnostic{Kind: kind, Message: msg, Line: line, Start: start, End: end})
	os.Exit(1)
}

func (r *Reporter) print(d Diagnostic) {
	path := r.buf.Path
	if path == "" {
		path = "<input>"
	}
	errorStyle.Fprintf(os.Stderr, "%s: %s:%d: %s\n", d.Kind, path, d.Line, d.Message)

	src := r.buf.Line(d.Line)
	if src == "" {
		return
	}
	lineStyle.Fprintf(os.Stderr, "    %s\n", src)

	underlineLen := d.End - d.Start
	if underlineLen < 1 {
		underlineLen = 1
	}
	padding := strings.Repeat(" ", 4+d.Start)
	caretStyle.Fprintf(os.Stderr, "%s%s\n", padding, strings.Repeat("^", underlineLen))
}
