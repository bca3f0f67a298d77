// Package compiler orchestrates a single compilation: read a source file,
// strip comments, lex, parse, generate URCL text, and write the result.
// Grounded on the teacher's Compiler/CompilerOptions/CompilationStats
// (compiler.go, flags.go, stats.go), with the gcc-invoking assemble/link
// phases removed since Hexagn's output is URCL text, never a linked binary.
package compiler

// Options mirrors the CLI surface of §6, populated by cmd/hexagn from
// cobra flags.
type Options struct {
	Input       string
	Output      string   // -o, default "out.urcl"
	Debug       bool     // -g: emit "// <source-line>" comments
	SearchPaths []string // -L, repeatable
	NoMain      bool     // --no-main / -no-main
	Verbose     bool     // -v
	ShowStats   bool     // --stat
	ShowTiming  bool     // --timing
}

// DefaultOptions returns the zero-value options with the spec's default
// output path filled in.
func DefaultOptions(input string) Options {
	return Options{
		Input:  input,
		Output: "out.urcl",
	}
}
