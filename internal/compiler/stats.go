package compiler

import (
	"fmt"
	"time"
)

// Stats tracks per-phase timing and size metrics for a single compilation.
// Adapted from the teacher's CompilationStats: the Assemble/Link timing
// fields and the object/binary output metrics are dropped since Hexagn has
// no assemble-and-link phase, only a text emitter.
type Stats struct {
	StartTime    time.Time
	TokenizeTime time.Duration
	ParseTime    time.Duration
	CodegenTime  time.Duration
	TotalTime    time.Duration

	SourceFile  string
	SourceLines int
	SourceBytes int

	TokenCount    int
	ASTNodeCount  int
	FunctionCount int

	OutputFile  string
	OutputBytes int
	OutputLines int
}

// NewStats starts a stats tracker for sourceFile.
func NewStats(sourceFile string) *Stats {
	return &Stats{StartTime: time.Now(), SourceFile: sourceFile}
}

func (s *Stats) Finalize() {
	s.TotalTime = time.Since(s.StartTime)
}

// Print outputs a multi-line statistics report, the way the teacher's
// Stats.Print does.
func (s *Stats) Print() {
	fmt.Println("\n=== Compilation Statistics ===")
	fmt.Printf("Source: %s\n", s.SourceFile)
	if s.SourceLines > 0 {
		fmt.Printf("  Lines: %d\n", s.SourceLines)
	}
	if s.SourceBytes > 0 {
		fmt.Printf("  Size: %s\n", formatBytes(s.SourceBytes))
	}

	fmt.Println("\nPhases:")
	if s.TokenizeTime > 0 {
		fmt.Printf("  Tokenize: %s (%d tokens)\n", s.TokenizeTime, s.TokenCount)
	}
	if s.ParseTime > 0 {
		fmt.Printf("  Parse:    %s (%d AST nodes, %d functions)\n", s.ParseTime, s.ASTNodeCount, s.FunctionCount)
	}
	if s.CodegenTime > 0 {
		fmt.Printf("  Codegen:  %s (%d lines, %s)\n", s.CodegenTime, s.OutputLines, formatBytes(s.OutputBytes))
	}

	if s.OutputFile != "" {
		fmt.Printf("\nOutput: %s (%s)\n", s.OutputFile, formatBytes(s.OutputBytes))
	}
	fmt.Printf("\nTotal Time: %s\n", s.TotalTime)
	fmt.Println("==============================")
}

// PrintCompact outputs a single-line summary, the way --timing alone does.
func (s *Stats) PrintCompact() {
	fmt.Printf("Compiled %s in %s (%d tokens -> %d AST nodes -> %d URCL lines)\n",
		s.SourceFile, s.TotalTime, s.TokenCount, s.ASTNodeCount, s.OutputLines)
}

func formatBytes(bytes int) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
