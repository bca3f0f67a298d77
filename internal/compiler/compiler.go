package compiler

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/codegen"
	"github.com/hexagn-lang/hexagn/internal/importer"
	"github.com/hexagn-lang/hexagn/internal/interner"
	"github.com/hexagn-lang/hexagn/internal/lexer"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/parser"
	"github.com/hexagn-lang/hexagn/internal/source"
)

// Compiler runs the read -> strip -> lex -> parse -> generate -> write
// pipeline for one input file, against options and a logger supplied by
// the driver.
type Compiler struct {
	Options Options
	Log     *zap.SugaredLogger
	Stats   *Stats
}

// New constructs a Compiler. log may be zap.NewNop().Sugar() for a silent
// run (the default absent -v, per the teacher's quiet-by-default stance).
func New(opts Options, log *zap.SugaredLogger) *Compiler {
	return &Compiler{Options: opts, Log: log, Stats: NewStats(opts.Input)}
}

// CompileFile runs the full pipeline and writes the emitted URCL text to
// Options.Output. It returns an error only for I/O failures outside the
// front end; front-end failures are fatal diagnostics that exit the
// process directly (§7), so CompileFile never returns past one.
func (c *Compiler) CompileFile() error {
	c.Log.Debugw("reading source", "path", c.Options.Input)
	raw, err := os.ReadFile(c.Options.Input)
	if err != nil {
		return errors.Wrapf(err, "reading %q", c.Options.Input)
	}
	c.Stats.SourceBytes = len(raw)
	c.Stats.SourceLines = strings.Count(string(raw), "\n") + 1

	stripped := source.StripComments(string(raw))
	buf := source.NewBuffer(c.Options.Input, stripped)
	report := source.NewReporter(buf)

	c.Log.Debugw("tokenizing")
	tokStart := time.Now()
	lx := lexer.New(stripped, report)
	tokens := lx.Tokenize()
	c.Stats.TokenizeTime = time.Since(tokStart)
	c.Stats.TokenCount = len(tokens)

	c.Log.Debugw("parsing", "tokens", len(tokens))
	parseStart := time.Now()
	p := parser.New(tokens, report)
	prog := p.Parse()
	c.Stats.ParseTime = time.Since(parseStart)
	c.Stats.ASTNodeCount, c.Stats.FunctionCount = countNodes(prog)

	lk := linker.New()
	in := interner.New()
	imp := importer.New(lk, in, report, c.Options.SearchPaths)
	imp.Debug = c.Options.Debug

	c.Log.Debugw("generating code", "noMain", c.Options.NoMain, "debug", c.Options.Debug)
	codegenStart := time.Now()
	gen := codegen.New(lk, in, report, buf, codegen.Options{
		EmitEntryPoint: !c.Options.NoMain,
		EmitEnd:        true,
		Debug:          c.Options.Debug,
	})
	gen.SetImporter(imp)
	output := gen.Generate(prog)
	c.Stats.CodegenTime = time.Since(codegenStart)
	c.Stats.OutputBytes = len(output)
	c.Stats.OutputLines = strings.Count(output, "\n")

	c.Log.Debugw("writing output", "path", c.Options.Output, "bytes", len(output))
	if err := os.WriteFile(c.Options.Output, []byte(output), 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", c.Options.Output)
	}
	c.Stats.OutputFile = c.Options.Output

	c.Stats.Finalize()
	if c.Options.ShowStats {
		c.Stats.Print()
	} else if c.Options.ShowTiming {
		c.Stats.PrintCompact()
	}
	return nil
}

// countNodes reports a shallow AST-node count (top-level statements plus
// one per statement inside a function body) and the number of top-level
// function definitions, for -stat reporting only.
func countNodes(prog *ast.Program) (nodes, functions int) {
	for _, stmt := range prog.Statements {
		nodes++
		if fn, ok := stmt.(*ast.Function); ok {
			functions++
			nodes += len(fn.Body.Statements)
		}
	}
	return nodes, functions
}
