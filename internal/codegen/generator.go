// Package codegen walks a parsed ast.Program and emits URCL text using the
// cdecl-style stack frame discipline of §4.5. It invokes the linker on
// function definitions and calls, and the interner on string literals.
package codegen

import (
	"fmt"
	"strings"

	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/interner"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

// counters are the process-wide label/register bookkeeping shared by every
// Generator in a single compilation: ifCount and whileCount for label
// uniqueness. Carried as an explicit shared value rather than package
// globals, per the design notes.
type counters struct {
	ifCount    int
	whileCount int
}

// Generator is a recursive walker over a Program. It owns a VarStack of
// locals and is parameterized by the enclosing function's parameters
// (funcArgs), whether to prepend the program header (emitEntryPoint), and
// whether to append the function-body tail and interned strings
// (emitEnd).
type Generator struct {
	linker   *linker.Linker
	interner *interner.Interner
	counters *counters
	report   *source.Reporter
	buf      *source.Buffer

	locals   *VarStack
	funcArgs *VarStack // read-only; nil outside a function body
	importer Importer

	emitEntryPoint bool
	emitEnd        bool
	debug          bool // -g: emit "// <source-line>" comments

	text strings.Builder
}

// Options configures a top-level Generator.
type Options struct {
	EmitEntryPoint bool
	EmitEnd        bool
	Debug          bool
}

// New constructs the top-level Generator for a compilation unit.
func New(l *linker.Linker, in *interner.Interner, report *source.Reporter, buf *source.Buffer, opts Options) *Generator {
	return &Generator{
		linker:         l,
		interner:       in,
		counters:       &counters{},
		report:         report,
		buf:            buf,
		locals:         NewVarStack(),
		emitEntryPoint: opts.EmitEntryPoint,
		emitEnd:        opts.EmitEnd,
		debug:          opts.Debug,
	}
}

// nested returns a Generator for a function body, sharing the linker,
// interner, label counters, and reporter of g but with a fresh VarStack
// and the function's parameters bound as funcArgs.
func (g *Generator) nested(funcArgs *VarStack) *Generator {
	return &Generator{
		linker:   g.linker,
		interner: g.interner,
		counters: g.counters,
		report:   g.report,
		buf:      g.buf,
		locals:   NewVarStack(),
		funcArgs: funcArgs,
		debug:    g.debug,
		importer: g.importer,
	}
}

func (g *Generator) emit(format string, args ...any) {
	fmt.Fprintf(&g.text, format+"\n", args...)
}

func (g *Generator) emitRaw(s string) {
	g.text.WriteString(s)
	g.text.WriteByte('\n')
}

func (g *Generator) emitDebugComment(line int) {
	if !g.debug || g.buf == nil {
		return
	}
	g.emit("// %s", g.buf.Line(line))
}

// Generate walks prog and returns the final emitted URCL text.
func (g *Generator) Generate(prog *ast.Program) string {
	if g.emitEntryPoint {
		g.emit("BITS == 32")
		g.emit("MINHEAP 4096")
		g.emit("MINSTACK 1024")
		mainSig := linker.MainSignature()
		g.emit("CAL .%s", mainSig)
		g.emit("HLT")
	}

	g.locals.StartFrame()
	for _, stmt := range prog.Statements {
		g.generateStatement(stmt)
	}
	g.locals.PopFrame()

	if g.emitEntryPoint {
		mainSig := linker.MainSignature()
		if !g.linker.Has(mainSig) {
			g.report.Fatalf(source.LinkError, 0, 0, 0, "no parameterless int8 main() defined")
		}
	}

	if g.emitEnd {
		for _, f := range g.linker.Functions() {
			sig := linker.Mangle(f.Name, f.ReturnType, f.ParamTypes)
			g.emit(".%s", sig)
			g.emitRaw(f.Code)
		}
		for _, block := range g.interner.EmitAll() {
			g.emitRaw(block)
		}
	}

	return g.text.String()
}

// resolveOffset reports the stack offset and declared type of name,
// searching locals first and then the enclosing function's parameters.
// Locals are addressed at -offset from R1; parameters at +offset.
func (g *Generator) resolveOffset(name string) (offset int, isParam bool, typ types.Type, ok bool) {
	if off, found := g.locals.GetOffset(name); found {
		t, _ := g.locals.GetType(name)
		return off, false, t, true
	}
	if g.funcArgs != nil {
		if off, found := g.funcArgs.GetOffset(name); found {
			t, _ := g.funcArgs.GetType(name)
			return off, true, t, true
		}
	}
	return 0, false, types.Type{}, false
}
