package codegen

import (
	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

// generateFunctionDef compiles n.Body with a fresh VarStack and the
// parameters bound as funcArgs, then registers the resulting code string
// in the linker.
func (g *Generator) generateFunctionDef(n *ast.Function) {
	funcArgs := NewVarStack()
	funcArgs.StartFrame()
	for _, p := range n.Params {
		funcArgs.Push(p.Name.Name, p.Type.Type)
	}

	nested := g.nested(funcArgs)
	nested.locals.StartFrame()
	nested.emit("PSH R1")
	nested.emit("MOV R1 SP")
	for _, stmt := range n.Body.Statements {
		nested.generateStatement(stmt)
	}
	// A function always falls through to its epilogue at body end, even
	// after an explicit return already emitted one on every exit path
	// (Open Question 2: void functions, and functions in general, default
	// to falling through rather than trapping past the body).
	nested.emitEpilogue()
	nested.locals.PopFrame()

	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		paramTypes[i] = p.Type.Type
	}

	fn := &linker.Function{
		ReturnType: n.ReturnType.Type,
		Name:       n.Name.Name,
		ParamTypes: paramTypes,
		Code:       nested.text.String(),
	}
	if err := g.linker.AddFunction(fn); err != nil {
		g.report.Fatalf(source.LinkError, n.Line, 0, 0, "%s", err)
	}
}

// generateCall compiles call as a statement, discarding its result.
func (g *Generator) generateCall(n *ast.FuncCall) {
	g.emitDebugComment(n.Line)
	g.generateCallRaw(n)
}

// generateCallRaw resolves call against the linker, pushes its arguments
// in reverse source order, and emits the CAL/cleanup pair. The resolved
// return value is left in R2 by the callee's epilogue-adjacent convention
// (the caller does nothing further to retrieve it).
func (g *Generator) generateCallRaw(call *ast.FuncCall) {
	argKinds := make([]linker.ArgKind, len(call.Args))
	for i, arg := range call.Args {
		argKinds[i] = g.inferArgKind(arg)
	}

	fn, err := g.linker.GetFunction(call.Callee.Name, argKinds)
	if err != nil {
		g.report.Fatalf(source.ResolveError, call.Line, 0, 0, "%s", err)
	}

	for i := len(call.Args) - 1; i >= 0; i-- {
		g.lowerExpr(call.Args[i], 2)
		g.emit("PSH R2")
	}

	sig := linker.Mangle(fn.Name, fn.ReturnType, fn.ParamTypes)
	g.emit("CAL .%s", sig)
	if len(call.Args) > 0 {
		g.emit("ADD SP SP %d", len(call.Args))
	}
}

// inferArgKind determines the static type of a call argument (or marks it
// as a bare numeric literal, which widens into any integer-family
// parameter under §4.3 regardless of its own placeholder type here).
func (g *Generator) inferArgKind(node ast.Node) linker.ArgKind {
	switch n := node.(type) {
	case *ast.Number:
		return linker.ArgKind{Type: types.Type{Base: types.Int32}, IsNumericLiteral: true}
	case *ast.CharLit:
		return linker.ArgKind{Type: types.Type{Base: types.Char}}
	case *ast.StringLit:
		return linker.ArgKind{Type: types.Type{Base: types.Str}}
	case *ast.Identifier:
		_, _, typ, ok := g.resolveOffset(n.Name)
		if !ok {
			g.report.Fatalf(source.ResolveError, n.Line, 0, 0, "undeclared identifier %q", n.Name)
		}
		return linker.ArgKind{Type: typ}
	case *ast.FuncCall:
		nestedArgs := make([]linker.ArgKind, len(n.Args))
		for i, a := range n.Args {
			nestedArgs[i] = g.inferArgKind(a)
		}
		fn, err := g.linker.GetFunction(n.Callee.Name, nestedArgs)
		if err != nil {
			g.report.Fatalf(source.ResolveError, n.Line, 0, 0, "%s", err)
		}
		return linker.ArgKind{Type: fn.ReturnType}
	case *ast.BinOp:
		return g.inferArgKind(n.Lhs)
	default:
		g.report.Fatalf(source.ResolveError, 0, 0, 0, "unhandled argument expression %T", node)
		panic("unreachable")
	}
}
