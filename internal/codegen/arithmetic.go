package codegen

import (
	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

var arithMnemonic = map[ast.Operator]string{
	ast.ADD:  "ADD",
	ast.SUB:  "SUB",
	ast.MULT: "MLT",
	ast.DIV:  "DIV",
	ast.MOD:  "MOD",
}

// lowerExpr lowers expr into register dest, per §4.5's expression scheme:
// a BinOp lowers its lhs into D and rhs into D+1, a call always returns
// through the fixed R2 and is moved out when dest isn't 2.
func (g *Generator) lowerExpr(expr ast.Node, dest int) {
	switch e := expr.(type) {
	case *ast.Number:
		g.emit("IMM R%d %d", dest, e.Value)
	case *ast.CharLit:
		g.emit("IMM R%d %d", dest, e.Value)
	case *ast.Identifier:
		offset, isParam, _, ok := g.resolveOffset(e.Name)
		if !ok {
			g.report.Fatalf(source.ResolveError, e.Line, 0, 0, "undeclared identifier %q", e.Name)
		}
		if isParam {
			g.emit("LLOD R%d R1 +%d", dest, offset)
		} else {
			g.emit("LLOD R%d R1 -%d", dest, offset)
		}
	case *ast.StringLit:
		label := g.interner.Register(e.Raw)
		g.emit("MOV R%d %s", dest, label)
	case *ast.FuncCall:
		g.lowerCall(e, dest)
	case *ast.BinOp:
		mnemonic, ok := arithMnemonic[e.Operator]
		if !ok {
			g.report.Fatalf(source.ParseError, e.Line, 0, 0, "comparison not valid in this position")
		}
		g.lowerExpr(e.Lhs, dest)
		g.lowerExpr(e.Rhs, dest+1)
		g.emit("%s R%d R%d R%d", mnemonic, dest, dest, dest+1)
	default:
		g.report.Fatalf(source.ResolveError, 0, 0, 0, "unhandled expression node %T", expr)
	}
}

// lowerExprTyped lowers expr into dest and, for an integer-family target,
// masks the result to its declared width per §4.5's final step. The
// masking is sign-agnostic by spec: it clears bits above the width
// regardless of signedness, which for a negative signed result discards
// its sign-extension bits above that width.
func (g *Generator) lowerExprTyped(expr ast.Node, dest int, target types.Type) {
	g.lowerExpr(expr, dest)
	if types.IsIntegerFamily(target) {
		mask := (uint64(1) << types.Width(target)) - 1
		g.emit("AND R%d R%d 0x%X", dest, dest, mask)
	}
}

// lowerCall saves the caller's in-flight R2 value around a nested call
// when dest isn't itself R2, per the design note that each call saves R2
// by pushing before and popping after.
func (g *Generator) lowerCall(call *ast.FuncCall, dest int) {
	protect := dest != 2
	if protect {
		g.emit("PSH R2")
	}
	g.generateCallRaw(call)
	if protect {
		g.emit("MOV R%d R2", dest)
		g.emit("POP R2")
	}
}
