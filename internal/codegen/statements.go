package codegen

import (
	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/source"
)

// Importer is the collaborator codegen delegates an Import statement to.
// Defined here (rather than imported from package importer) so codegen
// has no dependency on importer, which itself depends on codegen to
// compile .hxgn library sources — the dependency inversion avoids an
// import cycle.
type Importer interface {
	Import(path, file string, line int)
}

// SetImporter wires the Importer collaborator used for Import statements.
func (g *Generator) SetImporter(imp Importer) {
	g.importer = imp
}

func (g *Generator) generateStatement(node ast.Node) {
	switch n := node.(type) {
	case *ast.VarDefine:
		g.generateVarDefine(n)
	case *ast.VarAssign:
		g.generateVarAssign(n)
	case *ast.FuncCall:
		g.generateCall(n)
	case *ast.If:
		g.generateIf(n)
	case *ast.While:
		g.generateWhile(n)
	case *ast.Return:
		g.generateReturn(n)
	case *ast.UrclBlock:
		g.emitDebugComment(n.Line)
		g.emitRaw(n.Text)
	case *ast.Import:
		g.emitDebugComment(n.Line)
		if g.importer == nil {
			g.report.Fatalf(source.ImportError, n.Line, 0, 0, "no importer configured")
		}
		g.importer.Import(n.Path, n.File, n.Line)
	case *ast.Function:
		g.generateFunctionDef(n)
	default:
		g.report.Fatalf(source.ResolveError, 0, 0, 0, "unhandled statement node %T", n)
	}
}

func (g *Generator) generateVarDefine(n *ast.VarDefine) {
	g.emitDebugComment(n.Line)
	g.locals.Push(n.Name.Name, n.Type.Type)
	if n.Initializer != nil {
		g.lowerExprTyped(n.Initializer, 2, n.Type.Type)
		g.emit("PSH R2")
	} else {
		g.emit("DEC SP SP")
	}
}

func (g *Generator) generateVarAssign(n *ast.VarAssign) {
	g.emitDebugComment(n.Line)
	offset, isParam, typ, ok := g.resolveOffset(n.Name.Name)
	if !ok {
		g.report.Fatalf(source.ResolveError, n.Line, 0, 0, "undeclared identifier %q", n.Name.Name)
	}
	g.lowerExprTyped(n.Initializer, 2, typ)
	if isParam {
		g.emit("LSTR R1 +%d R2", offset)
	} else {
		g.emit("LSTR R1 -%d R2", offset)
	}
}

func (g *Generator) generateReturn(n *ast.Return) {
	g.emitDebugComment(n.Line)
	if n.Value != nil {
		g.lowerExpr(n.Value, 2)
	}
	g.emitEpilogue()
}

func (g *Generator) emitEpilogue() {
	g.emit("MOV SP R1")
	g.emit("POP R1")
	g.emit("RET")
}
