package codegen

import (
	"strconv"

	"github.com/hexagn-lang/hexagn/internal/ast"
)

// negatedBranch maps a comparison operator to the URCL branch mnemonic
// that fires on its negation, per §4.5's while-loop table. If lowers a
// comparison condition the same way: branch past the body when the
// comparison does not hold.
var negatedBranch = map[ast.Operator]string{
	ast.EQ:  "BNE",
	ast.NEQ: "BRE",
	ast.GT:  "BLE",
	ast.GTE: "BRL",
	ast.LT:  "BGE",
	ast.LTE: "BRG",
}

// generateCondition lowers cond and emits a branch to falseLabel taken
// when cond is false. A top-level comparison BinOp branches directly off
// its operands via the negated mnemonic; any other expression is lowered
// to a truthy value in R2 and tested with BRZ.
func (g *Generator) generateCondition(cond ast.Node, falseLabel string) {
	if bin, ok := cond.(*ast.BinOp); ok {
		if mnemonic, isComparison := negatedBranch[bin.Operator]; isComparison {
			g.lowerExpr(bin.Lhs, 2)
			g.lowerExpr(bin.Rhs, 3)
			g.emit("%s %s R2 R3", mnemonic, falseLabel)
			return
		}
	}
	g.lowerExpr(cond, 2)
	g.emit("BRZ %s R2", falseLabel)
}

func (g *Generator) generateIf(n *ast.If) {
	g.emitDebugComment(n.Line)
	k := g.counters.ifCount
	g.counters.ifCount++

	endLabel := labelf(".endif", k)
	g.emit(labelf(".if", k))

	if n.ElseBody != nil {
		elseLabel := labelf(".else", k)
		g.generateCondition(n.Condition, elseLabel)
		g.generateBody(n.Body)
		g.emit("JMP %s", endLabel)
		g.emit(elseLabel)
		g.generateBody(n.ElseBody)
		g.emit(endLabel)
		return
	}

	g.generateCondition(n.Condition, endLabel)
	g.generateBody(n.Body)
	g.emit(endLabel)
}

func (g *Generator) generateWhile(n *ast.While) {
	g.emitDebugComment(n.Line)
	k := g.counters.whileCount
	g.counters.whileCount++

	startLabel := labelf(".while", k)
	endLabel := labelf(".endwhile", k)
	g.emit(startLabel)
	g.generateCondition(n.Condition, endLabel)
	g.generateBody(n.Body)
	g.emit("JMP %s", startLabel)
	g.emit(endLabel)
}

// generateBody walks an if/while body against the enclosing function's
// shared VarStack rather than starting a nested frame: StartFrame/PopFrame
// gate function-frame boundaries only (Generator.nested does that once per
// function), so a local declared inside a block keeps counting up from
// wherever the enclosing scope's offset counter already is, instead of
// colliding with an outer local at the same relative depth.
func (g *Generator) generateBody(body *ast.Program) {
	for _, stmt := range body.Statements {
		g.generateStatement(stmt)
	}
}

func labelf(prefix string, k int) string {
	return prefix + strconv.Itoa(k)
}
