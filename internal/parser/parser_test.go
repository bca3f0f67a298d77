package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexagn-lang/hexagn/internal/ast"
	"github.com/hexagn-lang/hexagn/internal/lexer"
	"github.com/hexagn-lang/hexagn/internal/parser"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

func parse(t *testing.T, text string) *ast.Program {
	t.Helper()
	buf := source.NewBuffer("test.hxgn", text)
	report := source.NewReporter(buf)
	toks := lexer.New(text, report).Tokenize()
	return parser.New(toks, report).Parse()
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parse(t, "int8 main() { return 0; }")
	require.Len(t, prog.Statements, 1)

	fn, ok := prog.Statements[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name.Name)
	assert.Equal(t, types.Int8, fn.ReturnType.Type.Base)
	assert.Empty(t, fn.Params)

	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	num, ok := ret.Value.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, uint64(0), num.Value)
}

func TestParseWhileCountdown(t *testing.T) {
	prog := parse(t, "int32 i = 3; while (i > 0) { i = i - 1; }")
	require.Len(t, prog.Statements, 2)

	def, ok := prog.Statements[0].(*ast.VarDefine)
	require.True(t, ok)
	assert.Equal(t, "i", def.Name.Name)

	loop, ok := prog.Statements[1].(*ast.While)
	require.True(t, ok)
	cond, ok := loop.Condition.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.GT, cond.Operator)

	require.Len(t, loop.Body.Statements, 1)
	assign, ok := loop.Body.Statements[0].(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, "i", assign.Name.Name)
}

func TestParseElseIfChain(t *testing.T) {
	prog := parse(t, `
		int8 main() {
			int32 x = 1;
			if (x == 1) {
				x = 2;
			} else if (x == 2) {
				x = 3;
			} else {
				x = 4;
			}
			return 0;
		}
	`)
	fn := prog.Statements[0].(*ast.Function)
	ifNode := fn.Body.Statements[1].(*ast.If)
	require.NotNil(t, ifNode.ElseBody)

	nestedIf, ok := ifNode.ElseBody.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, nestedIf.ElseBody)
	assign := nestedIf.ElseBody.Statements[0].(*ast.VarAssign)
	assert.Equal(t, "x", assign.Name.Name)
}

func TestParseModuloInTerm(t *testing.T) {
	prog := parse(t, "int32 x = 5 % 2;")
	def := prog.Statements[0].(*ast.VarDefine)
	bin, ok := def.Initializer.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.MOD, bin.Operator)
}
