package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexagn-lang/hexagn/internal/codegen"
	"github.com/hexagn-lang/hexagn/internal/interner"
	"github.com/hexagn-lang/hexagn/internal/lexer"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/parser"
	"github.com/hexagn-lang/hexagn/internal/source"
)

func generate(t *testing.T, text string, opts codegen.Options) string {
	t.Helper()
	buf := source.NewBuffer("test.hxgn", text)
	report := source.NewReporter(buf)
	toks := lexer.New(text, report).Tokenize()
	prog := parser.New(toks, report).Parse()

	lk := linker.New()
	in := interner.New()
	gen := codegen.New(lk, in, report, buf, opts)
	return gen.Generate(prog)
}

func TestGenerateMinimalProgram(t *testing.T) {
	out := generate(t, "int8 main() { return 0; }", codegen.Options{EmitEntryPoint: true, EmitEnd: true})
	assert.Contains(t, out, "CAL ._Hx4maini8")
	assert.Contains(t, out, "._Hx4maini8")
	assert.Contains(t, out, "HLT")
}

func TestGenerateWhileCountdown(t *testing.T) {
	out := generate(t, "int32 i = 3; while (i > 0) { i = i - 1; }", codegen.Options{})
	assert.Contains(t, out, ".while0")
	assert.Contains(t, out, "BLE .endwhile0 R2 R3")
	assert.Contains(t, out, "LSTR R1 -1 R2")
	assert.Contains(t, out, "JMP .while0")
	assert.Contains(t, out, ".endwhile0")
}

func TestGenerateNestedBlockLocalDoesNotCollideWithOuterLocal(t *testing.T) {
	out := generate(t, `int32 main() { int32 a = 1; if (a == 1) { int32 b = 2; b = b + 1; } return a; }`, codegen.Options{EmitEnd: true})
	// a is the function's first local at offset 1; b, declared inside the
	// if body, must continue the same running counter to offset 2 rather
	// than restarting at 1 and aliasing a's stack slot.
	assert.Contains(t, out, "LSTR R1 -2 R2")
	assert.NotContains(t, out, "LSTR R1 -1 R2")
	assert.Contains(t, out, "LLOD R2 R1 -1")
}

func TestGenerateStringInterningDeduplicates(t *testing.T) {
	out := generate(t, `string a = "hi"; string b = "hi";`, codegen.Options{EmitEnd: true})
	assert.Equal(t, 1, strings.Count(out, "DW ["))
	assert.Contains(t, out, `DW [ "hi" 0 ]`)
}

func TestGenerateIfElseBranchesAreMutuallyExclusive(t *testing.T) {
	out := generate(t, `
		int32 x = 1;
		if (x == 1) {
			x = 2;
		} else {
			x = 3;
		}
	`, codegen.Options{})

	ifIdx := strings.Index(out, ".if0")
	elseIdx := strings.Index(out, "\n.else0\n")
	jmpIdx := strings.Index(out, "JMP .endif0")
	endIdx := strings.Index(out, "\n.endif0\n")

	if ifIdx < 0 || elseIdx < 0 || jmpIdx < 0 || endIdx < 0 {
		t.Fatalf("expected .if0/.else0/JMP .endif0/.endif0 all present in:\n%s", out)
	}
	assert.True(t, jmpIdx < elseIdx, "the true branch must jump past the else body")
	assert.True(t, elseIdx < endIdx)
}
