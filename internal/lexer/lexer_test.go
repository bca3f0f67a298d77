package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexagn-lang/hexagn/internal/lexer"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/token"
)

func tokenize(t *testing.T, text string) []token.Token {
	t.Helper()
	buf := source.NewBuffer("test.hxgn", text)
	report := source.NewReporter(buf)
	return lexer.New(text, report).Tokenize()
}

func TestTokenizeMinimalProgram(t *testing.T) {
	toks := tokenize(t, "int8 main() { return 0; }")
	require.Len(t, toks, 9)
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.INT8, token.IDENTIFIER, token.OPEN_PAREN, token.CLOSE_PAREN,
		token.OPEN_BRACE, token.RETURN, token.NUM, token.SEMICOLON, token.CLOSE_BRACE,
	}, kinds)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\nb"`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.STR, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Text)
}

func TestTokenizeComparisonOperators(t *testing.T) {
	toks := tokenize(t, "== != <= >= < >")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{token.EQ, token.NEQ, token.LTE, token.GTE, token.LT, token.GT}, kinds)
}

func TestTokenizeKeywordsVersusIdentifiers(t *testing.T) {
	toks := tokenize(t, "while foobar")
	require.Len(t, toks, 2)
	assert.Equal(t, token.WHILE, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
}
