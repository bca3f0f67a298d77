package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexagn-lang/hexagn/internal/token"
)

func TestLookupIdentifierRecognizesKeywords(t *testing.T) {
	assert.Equal(t, token.INT32, token.LookupIdentifier("int32"))
	assert.Equal(t, token.WHILE, token.LookupIdentifier("while"))
	assert.Equal(t, token.IDENTIFIER, token.LookupIdentifier("myVar"))
}

func TestIsTypeKeyword(t *testing.T) {
	assert.True(t, token.IsTypeKeyword(token.INT8))
	assert.True(t, token.IsTypeKeyword(token.VOID))
	assert.False(t, token.IsTypeKeyword(token.IDENTIFIER))
	assert.False(t, token.IsTypeKeyword(token.IF))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "WHILE", token.WHILE.String())
	assert.Equal(t, "IDENTIFIER", token.IDENTIFIER.String())
}
