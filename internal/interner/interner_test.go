package interner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexagn-lang/hexagn/internal/interner"
)

func TestRegisterIsIdempotentForEqualStrings(t *testing.T) {
	in := interner.New()
	a := in.Register("hi")
	b := in.Register("hi")
	assert.Equal(t, a, b)
	assert.Equal(t, ".str0", a)
}

func TestRegisterAllocatesDistinctLabelsForDistinctStrings(t *testing.T) {
	in := interner.New()
	a := in.Register("hi")
	b := in.Register("bye")
	assert.NotEqual(t, a, b)
}

func TestEmitAllProducesOneBlockPerDistinctString(t *testing.T) {
	in := interner.New()
	in.Register("hi")
	in.Register("hi")
	in.Register("bye")

	blocks := in.EmitAll()
	assert.Len(t, blocks, 2)
	assert.Equal(t, ".str0\nDW [ \"hi\" 0 ]", blocks[0])
	assert.Equal(t, ".str1\nDW [ \"bye\" 0 ]", blocks[1])
}

func TestEmitAllEscapesSpecialCharacters(t *testing.T) {
	in := interner.New()
	in.Register("a\nb\tc\"d")
	blocks := in.EmitAll()
	assert.Equal(t, `.str0
DW [ "a\nb\tc\"d" 0 ]`, blocks[0])
}
