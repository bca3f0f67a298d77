package linker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/types"
)

func i8() types.Type  { return types.Type{Base: types.Int8} }
func i32() types.Type { return types.Type{Base: types.Int32} }
func u8() types.Type  { return types.Type{Base: types.Uint8} }
func i16() types.Type { return types.Type{Base: types.Int16} }

func TestMangleDeterministicAndInjective(t *testing.T) {
	a := linker.Mangle("main", i8(), nil)
	b := linker.Mangle("main", i8(), nil)
	assert.Equal(t, a, b)
	assert.Equal(t, "_Hx4maini8", a)

	c := linker.Mangle("foo", i32(), []types.Type{i8()})
	d := linker.Mangle("foo", i32(), []types.Type{i16()})
	assert.NotEqual(t, c, d)
}

func TestOverloadResolutionPicksFirstRegisteredCompatible(t *testing.T) {
	lk := linker.New()
	require.NoError(t, lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i32(), ParamTypes: []types.Type{i32()}}))
	require.NoError(t, lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i32(), ParamTypes: []types.Type{u8()}}))

	fn, err := lk.GetFunction("foo", []linker.ArgKind{{Type: i32(), IsNumericLiteral: true}})
	require.NoError(t, err)
	assert.Equal(t, linker.Mangle("foo", i32(), []types.Type{i32()}), linker.Mangle(fn.Name, fn.ReturnType, fn.ParamTypes))
}

func TestOverloadResolutionNoCompatibleIsResolveError(t *testing.T) {
	lk := linker.New()
	strType := types.Type{Base: types.Str}
	require.NoError(t, lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i32(), ParamTypes: []types.Type{strType}}))

	_, err := lk.GetFunction("foo", []linker.ArgKind{{Type: i32(), IsNumericLiteral: true}})
	assert.Error(t, err)
}

func TestDuplicateSignatureIsRejected(t *testing.T) {
	lk := linker.New()
	require.NoError(t, lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i8()}))
	err := lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i8()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate function")
}

func TestReturnTypeConflictIsRejected(t *testing.T) {
	lk := linker.New()
	require.NoError(t, lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i8(), ParamTypes: []types.Type{i32()}}))
	err := lk.AddFunction(&linker.Function{Name: "foo", ReturnType: i16(), ParamTypes: []types.Type{i32()}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different return types")
}

func TestMainSignatureMatchesMinimalProgramScenario(t *testing.T) {
	assert.Equal(t, "_Hx4maini8", linker.MainSignature())
}
