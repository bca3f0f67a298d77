package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexagn-lang/hexagn/internal/importer"
	"github.com/hexagn-lang/hexagn/internal/interner"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

func intType() types.Type  { return types.Type{Base: types.Int32} }
func voidType() types.Type { return types.Type{Base: types.Void} }

func newImporter(t *testing.T, dir string) (*importer.Importer, *linker.Linker) {
	t.Helper()
	lk := linker.New()
	in := interner.New()
	buf := source.NewBuffer("test.hxgn", "")
	report := source.NewReporter(buf)
	return importer.New(lk, in, report, []string{dir}), lk
}

func TestImportHexagnLibraryRegistersFunctions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helper.hxgn"), []byte("int32 add(int32 a, int32 b) { return a + b; }"), 0o644))

	im, lk := newImporter(t, dir)
	im.Import("", "helper.hxgn", 1)

	fn, err := lk.GetFunction("add", []linker.ArgKind{{Type: intType()}, {Type: intType()}})
	require.NoError(t, err)
	assert.Equal(t, "add", fn.Name)
}

func TestImportDoubleImportIsIgnoredSecondTime(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helper.hxgn"), []byte("int32 add(int32 a, int32 b) { return a + b; }"), 0o644))

	im, lk := newImporter(t, dir)
	im.Import("", "helper.hxgn", 1)
	im.Import("", "helper.hxgn", 1)

	assert.Len(t, lk.Functions(), 1)
}

func TestImportUrclShimRegistersFunction(t *testing.T) {
	dir := t.TempDir()
	shim := "@FUNC greet\n@SIGNATURE void\nIMM R2 1\n@RETURN\n@END\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greet.urcl"), []byte(shim), 0o644))

	im, lk := newImporter(t, dir)
	im.Import("", "greet.urcl", 1)

	assert.True(t, lk.Has(linker.Mangle("greet", voidType(), nil)))
}
