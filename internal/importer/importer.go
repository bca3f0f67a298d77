// Package importer resolves a dotted/colon-separated library reference
// against a search path and feeds the resolved file(s) to either the full
// Hexagn front end (.hxgn) or the URCL directive shim parser (.urcl),
// registering the results in the shared linker. Grounded on the teacher's
// ImportContext/ProcessImport (stdlib.go), generalized from a built-in
// module table to filesystem search.
package importer

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexagn-lang/hexagn/internal/codegen"
	"github.com/hexagn-lang/hexagn/internal/interner"
	"github.com/hexagn-lang/hexagn/internal/lexer"
	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/parser"
	"github.com/hexagn-lang/hexagn/internal/source"
)

// Importer resolves library references against a search path and
// registers the functions they define into a shared Linker.
type Importer struct {
	Linker      *linker.Linker
	Interner    *interner.Interner
	Report      *source.Reporter
	SearchPaths []string
	Debug       bool

	imported map[string]bool // absolute path already processed
}

// New constructs an Importer with the built-in default search paths
// prepended to extra (from repeated -L flags).
func New(l *linker.Linker, in *interner.Interner, report *source.Reporter, extra []string) *Importer {
	return &Importer{
		Linker:      l,
		Interner:    in,
		Report:      report,
		SearchPaths: append(DefaultSearchPaths(), extra...),
		imported:    make(map[string]bool),
	}
}

// DefaultSearchPaths returns the two built-in defaults: a platform
// standard location and ./hexagn-stdlib/ relative to the working
// directory.
func DefaultSearchPaths() []string {
	var std string
	switch runtime.GOOS {
	case "windows":
		std = filepath.Join(os.Getenv("ProgramData"), "hexagn", "lib")
	case "darwin":
		std = "/usr/local/lib/hexagn"
	default:
		std = "/usr/lib/hexagn"
	}
	return []string{std, "./hexagn-stdlib/"}
}

// resolve turns a dotted path plus optional file suffix into the first
// search-path entry where the join exists, per §4.6.
func (im *Importer) resolve(path, file string) (string, error) {
	rel := strings.ReplaceAll(path, ".", string(filepath.Separator))
	if file != "" {
		rel = filepath.Join(rel, file)
	}
	for _, dir := range im.SearchPaths {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Errorf("library %q not found on search path", path)
}

// Import implements codegen.Importer: it resolves path/file, guards
// against re-importing the same resolved absolute path, and dispatches
// the resolved file, or every regular file directly inside a directory
// target (subdirectories are skipped), to the extension-appropriate parser.
func (im *Importer) Import(path, file string, line int) {
	resolved, err := im.resolve(path, file)
	if err != nil {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "%s", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "cannot stat %q: %s", resolved, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(resolved)
		if err != nil {
			im.Report.Fatalf(source.ImportError, line, 0, 0, "%s", errors.Wrapf(err, "reading directory %q", resolved))
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			im.importFile(filepath.Join(resolved, entry.Name()), line)
		}
		return
	}
	im.importFile(resolved, line)
}

func (im *Importer) importFile(path string, line int) {
	abs, err := filepath.Abs(path)
	if err != nil {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "%s", errors.Wrapf(err, "resolving %q", path))
	}
	if im.imported[abs] {
		return
	}
	im.imported[abs] = true

	switch strings.ToLower(filepath.Ext(abs)) {
	case ".hxgn":
		im.importHexagn(abs, line)
	case ".urcl":
		im.importUrclShim(abs, line)
	default:
		im.Report.Fatalf(source.ImportError, line, 0, 0, "unknown library extension for %q", abs)
	}
}

func (im *Importer) importHexagn(path string, line int) {
	raw, err := os.ReadFile(path)
	if err != nil {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "%s", errors.Wrapf(err, "reading %q", path))
	}
	stripped := source.StripComments(string(raw))
	buf := source.NewBuffer(path, stripped)
	report := source.NewReporter(buf)

	lx := lexer.New(stripped, report)
	tokens := lx.Tokenize()
	p := parser.New(tokens, report)
	prog := p.Parse()

	gen := codegen.New(im.Linker, im.Interner, report, buf, codegen.Options{Debug: im.Debug})
	gen.SetImporter(im)
	gen.Generate(prog)
}
