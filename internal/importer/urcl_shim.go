package importer

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexagn-lang/hexagn/internal/linker"
	"github.com/hexagn-lang/hexagn/internal/source"
	"github.com/hexagn-lang/hexagn/internal/types"
)

// importUrclShim consumes the directive language of §4.6: tokenized
// line-by-line, whitespace-separated. Any non-directive line between
// @FUNC and @END is emitted verbatim into the open function's body; such a
// line outside a function is an ImportError.
func (im *Importer) importUrclShim(path string, line int) {
	raw, err := os.ReadFile(path)
	if err != nil {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "%s", errors.Wrapf(err, "reading %q", path))
	}

	var (
		inFunc     bool
		name       string
		returnType types.Type
		paramTypes []types.Type
		body       strings.Builder
	)

	finish := func() {
		fn := &linker.Function{
			ReturnType: returnType,
			Name:       name,
			ParamTypes: paramTypes,
			Code:       body.String(),
		}
		if err := im.Linker.AddFunction(fn); err != nil {
			im.Report.Fatalf(source.LinkError, line, 0, 0, "%s", err)
		}
		inFunc = false
		name = ""
		returnType = types.Type{}
		paramTypes = nil
		body.Reset()
	}

	for _, rawLine := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(rawLine)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "@FUNC":
			if len(fields) < 2 {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "@FUNC requires a name in %q", path)
			}
			inFunc = true
			name = fields[1]
			paramTypes = nil
			body.Reset()
		case "@SIGNATURE":
			if !inFunc || len(fields) < 2 {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "@SIGNATURE outside @FUNC in %q", path)
			}
			returnType = parseTypeToken(fields[1])
			for _, arg := range fields[2:] {
				paramTypes = append(paramTypes, parseTypeToken(arg))
			}
		case "@CALL":
			if !inFunc || len(fields) < 2 {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "@CALL outside @FUNC in %q", path)
			}
			callName := fields[1]
			var argKinds []linker.ArgKind
			for _, arg := range fields[2:] {
				argKinds = append(argKinds, linker.ArgKind{Type: parseTypeToken(arg)})
			}
			fn, err := im.Linker.GetFunction(callName, argKinds)
			if err != nil {
				im.Report.Fatalf(source.ResolveError, line, 0, 0, "%s", err)
			}
			sig := linker.Mangle(fn.Name, fn.ReturnType, fn.ParamTypes)
			body.WriteString("CAL .")
			body.WriteString(sig)
			body.WriteByte('\n')
			if n := len(argKinds); n > 0 {
				body.WriteString("ADD SP SP ")
				body.WriteString(strconv.Itoa(n))
				body.WriteByte('\n')
			}
		case "@RETURN":
			if !inFunc {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "@RETURN outside @FUNC in %q", path)
			}
			body.WriteString("MOV SP R1\nPOP R1\nRET\n")
		case "@END":
			if !inFunc {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "@END without matching @FUNC in %q", path)
			}
			finish()
		default:
			if !inFunc {
				im.Report.Fatalf(source.ImportError, line, 0, 0, "directive content outside @FUNC in %q", path)
			}
			body.WriteString(rawLine)
			body.WriteByte('\n')
		}
	}

	if inFunc {
		im.Report.Fatalf(source.ImportError, line, 0, 0, "unterminated @FUNC %q in %q", name, path)
	}
}

// parseTypeToken decodes a shim type spelling: a base name with an
// optional trailing '*' marking a pointer, e.g. "int32*".
func parseTypeToken(tok string) types.Type {
	if strings.HasSuffix(tok, "*") {
		return types.Type{Base: strings.TrimSuffix(tok, "*"), IsPointer: true}
	}
	return types.Type{Base: tok}
}

