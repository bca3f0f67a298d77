// Package linker mangles function signatures, stores function bodies
// keyed by their mangled signature, and resolves call sites to a unique
// registered function under the numeric-family compatibility rules of
// §4.3. The teacher's UserDefinedFunctions registry supplies the shape of
// a name-keyed function table consulted at both definition and call
// sites; mangling and overload resolution have no analogue in the teacher
// and are written fresh in its struct-with-methods idiom.
package linker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexagn-lang/hexagn/internal/types"
)

// Function is a registered function record: its mangled signature is the
// registry key. Code is the already-generated function body text.
type Function struct {
	ReturnType types.Type
	Name       string
	ParamTypes []types.Type
	Code       string
}

// Linker owns the mangled-signature registry. Entries are immutable once
// added, per the data model's invariant.
type Linker struct {
	bySignature map[string]*Function
	byName      map[string][]*Function // insertion order, for "first-registered wins"
	order       []*Function
}

// New returns an empty Linker.
func New() *Linker {
	return &Linker{
		bySignature: make(map[string]*Function),
		byName:      make(map[string][]*Function),
	}
}

// Mangle renders the canonical `_Hx<N><name><ret-enc><arg-enc>...` form.
func Mangle(name string, ret types.Type, params []types.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "_Hx%d%s%s", len(name), name, encode(ret))
	for _, p := range params {
		b.WriteString(encode(p))
	}
	return b.String()
}

func encode(t types.Type) string {
	var base string
	switch t.Base {
	case types.Void:
		base = "v"
	case types.Int8:
		base = "i8"
	case types.Int16:
		base = "i16"
	case types.Int32:
		base = "i32"
	case types.Int64:
		base = "i64"
	case types.Uint8:
		base = "u8"
	case types.Uint16:
		base = "u16"
	case types.Uint32:
		base = "u32"
	case types.Uint64:
		base = "u64"
	case types.Float32:
		base = "f32"
	case types.Float64:
		base = "f64"
	case types.Str:
		base = "s"
	case types.Char:
		base = "c"
	default:
		base = "_" + strconv.Itoa(len(t.Base)) + t.Base
	}
	if t.IsPointer {
		base += "P"
	}
	return base
}

// AddFunction inserts f keyed by its mangled signature. It returns a
// LinkError-class error on a duplicate signature or a return-type
// conflict against an identically-named, identically-parameterized
// entry; both are fatal conditions at the caller.
func (l *Linker) AddFunction(f *Function) error {
	sig := Mangle(f.Name, f.ReturnType, f.ParamTypes)
	if _, exists := l.bySignature[sig]; exists {
		return errors.Errorf("Duplicate function: %s", f.Name)
	}
	for _, existing := range l.byName[f.Name] {
		if sameParams(existing.ParamTypes, f.ParamTypes) && existing.ReturnType != f.ReturnType {
			return errors.Errorf("same arguments different return types: %s", f.Name)
		}
	}
	l.bySignature[sig] = f
	l.byName[f.Name] = append(l.byName[f.Name], f)
	l.order = append(l.order, f)
	return nil
}

func sameParams(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ArgKind describes the compile-time nature of a call argument beyond its
// static type: a bare numeric literal widens into any integer-family
// parameter per §4.3, even if the literal's own inferred type differs.
type ArgKind struct {
	Type             types.Type
	IsNumericLiteral bool
}

// GetFunction selects the first-registered function named name whose
// parameters are each compatible with args under §4.3's rules. It returns a
// ResolveError-class error when no candidate matches.
func (l *Linker) GetFunction(name string, args []ArgKind) (*Function, error) {
	for _, f := range l.byName[name] {
		if len(f.ParamTypes) != len(args) {
			continue
		}
		if allCompatible(f.ParamTypes, args) {
			return f, nil
		}
	}
	return nil, errors.Errorf("function %s with given arguments does not exist", name)
}

func allCompatible(params []types.Type, args []ArgKind) bool {
	for i, p := range params {
		if !compatible(p, args[i]) {
			return false
		}
	}
	return true
}

func compatible(param types.Type, arg ArgKind) bool {
	switch {
	case types.IsIntegerFamily(param):
		return types.IsIntegerFamily(arg.Type) || arg.IsNumericLiteral
	case types.IsFloatFamily(param):
		return types.IsFloatFamily(arg.Type)
	case types.IsString(param):
		return types.IsString(arg.Type)
	default:
		return param == arg.Type
	}
}

// MainSignature returns the mangled signature of a parameterless int8
// function named main — the entry point the program header calls.
func MainSignature() string {
	return Mangle("main", types.Type{Base: types.Int8}, nil)
}

// Functions returns every registered function in registration order, for
// the end-of-compilation emission tail.
func (l *Linker) Functions() []*Function {
	return l.order
}

// Has reports whether a signature is already registered, used by the
// code generator to check that the entry-point main is defined.
func (l *Linker) Has(signature string) bool {
	_, ok := l.bySignature[signature]
	return ok
}
