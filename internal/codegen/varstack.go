package codegen

import "github.com/hexagn-lang/hexagn/internal/types"

type varEntry struct {
	name   string
	offset int
	typ    types.Type
}

// VarStack is the generator's compile-time model of a runtime frame: an
// ordered list of (name, offset, type). StartFrame/PopFrame gate a single
// function-level frame (nested, for recursive compilation); an if/while
// body is not its own frame, so it shares the enclosing frame's counter
// instead of calling StartFrame/PopFrame. Offsets are strictly positive
// and monotonically increasing within a frame.
type VarStack struct {
	entries      []varEntry
	offset       int
	frameMarks   []int
	frameOffsets []int
}

// NewVarStack returns an empty VarStack.
func NewVarStack() *VarStack {
	return &VarStack{}
}

// StartFrame zeros the offset counter and remembers the current entry
// count so a matching PopFrame can unwind back to it.
func (v *VarStack) StartFrame() {
	v.frameMarks = append(v.frameMarks, len(v.entries))
	v.frameOffsets = append(v.frameOffsets, v.offset)
	v.offset = 0
}

// PopFrame removes the entries pushed since the last StartFrame and
// returns how many there were.
func (v *VarStack) PopFrame() int {
	n := len(v.frameMarks)
	mark := v.frameMarks[n-1]
	count := len(v.entries) - mark
	v.entries = v.entries[:mark]
	v.frameMarks = v.frameMarks[:n-1]
	v.offset = v.frameOffsets[n-1]
	v.frameOffsets = v.frameOffsets[:n-1]
	return count
}

// Push adds name at the next offset in the current frame and returns
// that offset.
func (v *VarStack) Push(name string, typ types.Type) int {
	v.offset++
	v.entries = append(v.entries, varEntry{name: name, offset: v.offset, typ: typ})
	return v.offset
}

// GetOffset returns the offset of the most recent entry named name, or
// (0, false) if there is none.
func (v *VarStack) GetOffset(name string) (int, bool) {
	for i := len(v.entries) - 1; i >= 0; i-- {
		if v.entries[i].name == name {
			return v.entries[i].offset, true
		}
	}
	return 0, false
}

// GetType returns the declared type of the most recent entry named name.
func (v *VarStack) GetType(name string) (types.Type, bool) {
	for i := len(v.entries) - 1; i >= 0; i-- {
		if v.entries[i].name == name {
			return v.entries[i].typ, true
		}
	}
	return types.Type{}, false
}
