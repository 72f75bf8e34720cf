package interp

import "ember/internal/mir"

// Frame is one call's local-variable storage (§4.6): a slice sized to the
// callee's local count, with parameters already seated in their slots by the
// caller before execution starts. Grounded on the teacher's own
// frame.LocalSlot/Frame (_examples/vovakirdan-surge/internal/vm/frame.go),
// stripped of its IsInit/IsMoved/IsDropped bookkeeping -- this language has no
// ownership or borrow-checking model for the interpreter to track.
type Frame struct {
	Locals []Value
}

// NewFrame allocates a zeroed frame for fn, one slot per mir.Local.
func NewFrame(fn mir.Function) *Frame {
	return &Frame{Locals: make([]Value, len(fn.Locals))}
}

func (fr *Frame) Get(id mir.LocalID) Value   { return fr.Locals[id-1] }
func (fr *Frame) Set(id mir.LocalID, v Value) { fr.Locals[id-1] = v }
