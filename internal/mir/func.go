package mir

import "ember/internal/hir"

// Local is one slot in a Function's frame (§4.6): parameters occupy slots
// 0..k-1 of Locals, matching Callable.ParamLocal's order in the HIR.
type Local struct {
	Type hir.TyID
}

// Function is a MIR function (§3.7): a mangled name, lowered signature, an
// ordered list of basic blocks, and a dense local-id allocator.
type Function struct {
	ID          FuncID
	MangledName string

	Params      []hir.TyID
	Return      hir.TyID
	ParamLocals []LocalID // parallel to Params; Locals[ParamLocals[i]-1] is its slot

	Locals []Local // 1-based via LocalID, dense and monotonic (§3.7)
	Blocks []BlockID
}

// NewLocal appends a fresh local of the given type and returns its id.
func (f *Function) NewLocal(ty hir.TyID) LocalID {
	f.Locals = append(f.Locals, Local{Type: ty})
	return LocalID(len(f.Locals))
}

func (f *Function) LocalType(id LocalID) hir.TyID {
	return f.Locals[id-1].Type
}

// StructShell is a MIR struct (§4.5 pre-pass): field types in declaration
// order, enough for the interpreter to size a Struct value and for the
// (absent) native backend to lay out storage.
type StructShell struct {
	ID          StructID
	MangledName string
	FieldTypes  []hir.TyID
}

// GlobalDef is a MIR global (§3.7): mutable module-level storage addressed
// by a dedicated Place::Global slot in the interpreter's process-wide frame.
// Init is the lowered initializer immediate, evaluated once when the
// interpreter's global frame is built.
type GlobalDef struct {
	ID          GlobalID
	MangledName string
	Type        hir.TyID
	Init        Immediate
}
