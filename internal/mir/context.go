package mir

import (
	"fortio.org/safecast"

	"ember/internal/hir"
)

// Context owns every MIR entity produced by one lowering run (§3.7): the
// function, struct-shell and global arenas, plus the flat Blocks arena that
// every Function's Blocks field indexes into by BlockID. Like internal/hir's
// Store, a Context is append-only: once a block or function is allocated its
// id never moves or is reused.
type Context struct {
	Funcs   []Function
	Structs []StructShell
	Globals []GlobalDef
	Blocks  []Block

	// funcByHIR/structByHIR/globalByHIR record the HIR entity that produced
	// each MIR entity, populated by the shell pre-pass (SPEC_FULL supplement
	// #4) before any function body is lowered, so a call or struct-literal
	// reference can resolve its target regardless of declaration order.
	funcByHIR   map[hir.EntityID]FuncID
	structByHIR map[hir.EntityID]StructID
	globalByHIR map[hir.EntityID]GlobalID
}

func NewContext() *Context {
	return &Context{
		funcByHIR:   make(map[hir.EntityID]FuncID),
		structByHIR: make(map[hir.EntityID]StructID),
		globalByHIR: make(map[hir.EntityID]GlobalID),
	}
}

func (c *Context) Func(id FuncID) *Function         { return &c.Funcs[id-1] }
func (c *Context) Struct(id StructID) *StructShell  { return &c.Structs[id-1] }
func (c *Context) Global(id GlobalID) *GlobalDef    { return &c.Globals[id-1] }
func (c *Context) Block(id BlockID) *Block          { return &c.Blocks[id-1] }

func (c *Context) FuncForHIR(e hir.EntityID) (FuncID, bool)     { id, ok := c.funcByHIR[e]; return id, ok }
func (c *Context) StructForHIR(e hir.EntityID) (StructID, bool) { id, ok := c.structByHIR[e]; return id, ok }
func (c *Context) GlobalForHIR(e hir.EntityID) (GlobalID, bool) { id, ok := c.globalByHIR[e]; return id, ok }

// NewFunction allocates an empty Function shell (no blocks, no locals yet)
// and records its HIR origin for later lookup.
func (c *Context) NewFunction(origin hir.EntityID, mangledName string, params []hir.TyID, ret hir.TyID) FuncID {
	c.Funcs = append(c.Funcs, Function{
		ID:          FuncID(len(c.Funcs) + 1),
		MangledName: mangledName,
		Params:      params,
		Return:      ret,
	})
	id := FuncID(len(c.Funcs))
	c.funcByHIR[origin] = id
	return id
}

// NewStruct allocates a struct shell.
func (c *Context) NewStruct(origin hir.EntityID, mangledName string, fieldTypes []hir.TyID) StructID {
	c.Structs = append(c.Structs, StructShell{
		ID:          StructID(len(c.Structs) + 1),
		MangledName: mangledName,
		FieldTypes:  fieldTypes,
	})
	id := StructID(len(c.Structs))
	c.structByHIR[origin] = id
	return id
}

// NewGlobal allocates a global slot.
func (c *Context) NewGlobal(origin hir.EntityID, mangledName string, ty hir.TyID) GlobalID {
	c.Globals = append(c.Globals, GlobalDef{
		ID:          GlobalID(len(c.Globals) + 1),
		MangledName: mangledName,
		Type:        ty,
	})
	id := GlobalID(len(c.Globals))
	c.globalByHIR[origin] = id
	return id
}

// AppendBlock allocates a fresh, unterminated block owned by fn and appends
// it to fn's block list, returning its Context-global id.
func (c *Context) AppendBlock(fn FuncID) BlockID {
	f := c.Func(fn)
	seq, err := safecast.Conv[uint32](len(f.Blocks))
	if err != nil {
		panic(err)
	}
	c.Blocks = append(c.Blocks, Block{
		ID:   BlockID(len(c.Blocks) + 1),
		Seq:  seq,
		Func: fn,
	})
	id := BlockID(len(c.Blocks))
	f.Blocks = append(f.Blocks, id)
	return id
}

// SetTerminator installs t on block id unless it is already terminated, the
// Go rendering of the teacher's "first terminator wins, later ones are a
// no-op" rule (§3.7). Reports whether it actually installed the terminator.
func (c *Context) SetTerminator(id BlockID, t Terminator) bool {
	b := c.Block(id)
	if b.Terminated() {
		return false
	}
	b.Term = t
	return true
}

// Emit appends instr to block id, unless it is already terminated: dead
// instructions after a terminator are simply dropped rather than collected,
// matching the teacher's emit().
func (c *Context) Emit(id BlockID, instr Instr) {
	b := c.Block(id)
	if b.Terminated() {
		return
	}
	b.Instrs = append(b.Instrs, instr)
}
