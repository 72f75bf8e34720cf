package mir

// Block is a basic block (§3.7): ID is its global identity across the whole
// Context (the "global id" of §3.7); Seq is its 0-based position within its
// owning Func's Blocks list (the "local id" of §3.7, i.e. bb0, bb1, ...).
type Block struct {
	ID   BlockID
	Seq  uint32
	Func FuncID

	Instrs []Instr
	Term   Terminator
}

// Terminated reports whether the block already has a terminator. Per §3.7
// appending a second terminator is a no-op -- Context.SetTerminator in
// context.go enforces that by checking this first.
func (b *Block) Terminated() bool { return b.Term.Kind != TermNone }
