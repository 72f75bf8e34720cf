// Package mir implements the low-level, basic-block-oriented intermediate
// representation (§3.7-3.8): functions, struct shells, and globals lowered
// from a resolved, type-checked internal/hir.Store into basic blocks with
// explicit terminators. Like internal/hir's entity table, ids here are
// 1-based indices into append-only arenas (internal/ast.Arena), never reused
// and never invalidated once issued (§3.9).
package mir

// FuncID, StructID, GlobalID and BlockID index their respective Context
// arena. LocalID indexes a Function's own Locals slice, so it is only
// meaningful alongside the FuncID of its owning function.
type (
	FuncID   uint32
	StructID uint32
	GlobalID uint32
	BlockID  uint32
	LocalID  uint32
)

const (
	NoFuncID   FuncID   = 0
	NoStructID StructID = 0
	NoGlobalID GlobalID = 0
	NoBlockID  BlockID  = 0
	NoLocalID  LocalID  = 0
)

func (id FuncID) IsValid() bool   { return id != NoFuncID }
func (id StructID) IsValid() bool { return id != NoStructID }
func (id GlobalID) IsValid() bool { return id != NoGlobalID }
func (id BlockID) IsValid() bool  { return id != NoBlockID }
func (id LocalID) IsValid() bool  { return id != NoLocalID }
