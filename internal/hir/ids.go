// Package hir implements the high-level intermediate representation: a
// shared entity/component store (§3.2), name resolution over it (§4.1-4.2),
// and the AST→HIR lowering pass (§4.3). Unlike the teacher's hir package,
// which models HIR as a typed tree with one struct per node kind, this store
// follows the distilled source's own design: a flat table of entities tagged
// by kind, with typed state attached as separate per-kind components. Every
// node the pipeline talks about -- functions, structs, but also individual
// statements and values inside a function body -- is an entity in the same
// table, addressed by the same EntityID.
package hir

// EntityID is a 1-based index into the Store's entity table, the same
// arena idiom internal/ast.Arena uses: index 0 is "nothing allocated here".
type EntityID uint32

const NoEntityID EntityID = 0

func (id EntityID) IsValid() bool { return id != NoEntityID }

// The entity kinds below double as lightweight "typed identifiers": each is
// just EntityID under a distinct name, documenting which component view a
// caller expects without the overhead of a phantom-typed wrapper. Casting
// between one of these and a plain EntityID is a free conversion; the
// narrowing itself -- "Some iff component C exists on E" (§4.1's cast_id,
// §8's testable property) -- is realized by Store's per-component
// accessors (Symbol, Callable, StructDef, Field, Import, Global, Constant,
// TypeAlias, Local, TryHasType, TryHasValue), each returning (component,
// ok) rather than a typed id: ok is false exactly when that component was
// never attached to the entity.
type (
	RootID       = EntityID
	ModuleID     = EntityID
	SourceFileID = EntityID
	StructID     = EntityID
	FieldID      = EntityID
	FuncID       = EntityID
	TypeAliasID  = EntityID
	ImportID     = EntityID
	GlobalID     = EntityID
	TyID         = EntityID
	ValueID      = EntityID
	StmtID       = EntityID
	CodeBlockID  = EntityID
	ConstantID   = EntityID
	LocalID      = EntityID
)
