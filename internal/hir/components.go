package hir

import (
	"ember/internal/ast"
	"ember/internal/source"
)

// Symbol is the base component every nameable entity carries (§3.6):
// functions, structs, fields, imports, modules, globals, constants, locals,
// and type aliases. Visibility determines VisibleWithin (computed_visible.go).
type Symbol struct {
	Name       string
	NameSpan   source.Span
	Visibility ast.Visibility
	IsStatic   bool
}

// Callable marks a Func entity with its lowered signature and body.
type Callable struct {
	Params     []TyID
	ParamLocal []LocalID // parallel to Params; locals occupy frame slots 0..k
	Return     TyID
	Body       CodeBlockID
}

// HasType marks an entity resolvable "as a type" (§4.2): structs, type
// aliases, and the handful of builtin primitive markers.
type HasType struct {
	Ty TyID
}

// HasValue marks an entity resolvable "as a value" (§4.2): functions,
// globals, constants, fields (as instance members). It carries no payload;
// a path reference to one of these synthesizes a fresh Value entity at the
// reference site (via switching on the terminal's EntityKind) rather than
// sharing one Value entity across every reference, so each reference gets
// its own span.
type HasValue struct{}

// StructDefComp lists a struct's fields in declaration order.
type StructDefComp struct {
	Fields []FieldID
}

// FieldComp is attached to a Field entity (a child of a StructDef). Fields
// carry their own Name/NameSpan rather than a Symbol component: a field is
// resolved by direct instance-member lookup against its owning struct
// (§4.3's Member rule), never through a Namespace/StaticMemberTable path, so
// it must stay out of its owner's Namespace.
type FieldComp struct {
	Owner    StructID
	Name     string
	NameSpan source.Span
	Type     TyID
}

// ImportComp records an import's surface path and optional filter/alias; see
// §4.2 for how it feeds SymbolTable construction.
type ImportComp struct {
	PathSegments []string
	Symbols      []string // empty: import everything visible at the target
	Alias        string   // empty: no alias
	Span         source.Span
}

// GlobalComp is mutable module-level storage (`var` at item scope); it
// always has an associated MIR global slot. Default is NoEntityID if
// the declaration supplied no initializer (§6.2 E0601).
type GlobalComp struct {
	Type    TyID
	Default ValueID
}

// ConstantComp is immutable module-level storage (`let` at item scope).
// Unlike GlobalComp it always requires an initializer and is never lowered
// to a MIR place the interpreter can Assign into.
type ConstantComp struct {
	Type  TyID
	Value ValueID
}

// TypeAliasComp is attached to a TypeAlias entity; Target is resolved
// during the definition pass, detecting self-reference (E0512) per §9.
type TypeAliasComp struct {
	Target TyID
}

// LocalComp is attached to a Local entity created by a `let`/`var` binding
// or a function parameter.
type LocalComp struct {
	Type    TyID
	Mutable bool
}

// TyComp / ValueComp / StmtComp / CodeBlockComp wrap the sum types from
// types.go/values.go so they can be attached the same way as any other
// component.
type (
	TyComp        struct{ Ty Ty }
	ValueComp     struct{ Value Value }
	StmtComp      struct{ Stmt Stmt }
	CodeBlockComp struct{ Block CodeBlock }
)
