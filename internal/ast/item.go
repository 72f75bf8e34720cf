package ast

import "ember/internal/source"

// ItemKind tags a top-level (or module-nested) declaration.
type ItemKind uint8

const (
	ItemFunc ItemKind = iota
	ItemStructDef
	ItemImport
	ItemGlobal
	ItemTypeAlias
	ItemModule
)

type Param struct {
	Name     string
	NameSpan source.Span
	Type     TypeExprID
}

type FieldDecl struct {
	Name       string
	NameSpan   source.Span
	Type       TypeExprID
	Visibility Visibility
}

// Item is a nameable declaration. Like Expr, only the fields relevant to
// Kind are populated.
type Item struct {
	Span       source.Span
	Kind       ItemKind
	Name       string
	NameSpan   source.Span
	Visibility Visibility

	// ItemFunc
	Params     []Param
	ReturnType TypeExprID // NoTypeExprID means Unit
	Body       CodeBlockID

	// ItemStructDef
	Fields []FieldDecl

	// ItemImport
	ImportPath    []string
	ImportSymbols []string // empty means "import everything visible"
	ImportAlias   string   // empty means no alias

	// ItemGlobal
	GlobalType    TypeExprID
	GlobalDefault ExprID // NoExprID if absent
	GlobalMutable bool   // true for `var`, false for `let` (lowers to a Constant entity)

	// ItemTypeAlias
	AliasTarget TypeExprID

	// ItemModule
	ModuleItems []ItemID
}
