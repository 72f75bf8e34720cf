package ast

import "ember/internal/source"

// TypeExprKind tags the surface syntax for a type annotation.
type TypeExprKind uint8

const (
	TypeUnit TypeExprKind = iota
	TypeNamed
	TypeTuple
)

// TypeExpr is a surface type annotation: a bare name (resolved against the
// symbol table, e.g. "int", "string", or a struct name) or a tuple of types.
type TypeExpr struct {
	Span  source.Span
	Kind  TypeExprKind
	Name  string       // TypeNamed
	Items []TypeExprID // TypeTuple
}
