package ast

import "ember/internal/source"

// Hints sizes each arena's initial capacity; zero means "use a small
// default". Mirrors the capacity-hint idiom used throughout the pipeline's
// other arenas so callers with a rough size estimate (e.g. the parser,
// counting tokens) can avoid repeated reallocation.
type Hints struct {
	Items      uint
	Stmts      uint
	Exprs      uint
	Types      uint
	CodeBlocks uint
}

func (h Hints) capOf(n uint) int {
	if n == 0 {
		return 8
	}
	return int(n)
}

// Builder lets a parser (or a test) construct an AST by hand without going
// through surface syntax. The pipeline's own lexer/parser are built on top
// of this same API.
type Builder struct {
	Items      *Arena[Item]
	Stmts      *Arena[Stmt]
	Exprs      *Arena[Expr]
	Types      *Arena[TypeExpr]
	CodeBlocks *Arena[CodeBlock]
	Strings    *source.Interner
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	return &Builder{
		Items:      NewArena[Item](hints.capOf(hints.Items)),
		Stmts:      NewArena[Stmt](hints.capOf(hints.Stmts)),
		Exprs:      NewArena[Expr](hints.capOf(hints.Exprs)),
		Types:      NewArena[TypeExpr](hints.capOf(hints.Types)),
		CodeBlocks: NewArena[CodeBlock](hints.capOf(hints.CodeBlocks)),
		Strings:    strings,
	}
}

func (b *Builder) NewItem(item Item) ItemID { return ItemID(b.Items.Allocate(item)) }

func (b *Builder) NewStmt(stmt Stmt) StmtID { return StmtID(b.Stmts.Allocate(stmt)) }

func (b *Builder) NewExpr(expr Expr) ExprID { return ExprID(b.Exprs.Allocate(expr)) }

func (b *Builder) NewType(t TypeExpr) TypeExprID { return TypeExprID(b.Types.Allocate(t)) }

func (b *Builder) NewCodeBlock(cb CodeBlock) CodeBlockID {
	return CodeBlockID(b.CodeBlocks.Allocate(cb))
}

func (b *Builder) Item(id ItemID) *Item           { return b.Items.Get(uint32(id)) }
func (b *Builder) Stmt(id StmtID) *Stmt           { return b.Stmts.Get(uint32(id)) }
func (b *Builder) Expr(id ExprID) *Expr           { return b.Exprs.Get(uint32(id)) }
func (b *Builder) Type(id TypeExprID) *TypeExpr   { return b.Types.Get(uint32(id)) }
func (b *Builder) CodeBlock(id CodeBlockID) *CodeBlock {
	return b.CodeBlocks.Get(uint32(id))
}

// NamedType is a convenience for the common case of a bare type name.
func (b *Builder) NamedType(name string, span source.Span) TypeExprID {
	return b.NewType(TypeExpr{Kind: TypeNamed, Name: name, Span: span})
}

// UnitType is the implicit return/annotation type when none is written.
func (b *Builder) UnitType(span source.Span) TypeExprID {
	return b.NewType(TypeExpr{Kind: TypeUnit, Span: span})
}
