package hir

import "ember/internal/ast"

// lowerCodeBlock lowers a surface code block to a fresh CodeBlock entity.
// Callers that need the CodeBlockID allocated before the body is lowered
// (lowerWhile, for Break/Continue) use lowerCodeBlockBody directly instead.
func (lw *Lowerer) lowerCodeBlock(cbID ast.CodeBlockID, table *SymbolTable, scope EntityID) CodeBlockID {
	stmts, yield := lw.lowerCodeBlockBody(cbID, table, scope)
	span := lw.b.CodeBlock(cbID).Span
	return lw.store.NewCodeBlock(CodeBlock{Span: span, Stmts: stmts, Yield: yield})
}

// lowerCodeBlockBody lowers a block's statements, peeling off the implicit
// trailing yield: the last statement, if it's an expression statement
// without a semicolon, becomes the block's Yield rather than an ordinary
// StmtValue.
func (lw *Lowerer) lowerCodeBlockBody(cbID ast.CodeBlockID, table *SymbolTable, scope EntityID) ([]StmtID, ValueID) {
	cb := lw.b.CodeBlock(cbID)
	var stmts []StmtID
	var yield ValueID
	for i, stID := range cb.Stmts {
		st := lw.b.Stmt(stID)
		last := i == len(cb.Stmts)-1
		if last && st.Kind == ast.StmtExpr && !st.HasSemicolon {
			yield = lw.lowerExpr(st.Expr, table, scope)
			continue
		}
		stmts = append(stmts, lw.lowerStmt(stID, table, scope))
	}
	return stmts, yield
}

// lowerStmt lowers one non-yield statement, inserting a fresh Local into
// table for a `let`/`var` binding so later statements in the same scope can
// see it.
func (lw *Lowerer) lowerStmt(stID ast.StmtID, table *SymbolTable, scope EntityID) StmtID {
	st := lw.b.Stmt(stID)
	if st.Kind == ast.StmtBind {
		val := lw.lowerExpr(st.BindVal, table, scope)
		ty := lw.store.ValueOf(val).Ty
		if st.Type.IsValid() {
			ty = lw.resolveTypeExpr(st.Type, scope)
		}
		local := lw.store.Create(KindLocal)
		lw.store.AddLocal(local, LocalComp{Type: ty, Mutable: st.Mutable})
		table.Insert(st.Name, local)
		return lw.store.NewStmt(Stmt{
			Kind: StmtBind, Span: st.Span, Name: st.Name, NameSpan: st.NameSpan,
			Local: local, Ty: ty, BindVal: val,
		})
	}
	val := lw.lowerExpr(st.Expr, table, scope)
	return lw.store.NewStmt(Stmt{Kind: StmtValue, Span: st.Span, Value: val})
}
