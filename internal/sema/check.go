// Package sema type-checks a lowered hir.Store (§4.4): assignability between
// a binding's declared type and its initializer, call arity/argument types,
// and condition types for if/while. It runs after internal/hir's three
// passes and before internal/mir's lowering, and never mutates the Store --
// every check is read-only against the already-resolved Ty/Value graph.
package sema

import (
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/source"
)

// Checker walks every function (and global/constant initializer) in a
// Store, reporting each assignability or call-site violation through
// reporter.
type Checker struct {
	store    *hir.Store
	reporter diag.Reporter
}

func New(store *hir.Store, reporter diag.Reporter) *Checker {
	return &Checker{store: store, reporter: reporter}
}

// Check runs every check over every entity the store's BFS traversal
// reaches; order doesn't matter since checks never depend on each other.
func Check(store *hir.Store, reporter diag.Reporter) {
	c := New(store, reporter)
	for _, e := range store.Entities() {
		switch store.Kind(e) {
		case hir.KindFunc:
			c.checkFunc(e)
		case hir.KindGlobal:
			if g, ok := store.Global(e); ok && g.Default.IsValid() {
				c.checkValue(g.Default, hir.NoEntityID)
			}
		case hir.KindConstant:
			if cc, ok := store.Constant(e); ok && cc.Value.IsValid() {
				c.checkValue(cc.Value, hir.NoEntityID)
			}
		}
	}
}

func (c *Checker) checkFunc(fn hir.EntityID) {
	callable, ok := c.store.Callable(fn)
	if !ok || !callable.Body.IsValid() {
		return
	}
	c.checkBlock(callable.Body, callable.Return)
}

func (c *Checker) checkBlock(blockID hir.CodeBlockID, returnTy hir.TyID) {
	block := c.store.CodeBlockOf(blockID)
	for _, stID := range block.Stmts {
		c.checkStmt(stID, returnTy)
	}
	if block.Yield.IsValid() {
		c.checkValue(block.Yield, returnTy)
	}
}

func (c *Checker) checkStmt(stID hir.StmtID, returnTy hir.TyID) {
	st := c.store.StmtOf(stID)
	switch st.Kind {
	case hir.StmtBind:
		c.checkValue(st.BindVal, returnTy)
		if st.BindVal.IsValid() && !Assignable(c.store, st.Ty, c.store.ValueOf(st.BindVal).Ty) {
			c.report(diag.EBindMismatch, st.Span, "cannot bind "+c.store.TyString(c.store.ValueOf(st.BindVal).Ty)+" to declared type "+c.store.TyString(st.Ty))
		}
	default:
		c.checkValue(st.Value, returnTy)
	}
}

// checkValue recurses through a value's subexpressions, applying the check
// relevant to each ValueKind, then returning (nothing -- each value's own
// type was already fixed during hir lowering; sema only validates it).
func (c *Checker) checkValue(id hir.ValueID, returnTy hir.TyID) {
	if !id.IsValid() {
		return
	}
	v := c.store.ValueOf(id)
	switch v.Kind {
	case hir.ValTuple:
		for _, item := range v.TupleItems {
			c.checkValue(item, returnTy)
		}
	case hir.ValFieldOf, hir.ValTupleMember:
		c.checkValue(v.Base, returnTy)
	case hir.ValInvoke:
		c.checkValue(v.Callee, returnTy)
		for _, a := range v.Args {
			c.checkValue(a, returnTy)
		}
		c.checkCall(id, v)
	case hir.ValAssign:
		c.checkValue(v.Place, returnTy)
		c.checkValue(v.RHS, returnTy)
		if !Assignable(c.store, c.store.ValueOf(v.Place).Ty, c.store.ValueOf(v.RHS).Ty) {
			c.report(diag.EAssignMismatch, v.Span, "cannot assign "+c.store.TyString(c.store.ValueOf(v.RHS).Ty)+" to "+c.store.TyString(c.store.ValueOf(v.Place).Ty))
		}
	case hir.ValReturn:
		c.checkValue(v.ReturnValue, returnTy)
		if returnTy.IsValid() && !Assignable(c.store, returnTy, c.store.ValueOf(v.ReturnValue).Ty) {
			c.report(diag.EReturnMismatch, v.Span, "cannot return "+c.store.TyString(c.store.ValueOf(v.ReturnValue).Ty)+" from a function declared to return "+c.store.TyString(returnTy))
		}
	case hir.ValIf:
		c.checkValue(v.If.Condition, returnTy)
		if !isBool(c.store, v.If.Condition) {
			c.report(diag.EIfCondNotBool, v.Span, "if condition must be bool")
		}
		c.checkBlock(v.If.Positive, returnTy)
		switch v.If.NegativeKind {
		case hir.ElseBlock:
			c.checkBlock(v.If.NegativeBlock, returnTy)
		case hir.ElseIf:
			c.checkValue(v.If.NegativeIf, returnTy)
		}
	case hir.ValWhile:
		c.checkValue(v.While.Condition, returnTy)
		if !isBool(c.store, v.While.Condition) {
			c.report(diag.EWhileCondNotBool, v.Span, "while condition must be bool")
		}
		c.checkBlock(v.While.Body, returnTy)
	}
}

func isBool(store *hir.Store, v hir.ValueID) bool {
	return store.TyOf(store.ValueOf(v).Ty).Kind == hir.TyBool
}

// checkCall validates arity and per-argument assignability against the
// callee's Func type (§4.4 E0508/E0509/E0510). lowerCall in internal/hir
// already rejected a non-Func callee, so this only runs when calleeTy.Kind
// == TyFunc.
func (c *Checker) checkCall(id hir.ValueID, v hir.Value) {
	calleeTy := c.store.TyOf(c.store.ValueOf(v.Callee).Ty)
	if calleeTy.Kind != hir.TyFunc {
		return
	}
	if len(v.Args) < len(calleeTy.FuncParams) {
		c.report(diag.EMissingArgs, v.Span, "too few arguments")
		return
	}
	if len(v.Args) > len(calleeTy.FuncParams) {
		b := diag.ReportError(c.reporter, diag.EExtraArgs, v.Span, "too many arguments")
		for _, extra := range v.Args[len(calleeTy.FuncParams):] {
			b = b.WithNote(c.store.ValueOf(extra).Span, "extra argument")
		}
		b.Emit()
		return
	}
	for i, p := range calleeTy.FuncParams {
		argTy := c.store.ValueOf(v.Args[i]).Ty
		if !Assignable(c.store, p, argTy) {
			c.report(diag.EWrongArgType, c.store.ValueOf(v.Args[i]).Span,
				"argument "+c.store.TyString(argTy)+" does not match parameter type "+c.store.TyString(p))
		}
	}
}

func (c *Checker) report(code diag.Code, span source.Span, msg string) {
	if c.reporter != nil {
		diag.ReportError(c.reporter, code, span, msg).Emit()
	}
}
