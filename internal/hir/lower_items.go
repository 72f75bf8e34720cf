package hir

import (
	"ember/internal/ast"
	"ember/internal/diag"
)

// defineFunc lowers a function's signature: parameter/return types, a
// parameter Local per parameter (occupying the first frame slots, per
// Callable.ParamLocal), and the Func(params, ret) type that makes it
// resolvable both as a type-checking target and, via HasValue, as a value.
func (lw *Lowerer) defineFunc(entity EntityID, it *ast.Item) {
	paramTys := make([]TyID, len(it.Params))
	paramLocals := make([]LocalID, len(it.Params))
	for i, prm := range it.Params {
		ty := lw.resolveTypeExpr(prm.Type, entity)
		paramTys[i] = ty
		local := lw.store.Create(KindLocal)
		lw.store.AddLocal(local, LocalComp{Type: ty, Mutable: false})
		paramLocals[i] = local
	}
	retTy := lw.resolveTypeExpr(it.ReturnType, entity)

	lw.store.AddCallable(entity, Callable{Params: paramTys, ParamLocal: paramLocals, Return: retTy})
	funcTy := lw.store.NewTy(Ty{Kind: TyFunc, FuncParams: paramTys, FuncReturn: retTy, Span: it.Span})
	lw.store.AddHasType(entity, HasType{Ty: funcTy})
	lw.store.AddHasValue(entity, HasValue{})
}

// lowerFuncBody is the code pass for a Func: build its lexical SymbolTable
// (params in scope), lower the body, and record the lowered CodeBlock back
// onto the Callable component the definition pass already created.
func (lw *Lowerer) lowerFuncBody(entity EntityID, it *ast.Item) {
	callable, _ := lw.store.Callable(entity)
	table := lw.store.BuildSymbolTable(entity, lw.emit)
	for i, prm := range it.Params {
		table.Insert(prm.Name, callable.ParamLocal[i])
	}
	callable.Body = lw.lowerCodeBlock(it.Body, table, entity)
	lw.store.AddCallable(entity, callable)
}

// defineStruct lowers a struct's fields and gives it both a TyStructDef
// type (for use in annotations) and HasValue (its implicit constructor,
// synthesized as ValInitFor at each reference site in lower_expr.go).
func (lw *Lowerer) defineStruct(entity EntityID, it *ast.Item) {
	fieldIDs := make([]FieldID, len(it.Fields))
	for i, fd := range it.Fields {
		fty := lw.resolveTypeExpr(fd.Type, entity)
		field := lw.store.CreateWithParent(entity, KindField)
		lw.store.AddField(field, FieldComp{Owner: entity, Name: fd.Name, NameSpan: fd.NameSpan, Type: fty})
		fieldIDs[i] = field
	}
	lw.store.AddStructDef(entity, StructDefComp{Fields: fieldIDs})
	ty := lw.store.NewTy(Ty{Kind: TyStructDef, StructDef: entity, Span: it.Span})
	lw.store.AddHasType(entity, HasType{Ty: ty})
	lw.store.AddHasValue(entity, HasValue{})
}

func (lw *Lowerer) defineImport(entity EntityID, it *ast.Item) {
	lw.store.AddImport(entity, ImportComp{
		PathSegments: it.ImportPath,
		Symbols:      it.ImportSymbols,
		Alias:        it.ImportAlias,
		Span:         it.Span,
	})
}

// defineGlobal resolves a `var` item's declared (or defaulted) type; its
// default expression is lowered later, in the code pass, since it may
// reference other items that need their own definition pass first.
func (lw *Lowerer) defineGlobal(entity EntityID, it *ast.Item) {
	var ty TyID
	if it.GlobalType.IsValid() {
		ty = lw.resolveTypeExpr(it.GlobalType, entity)
	} else if it.GlobalDefault.IsValid() {
		ty = lw.store.PrimitiveTy(TyUnit) // refined once the default is lowered
	} else {
		ty = lw.store.PrimitiveTy(TyUnit)
	}
	if !it.GlobalDefault.IsValid() {
		lw.report(diag.EGlobalMissingDefault, it.NameSpan, "global "+it.Name+" has no default value")
	}
	lw.store.AddGlobal(entity, GlobalComp{Type: ty})
	lw.store.AddHasValue(entity, HasValue{})
}

func (lw *Lowerer) lowerGlobalBody(entity EntityID, it *ast.Item) {
	if !it.GlobalDefault.IsValid() {
		return
	}
	table := lw.store.BuildSymbolTable(entity, lw.emit)
	val := lw.lowerExpr(it.GlobalDefault, table, entity)
	g, _ := lw.store.Global(entity)
	if !it.GlobalType.IsValid() {
		g.Type = lw.store.ValueOf(val).Ty
	}
	g.Default = val
	lw.store.AddGlobal(entity, g)
}

// defineConstant resolves a `let` item's declared type, if any; the parser
// already guarantees a default exists (it rejects `let` without one).
func (lw *Lowerer) defineConstant(entity EntityID, it *ast.Item) {
	ty := lw.store.PrimitiveTy(TyUnit)
	if it.GlobalType.IsValid() {
		ty = lw.resolveTypeExpr(it.GlobalType, entity)
	}
	lw.store.AddConstant(entity, ConstantComp{Type: ty})
	lw.store.AddHasValue(entity, HasValue{})
}

func (lw *Lowerer) lowerConstantBody(entity EntityID, it *ast.Item) {
	c, _ := lw.store.Constant(entity)
	if !it.GlobalDefault.IsValid() {
		lw.store.AddConstant(entity, c)
		return
	}
	table := lw.store.BuildSymbolTable(entity, lw.emit)
	val := lw.lowerExpr(it.GlobalDefault, table, entity)
	if !it.GlobalType.IsValid() {
		c.Type = lw.store.ValueOf(val).Ty
	}
	c.Value = val
	lw.store.AddConstant(entity, c)
}

func (lw *Lowerer) defineTypeAlias(entity EntityID, _ *ast.Item) {
	lw.resolveAliasTy(entity)
}
