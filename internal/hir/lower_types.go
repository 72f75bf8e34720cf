package hir

import (
	"ember/internal/ast"
	"ember/internal/diag"
)

// resolveTypeExpr resolves a surface type annotation to a Ty entity under
// scope's lexical visibility (§4.2/§4.3): primitives resolve directly,
// tuples collapse the same way tuple values do (empty -> Unit, one item ->
// the item itself, unwrapped), and a bare name is looked up once through
// scope's SymbolTable -- the grammar has no dotted type paths, so there is
// no StaticMemberTable walk here the way value-path resolution needs one.
func (lw *Lowerer) resolveTypeExpr(id ast.TypeExprID, scope EntityID) TyID {
	if !id.IsValid() {
		return lw.store.PrimitiveTy(TyUnit)
	}
	texpr := lw.b.Type(id)
	switch texpr.Kind {
	case ast.TypeUnit:
		return lw.store.PrimitiveTy(TyUnit)
	case ast.TypeTuple:
		switch len(texpr.Items) {
		case 0:
			return lw.store.PrimitiveTy(TyUnit)
		case 1:
			return lw.resolveTypeExpr(texpr.Items[0], scope)
		}
		items := make([]TyID, len(texpr.Items))
		for i, it := range texpr.Items {
			items[i] = lw.resolveTypeExpr(it, scope)
		}
		return lw.store.NewTy(Ty{Kind: TyTuple, TupleItems: items, Span: texpr.Span})
	case ast.TypeNamed:
		return lw.resolveNamedType(texpr.Name, texpr, scope)
	default:
		return lw.store.PrimitiveTy(TyUnit)
	}
}

func (lw *Lowerer) resolveNamedType(name string, texpr *ast.TypeExpr, scope EntityID) TyID {
	switch name {
	case "int":
		return lw.store.PrimitiveTy(TyInteger)
	case "string":
		return lw.store.PrimitiveTy(TyString)
	case "bool":
		return lw.store.PrimitiveTy(TyBool)
	case "float":
		return lw.store.PrimitiveTy(TyFloat)
	}
	table := lw.store.BuildSymbolTable(scope, lw.emit)
	sym, ok := table.Lookup(name)
	if !ok {
		lw.report(diag.ENotFound, texpr.Span, "undefined type "+name)
		return lw.store.PrimitiveTy(TyUnit)
	}
	if lw.store.Kind(sym) == KindTypeAlias {
		return lw.resolveAliasTy(sym)
	}
	if c, ok := lw.store.TryHasType(sym); ok {
		return c.Ty
	}
	lw.report(diag.ENotAType, texpr.Span, name+" is not a type")
	return lw.store.PrimitiveTy(TyUnit)
}

// resolveAliasTy resolves (and memoizes, via HasType) a TypeAlias entity's
// target on demand, detecting a self-referential chain as E0512 rather than
// recursing forever (§9 Open Question: recursive aliases).
func (lw *Lowerer) resolveAliasTy(entity EntityID) TyID {
	if c, ok := lw.store.TryHasType(entity); ok {
		return c.Ty
	}
	if lw.aliasResolving[entity] {
		span := lw.entityItem[entity].NameSpan
		lw.report(diag.ERecursiveTypeAlias, span, "recursive type alias")
		placeholder := lw.store.PrimitiveTy(TyUnit)
		lw.store.AddHasType(entity, HasType{Ty: placeholder})
		return placeholder
	}
	lw.aliasResolving[entity] = true
	defer delete(lw.aliasResolving, entity)

	it := lw.entityItem[entity]
	target := lw.resolveTypeExpr(it.AliasTarget, entity)
	lw.store.AddTypeAlias(entity, TypeAliasComp{Target: target})
	lw.store.AddHasType(entity, HasType{Ty: target})
	return target
}
