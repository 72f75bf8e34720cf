package hir

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
)

// Lowerer holds the mutable state threaded through the three AST→HIR passes
// (§4.3): which ast.Item produced which entity, type aliases currently being
// resolved (cycle detection), and the active loop-label stack.
type Lowerer struct {
	store    *Store
	b        *ast.Builder
	reporter diag.Reporter

	entityItem     map[EntityID]*ast.Item
	aliasResolving map[EntityID]bool
	labels         []loopLabel
}

// Lower runs link -> definition -> code over every file's items into a
// single shared Store, so names resolve across file boundaries the way
// §4.2's SymbolTable/Namespace machinery expects.
func Lower(files []ast.File, b *ast.Builder, reporter diag.Reporter) *Store {
	store := NewStore()
	lw := &Lowerer{
		store:          store,
		b:              b,
		reporter:       reporter,
		entityItem:     make(map[EntityID]*ast.Item),
		aliasResolving: make(map[EntityID]bool),
	}

	var order []EntityID
	for _, f := range files {
		fe := store.CreateWithParent(store.Root(), KindSourceFile)
		order = append(order, lw.linkItems(fe, f.Items)...)
	}
	for _, e := range order {
		lw.defineItem(e)
	}
	for _, e := range order {
		lw.lowerItemBody(e)
	}
	return store
}

// linkItems is the link pass: attach a Symbol (and an entity of the right
// kind) to every nameable item, recursing into nested modules.
func (lw *Lowerer) linkItems(parent EntityID, items []ast.ItemID) []EntityID {
	var order []EntityID
	for _, itemID := range items {
		it := lw.b.Item(itemID)
		kind := entityKindFor(it)
		e := lw.store.CreateWithParent(parent, kind)
		lw.store.AddSymbol(e, Symbol{Name: it.Name, NameSpan: it.NameSpan, Visibility: it.Visibility})
		lw.entityItem[e] = it
		order = append(order, e)
		if it.Kind == ast.ItemModule {
			order = append(order, lw.linkItems(e, it.ModuleItems)...)
		}
	}
	return order
}

func entityKindFor(it *ast.Item) EntityKind {
	switch it.Kind {
	case ast.ItemFunc:
		return KindFunc
	case ast.ItemStructDef:
		return KindStructDef
	case ast.ItemImport:
		return KindImport
	case ast.ItemGlobal:
		if it.GlobalMutable {
			return KindGlobal
		}
		return KindConstant
	case ast.ItemTypeAlias:
		return KindTypeAlias
	case ast.ItemModule:
		return KindModule
	default:
		return KindPlaceholder
	}
}

// defineItem is the definition pass: lower one item's declared surface.
func (lw *Lowerer) defineItem(e EntityID) {
	it := lw.entityItem[e]
	switch lw.store.Kind(e) {
	case KindFunc:
		lw.defineFunc(e, it)
	case KindStructDef:
		lw.defineStruct(e, it)
	case KindImport:
		lw.defineImport(e, it)
	case KindGlobal:
		lw.defineGlobal(e, it)
	case KindConstant:
		lw.defineConstant(e, it)
	case KindTypeAlias:
		lw.defineTypeAlias(e, it)
	}
}

// lowerItemBody is the code pass: lower one item's body, if it has one.
func (lw *Lowerer) lowerItemBody(e EntityID) {
	it := lw.entityItem[e]
	switch lw.store.Kind(e) {
	case KindFunc:
		lw.lowerFuncBody(e, it)
	case KindGlobal:
		lw.lowerGlobalBody(e, it)
	case KindConstant:
		lw.lowerConstantBody(e, it)
	}
}

// emit adapts report to the EmitFunc shape the computed-component and
// string-lowering helpers expect.
func (lw *Lowerer) emit(code diag.Code, span source.Span, msg string) {
	lw.report(code, span, msg)
}

func (lw *Lowerer) report(code diag.Code, span source.Span, msg string) {
	if lw.reporter != nil {
		diag.ReportError(lw.reporter, code, span, msg).Emit()
	}
}

// placeholderValue stands in for an expression that failed to lower, per
// §7's "best-effort placeholders" continuation policy.
func (lw *Lowerer) placeholderValue(span source.Span) ValueID {
	return lw.store.NewValue(Value{Kind: ValUnit, Ty: lw.store.PrimitiveTy(TyUnit), Span: span})
}
