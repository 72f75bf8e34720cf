package mir

import (
	"ember/internal/diag"
	"ember/internal/hir"
	"ember/internal/source"
)

// Lower runs the HIR->MIR pre-pass and per-function lowering over a
// resolved, type-checked store (§4.5): struct shells for every StructDef,
// function shells (signature + mapped param locals) for every Func, a
// global slot for every Global, then every function body -- in that order
// across the whole program, grounded on the teacher's own two-phase
// shell-then-body Module lowering (_examples/vovakirdan-surge/internal/mir/lower.go).
func Lower(store *hir.Store, reporter diag.Reporter) *Context {
	ctx := NewContext()

	var structs, funcs, globals []hir.EntityID
	for _, e := range store.Entities() {
		switch store.Kind(e) {
		case hir.KindStructDef:
			structs = append(structs, e)
		case hir.KindFunc:
			funcs = append(funcs, e)
		case hir.KindGlobal:
			globals = append(globals, e)
		}
	}

	for _, e := range structs {
		sd, _ := store.StructDef(e)
		fieldTypes := make([]hir.TyID, len(sd.Fields))
		for i, f := range sd.Fields {
			fc, _ := store.Field(f)
			fieldTypes[i] = fc.Type
		}
		ctx.NewStruct(e, store.MangledNameOf(e), fieldTypes)
	}

	localMaps := make(map[hir.EntityID]map[hir.LocalID]LocalID, len(funcs))
	for _, e := range funcs {
		callable, _ := store.Callable(e)
		fn := ctx.NewFunction(e, store.MangledNameOf(e), callable.Params, callable.Return)
		f := ctx.Func(fn)
		lm := make(map[hir.LocalID]LocalID, len(callable.ParamLocal))
		for i, hirLocal := range callable.ParamLocal {
			mirLocal := f.NewLocal(callable.Params[i])
			lm[hirLocal] = mirLocal
			f.ParamLocals = append(f.ParamLocals, mirLocal)
		}
		localMaps[e] = lm
	}

	// Globals are lowered with a bare funcLowerer (no owning function): a
	// default initializer is restricted to a closed-form expression with no
	// locals or control flow to select blocks in, so the control-flow-shaped
	// branches of lowerValue never fire here.
	globalLowerer := &funcLowerer{ctx: ctx, store: store, reporter: reporter}
	for _, e := range globals {
		g, _ := store.Global(e)
		id := ctx.NewGlobal(e, store.MangledNameOf(e), g.Type)
		if g.Default.IsValid() {
			ctx.Global(id).Init = globalLowerer.lowerValue(g.Default)
		}
	}

	for _, e := range funcs {
		fn, _ := ctx.FuncForHIR(e)
		callable, _ := store.Callable(e)
		fl := &funcLowerer{
			ctx:      ctx,
			store:    store,
			reporter: reporter,
			fn:       fn,
			locals:   localMaps[e],
			loops:    make(map[hir.CodeBlockID]loopTarget),
		}
		fl.lowerBody(callable.Body, callable.Return)
	}

	return ctx
}

// funcLowerer holds the mutable state threaded through one function's body
// lowering: the currently-selected block, the hir.LocalID->LocalID map
// (seeded with parameters, grown for every let/var encountered), and a map
// from a while loop's CodeBlockID to its head/after blocks for Break/Continue.
type funcLowerer struct {
	ctx      *Context
	store    *hir.Store
	reporter diag.Reporter

	fn  FuncID
	cur BlockID

	locals map[hir.LocalID]LocalID
	loops  map[hir.CodeBlockID]loopTarget
}

type loopTarget struct {
	start BlockID // head, for Continue
	end   BlockID // after, for Break
}

func (fl *funcLowerer) report(code diag.Code, span source.Span, msg string) {
	if fl.reporter != nil {
		diag.ReportError(fl.reporter, code, span, msg).Emit()
	}
}

func (fl *funcLowerer) emit(instr Instr) { fl.ctx.Emit(fl.cur, instr) }

func (fl *funcLowerer) setTerm(t Terminator) { fl.ctx.SetTerminator(fl.cur, t) }

func (fl *funcLowerer) terminated() bool { return fl.ctx.Block(fl.cur).Terminated() }

func (fl *funcLowerer) newBlock() BlockID { return fl.ctx.AppendBlock(fl.fn) }

func (fl *funcLowerer) selectBlock(id BlockID) { fl.cur = id }

// localFor maps a hir.LocalID to its MIR slot, allocating one the first
// time a let/var binding is seen (params are already seeded by Lower).
func (fl *funcLowerer) localFor(id hir.LocalID, ty hir.TyID) LocalID {
	if mirID, ok := fl.locals[id]; ok {
		return mirID
	}
	mirID := fl.ctx.Func(fl.fn).NewLocal(ty)
	fl.locals[id] = mirID
	return mirID
}

// lowerBody implements §4.5 steps 1-3: append bb0 and select it, lower the
// body code block, then terminate with Return/ReturnVoid if control fell
// off the end without an explicit terminator.
func (fl *funcLowerer) lowerBody(body hir.CodeBlockID, returnTy hir.TyID) {
	entry := fl.newBlock()
	fl.selectBlock(entry)

	if !body.IsValid() {
		fl.setTerm(Terminator{Kind: TermReturnVoid})
		return
	}

	yield := fl.lowerCodeBlock(body)
	if fl.terminated() {
		return
	}
	if isVoidTy(fl.store, returnTy) {
		fl.setTerm(Terminator{Kind: TermReturnVoid})
		return
	}
	fl.setTerm(Terminator{Kind: TermReturn, Value: yield})
}

func isVoidTy(store *hir.Store, ty hir.TyID) bool {
	return !ty.IsValid() || store.TyOf(ty).Kind == hir.TyUnit
}
