package mir

import (
	"ember/internal/diag"
	"ember/internal/hir"
)

// lowerValue flattens one HIR value into a MIR rvalue (§4.5 "Expression
// flattening"). Control-flow forms (If/While/Break/Continue/Return) have no
// real rvalue -- they only ever change which block is selected or set a
// terminator -- so they return a Void immediate once lowered, which is never
// read by anything but a discarded statement-position Eval.
func (fl *funcLowerer) lowerValue(id hir.ValueID) Immediate {
	v := fl.store.ValueOf(id)
	switch v.Kind {
	case hir.ValUnit:
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}

	case hir.ValLitInteger:
		return Immediate{Kind: ImmConstant, ConstKind: ConstInteger, IntValue: v.IntValue, Ty: v.Ty, Span: v.Span}
	case hir.ValLitFloat:
		return Immediate{Kind: ImmConstant, ConstKind: ConstFloat, FloatValue: v.FloatValue, Ty: v.Ty, Span: v.Span}
	case hir.ValLitString:
		return Immediate{Kind: ImmConstant, ConstKind: ConstString, StringValue: v.StringValue, Ty: v.Ty, Span: v.Span}
	case hir.ValLitBool:
		return Immediate{Kind: ImmConstant, ConstKind: ConstBool, BoolValue: v.BoolValue, Ty: v.Ty, Span: v.Span}

	case hir.ValTuple:
		items := make([]Immediate, len(v.TupleItems))
		for i, it := range v.TupleItems {
			items[i] = fl.lowerValue(it)
		}
		return Immediate{Kind: ImmTuple, TupleItems: items, Ty: v.Ty, Span: v.Span}

	case hir.ValLocal, hir.ValGlobal, hir.ValFieldOf, hir.ValTupleMember:
		return Immediate{Kind: ImmMove, Place: fl.lowerPlace(id), Ty: v.Ty, Span: v.Span}

	case hir.ValInvoke:
		return fl.lowerInvoke(id, v)

	case hir.ValAssign:
		return fl.lowerAssign(v)

	case hir.ValReturn:
		fl.setTerm(Terminator{Kind: TermReturn, Value: fl.lowerValue(v.ReturnValue)})
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}

	case hir.ValIf:
		return fl.lowerIf(v)

	case hir.ValWhile:
		return fl.lowerWhile(v)

	case hir.ValBreak:
		fl.lowerBreak(v)
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}

	case hir.ValContinue:
		fl.lowerContinue(v)
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}

	default:
		// ValStaticFunc/ValInstanceFunc/ValBuiltinFunc/ValInitFor reaching
		// here means a function value was used somewhere other than the
		// callee of an Invoke -- the only shape an indirect call could take
		// without closures, since the language has no other way to name a
		// function as a first-class value (§9 Open Question resolution).
		fl.report(diag.EIndirectCallUnsupported, v.Span, "indirect calls are not supported")
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}
	}
}

// lowerPlace flattens a lvalue-shaped HIR value (Local/Global or a chain of
// FieldOf/TupleMember over one) into a single Place with a flattened Proj
// list, per §4.5's `Field(p, f)`/`TupleMember(p, i)` -> `Place::Field(p, i)`.
func (fl *funcLowerer) lowerPlace(id hir.ValueID) Place {
	v := fl.store.ValueOf(id)
	switch v.Kind {
	case hir.ValLocal:
		return Place{Kind: PlaceLocal, Local: fl.localFor(v.Local, v.Ty), Ty: v.Ty, Span: v.Span}
	case hir.ValGlobal:
		global, _ := fl.ctx.GlobalForHIR(v.Global)
		return Place{Kind: PlaceGlobal, Global: global, Ty: v.Ty, Span: v.Span}
	case hir.ValFieldOf:
		base := fl.lowerPlace(v.Base)
		base.Proj = append(base.Proj, fieldIndex(fl.store, v.Field))
		base.Ty = v.Ty
		base.Span = v.Span
		return base
	case hir.ValTupleMember:
		base := fl.lowerPlace(v.Base)
		base.Proj = append(base.Proj, v.Index)
		base.Ty = v.Ty
		base.Span = v.Span
		return base
	default:
		return Place{Ty: v.Ty, Span: v.Span}
	}
}

// fieldIndex returns field's position within its owning struct's declared
// field order, the index a MIR Place projection addresses by.
func fieldIndex(store *hir.Store, field hir.FieldID) int {
	fc, _ := store.Field(field)
	sd, _ := store.StructDef(fc.Owner)
	for i, f := range sd.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

func (fl *funcLowerer) lowerInvoke(id hir.ValueID, v hir.Value) Immediate {
	callee := fl.store.ValueOf(v.Callee)
	switch callee.Kind {
	case hir.ValStaticFunc:
		target, _ := fl.ctx.FuncForHIR(callee.Func)
		args := make([]Immediate, len(v.Args))
		for i, a := range v.Args {
			args[i] = fl.lowerValue(a)
		}
		return Immediate{Kind: ImmCall, Func: target, Args: args, Ty: v.Ty, Span: v.Span}
	case hir.ValBuiltinFunc:
		return fl.lowerBuiltinInvoke(callee.BuiltinName, v)
	case hir.ValInitFor:
		args := make([]Immediate, len(v.Args))
		for i, a := range v.Args {
			args[i] = fl.lowerValue(a)
		}
		structID, _ := fl.ctx.StructForHIR(callee.Struct)
		return Immediate{Kind: ImmStructInit, Struct: structID, StructArgs: args, Ty: v.Ty, Span: v.Span}
	default:
		// An instance-func value or a call through a non-function-literal
		// expression (e.g. calling a variable holding a function) is an
		// indirect call; not yet supported (§9 Open Question resolution).
		fl.report(diag.EIndirectCallUnsupported, v.Span, "indirect calls are not supported")
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}
	}
}

// lowerBuiltinInvoke dispatches a builtin call to a Binary or Unary
// immediate per its looked-up BuiltinSig (§4.5 "Builtin dispatch"); the
// builtin name was already validated during HIR lowering (invokeBuiltin), so
// a lookup miss here would be a lowering-order bug, not a user error.
func (fl *funcLowerer) lowerBuiltinInvoke(name string, v hir.Value) Immediate {
	sig, ok := hir.LookupBuiltin(name)
	if !ok {
		fl.report(diag.ECantCall, v.Span, "unknown builtin "+name)
		return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}
	}
	if sig.Binary {
		lhs := fl.lowerValue(v.Args[0])
		rhs := fl.lowerValue(v.Args[1])
		return Immediate{Kind: ImmBinary, BinOp: sig.BinOp, Lhs: &lhs, Rhs: &rhs, Ty: v.Ty, Span: v.Span}
	}
	operand := fl.lowerValue(v.Args[0])
	return Immediate{Kind: ImmUnary, UnOp: sig.UnOp, Operand: &operand, Ty: v.Ty, Span: v.Span}
}

func (fl *funcLowerer) lowerAssign(v hir.Value) Immediate {
	rhs := fl.lowerValue(v.RHS)
	place := fl.lowerPlace(v.Place)
	fl.emit(Instr{Kind: InstrAssign, Dst: place, Val: rhs})
	return Immediate{Kind: ImmVoid, Ty: v.Ty, Span: v.Span}
}
