package mir

import "ember/internal/hir"

// lowerCodeBlock lowers every statement of block into the currently-selected
// block, then lowers its yield (if any) to an Immediate. A statement may
// itself change the currently-selected block (an if/while does), which is
// exactly why fl.cur rather than a local variable tracks "where to emit next".
func (fl *funcLowerer) lowerCodeBlock(id hir.CodeBlockID) Immediate {
	block := fl.store.CodeBlockOf(id)
	for _, stID := range block.Stmts {
		if fl.terminated() {
			return Immediate{Kind: ImmVoid}
		}
		fl.lowerStmt(stID)
	}
	if fl.terminated() || !block.Yield.IsValid() {
		return Immediate{Kind: ImmVoid}
	}
	return fl.lowerValue(block.Yield)
}

func (fl *funcLowerer) lowerStmt(id hir.StmtID) {
	st := fl.store.StmtOf(id)
	switch st.Kind {
	case hir.StmtBind:
		val := fl.lowerValue(st.BindVal)
		local := fl.localFor(st.Local, st.Ty)
		fl.emit(Instr{
			Kind: InstrAssign,
			Dst:  Place{Kind: PlaceLocal, Local: local, Ty: st.Ty, Span: st.Span},
			Val:  val,
		})
	default:
		fl.lowerValueAsStmt(st.Value)
	}
}

// lowerValueAsStmt lowers a statement-position value, emitting an Eval
// instruction for anything that only matters for its side effect (a call, an
// assignment) and letting control-flow forms (If/While/Break/Continue/Return)
// lower directly into terminators without an enclosing Eval wrapper.
func (fl *funcLowerer) lowerValueAsStmt(id hir.ValueID) {
	v := fl.store.ValueOf(id)
	switch v.Kind {
	case hir.ValIf, hir.ValWhile, hir.ValBreak, hir.ValContinue, hir.ValReturn:
		fl.lowerValue(id)
	default:
		imm := fl.lowerValue(id)
		if fl.terminated() {
			return
		}
		fl.emit(Instr{Kind: InstrEval, Val: imm})
	}
}
