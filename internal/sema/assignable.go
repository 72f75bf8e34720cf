package sema

import "ember/internal/hir"

// Assignable implements the structural `sink <- source` relation of §4.4.
// Never is assignable to every sink, matching Return/Break/Continue's use of
// Never as a placeholder type for control transfers that never produce a
// value in the usual sense.
func Assignable(store *hir.Store, sink, source hir.TyID) bool {
	if !sink.IsValid() || !source.IsValid() {
		return true
	}
	st, srcT := store.TyOf(sink), store.TyOf(source)
	if srcT.Kind == hir.TyNever {
		return true
	}
	if st.Kind != srcT.Kind {
		return false
	}
	switch st.Kind {
	case hir.TyBool, hir.TyInteger, hir.TyFloat, hir.TyString, hir.TyUnit, hir.TyNever:
		return true
	case hir.TyStructDef:
		return st.StructDef == srcT.StructDef
	case hir.TyFunc:
		if len(st.FuncParams) != len(srcT.FuncParams) {
			return false
		}
		for i := range st.FuncParams {
			if !Assignable(store, st.FuncParams[i], srcT.FuncParams[i]) {
				return false
			}
		}
		return Assignable(store, st.FuncReturn, srcT.FuncReturn)
	case hir.TyTuple:
		if len(st.TupleItems) != len(srcT.TupleItems) {
			return false
		}
		for i := range st.TupleItems {
			if !Assignable(store, st.TupleItems[i], srcT.TupleItems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
