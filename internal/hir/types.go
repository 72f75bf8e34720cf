package hir

import "ember/internal/source"

// TyKind tags the sum-typed HIR type (§3.4).
type TyKind uint8

const (
	TyUnit TyKind = iota
	TyTuple
	TyStructDef
	TyFunc
	TyInteger
	TyString
	TyBool
	TyFloat
	TyNever
)

func (k TyKind) String() string {
	switch k {
	case TyUnit:
		return "unit"
	case TyTuple:
		return "tuple"
	case TyStructDef:
		return "struct"
	case TyFunc:
		return "func"
	case TyInteger:
		return "int"
	case TyString:
		return "string"
	case TyBool:
		return "bool"
	case TyFloat:
		return "float"
	case TyNever:
		return "never"
	default:
		return "unknown"
	}
}

// Ty is the HIR's type value, attached to KindTy entities via TyComp.
// Tuple/Func reference other Ty entities by id rather than nesting Ty by
// value, keeping every HIR node addressable uniformly by EntityID.
type Ty struct {
	Kind TyKind
	Span source.Span

	TupleItems []TyID   // TyTuple
	StructDef  StructID // TyStructDef
	FuncParams []TyID   // TyFunc
	FuncReturn TyID     // TyFunc
}

// TyEqual implements the structural comparisons §4.4 assignability needs for
// StructDef identity and Func/Tuple arity checks; it is comparison only, not
// assignability (see internal/sema for the "sink <- source" relation).
func (s *Store) TyEqual(a, b TyID) bool {
	ta, tb := s.TyOf(a), s.TyOf(b)
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case TyStructDef:
		return ta.StructDef == tb.StructDef
	case TyTuple:
		if len(ta.TupleItems) != len(tb.TupleItems) {
			return false
		}
		for i := range ta.TupleItems {
			if !s.TyEqual(ta.TupleItems[i], tb.TupleItems[i]) {
				return false
			}
		}
		return true
	case TyFunc:
		if len(ta.FuncParams) != len(tb.FuncParams) {
			return false
		}
		for i := range ta.FuncParams {
			if !s.TyEqual(ta.FuncParams[i], tb.FuncParams[i]) {
				return false
			}
		}
		return s.TyEqual(ta.FuncReturn, tb.FuncReturn)
	default:
		return true
	}
}

// TyString renders a Ty for diagnostics/--print-hir.
func (s *Store) TyString(id TyID) string {
	if !id.IsValid() {
		return "<no-ty>"
	}
	t := s.TyOf(id)
	switch t.Kind {
	case TyTuple:
		out := "("
		for i, item := range t.TupleItems {
			if i > 0 {
				out += ", "
			}
			out += s.TyString(item)
		}
		return out + ")"
	case TyStructDef:
		if sym, ok := s.Symbol(t.StructDef); ok {
			return sym.Name
		}
		return "<struct>"
	case TyFunc:
		out := "func("
		for i, p := range t.FuncParams {
			if i > 0 {
				out += ", "
			}
			out += s.TyString(p)
		}
		return out + ") -> " + s.TyString(t.FuncReturn)
	default:
		return t.Kind.String()
	}
}
