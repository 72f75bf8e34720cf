package hir

import "ember/internal/mangle"

// MangledNameOf computes (and memoizes) id's persisted MIR name by walking
// id's ancestor chain of Symbol names into a path and encoding it per §6.4.
// The entity itself must carry a Symbol; the outermost ancestor chain
// segment is the nearest named ancestor below Root.
func (s *Store) MangledNameOf(id EntityID) string {
	if m, ok := s.mangledMemo[id]; ok {
		return m
	}
	var segments []string
	for e := id; e != s.root && e.IsValid(); {
		if sym, ok := s.Symbol(e); ok {
			segments = append(segments, sym.Name)
		}
		parent, has := s.Parent(e)
		if !has {
			break
		}
		e = parent
	}
	// segments was built innermost-first; reverse to outermost-first.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	var kind mangle.Kind
	switch s.Kind(id) {
	case KindStructDef:
		kind = mangle.Struct
	case KindGlobal, KindConstant:
		kind = mangle.Global
	default:
		kind = mangle.Func
	}
	name := mangle.Name(kind, segments)
	s.mangledMemo[id] = name
	return name
}
