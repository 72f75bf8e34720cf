package hir

import "ember/internal/ast"

// VisibleWithin computes (and memoizes) the ancestor entity that bounds a
// symbol's visibility scope, per the table in §3.6. Grounded on
// firefly-hir/src/resolve/visible.rs's ancestor walk (SPEC_FULL §2b): each
// visibility stops the walk at a different landmark ancestor.
func (s *Store) VisibleWithin(symbolID EntityID) EntityID {
	if v, ok := s.visibleMemo[symbolID]; ok {
		return v
	}
	sym, ok := s.Symbol(symbolID)
	if !ok {
		panic("hir: VisibleWithin requires a Symbol component")
	}

	var result EntityID
	switch sym.Visibility {
	case ast.Public:
		result = s.root
	case ast.Local:
		result = symbolID
	case ast.Private:
		parent, has := s.Parent(symbolID)
		if !has {
			result = symbolID
		} else {
			result = parent
		}
	case ast.FilePrivate:
		result = s.ancestorWhere(symbolID, func(e EntityID) bool {
			return s.Kind(e) == KindSourceFile
		})
	case ast.Internal:
		result = s.ancestorWhere(symbolID, func(e EntityID) bool {
			parent, has := s.Parent(e)
			return has && parent == s.root
		})
	default:
		result = s.root
	}
	s.visibleMemo[symbolID] = result
	return result
}

// ancestorWhere walks from start (inclusive) up through parents, returning
// the first entity satisfying pred, or the root if none does.
func (s *Store) ancestorWhere(start EntityID, pred func(EntityID) bool) EntityID {
	e := start
	for {
		if pred(e) {
			return e
		}
		parent, has := s.Parent(e)
		if !has {
			return e
		}
		e = parent
	}
}

// IsAncestorOrSelf reports whether candidate is on the walk from e up to
// Root, inclusive of both ends. Used by SymbolTable construction to test
// "scope is within the symbol's VisibleWithin boundary".
func (s *Store) IsAncestorOrSelf(candidate, e EntityID) bool {
	for {
		if e == candidate {
			return true
		}
		parent, has := s.Parent(e)
		if !has {
			return false
		}
		e = parent
	}
}
