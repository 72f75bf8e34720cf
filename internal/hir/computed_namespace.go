package hir

// Namespace is the computed set of an entity's visible child symbols,
// descending transitively through passthrough entities (source files) the
// way an `import "pkg"` sees straight through a file boundary into the
// module it belongs to (§4.1).
type Namespace struct {
	Symbols []EntityID
}

// NamespaceOf computes (and memoizes) id's Namespace.
func (s *Store) NamespaceOf(id EntityID) Namespace {
	if ns, ok := s.nsMemo[id]; ok {
		return ns
	}
	var syms []EntityID
	var walk func(EntityID)
	walk = func(e EntityID) {
		for _, c := range s.Children(e) {
			if _, ok := s.Symbol(c); ok {
				syms = append(syms, c)
			}
			if s.Kind(c).isPassthrough() {
				walk(c)
			}
		}
	}
	walk(id)
	ns := Namespace{Symbols: syms}
	s.nsMemo[id] = ns
	return ns
}
