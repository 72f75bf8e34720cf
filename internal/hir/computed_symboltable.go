package hir

import (
	"ember/internal/diag"
	"ember/internal/source"
)

// binding records, for SymbolTable's push/pop delta scheme, what a name was
// bound to before the current scope rebound it (§4.2).
type binding struct {
	name       string
	hadPrev    bool
	prev       EntityID
}

// SymbolTable is a lexical scope snapshot with push/pop scoping: Insert
// records the name's prior binding in the current scope's delta, and Pop
// restores exactly those prior bindings, making shadowing first-class.
type SymbolTable struct {
	current map[string]EntityID
	deltas  [][]binding
}

// NewSymbolTable seeds a table from a flat binding map, the form
// BuildSymbolTable below returns as its memoized baseline.
func NewSymbolTable(baseline map[string]EntityID) *SymbolTable {
	current := make(map[string]EntityID, len(baseline))
	for k, v := range baseline {
		current[k] = v
	}
	return &SymbolTable{current: current}
}

// Push opens a new scope; names inserted after this call are undone by Pop.
func (t *SymbolTable) Push() { t.deltas = append(t.deltas, nil) }

// Pop closes the most recent scope, restoring any shadowed bindings.
func (t *SymbolTable) Pop() {
	n := len(t.deltas) - 1
	delta := t.deltas[n]
	t.deltas = t.deltas[:n]
	for i := len(delta) - 1; i >= 0; i-- {
		b := delta[i]
		if b.hadPrev {
			t.current[b.name] = b.prev
		} else {
			delete(t.current, b.name)
		}
	}
}

// Insert binds name to id in the current scope, recording the previous
// binding (if any) so Pop can restore it.
func (t *SymbolTable) Insert(name string, id EntityID) {
	prev, hadPrev := t.current[name]
	if n := len(t.deltas); n > 0 {
		t.deltas[n-1] = append(t.deltas[n-1], binding{name: name, hadPrev: hadPrev, prev: prev})
	}
	t.current[name] = id
}

func (t *SymbolTable) Lookup(name string) (EntityID, bool) {
	id, ok := t.current[name]
	return id, ok
}

// BuildSymbolTable computes (and memoizes) the baseline lexical table
// visible at scope: for every namespace from scope out to Root, symbols
// whose VisibleWithin contains scope are added (innermost scope wins ties),
// then every ancestor Import child's target namespace is folded in under
// the same visibility filter (§4.1, §4.2, SPEC_FULL §3). emit receives
// diagnostics for unresolved or colliding imports; it may be nil.
func (s *Store) BuildSymbolTable(scope EntityID, emit func(code diag.Code, span source.Span, msg string)) *SymbolTable {
	if baseline, ok := s.symtableMemo[scope]; ok {
		return NewSymbolTable(baseline)
	}

	bindings := make(map[string]EntityID)
	importedFrom := make(map[string]EntityID) // name -> import entity that contributed it, for collision reporting

	addIfVisible := func(sym EntityID) {
		c, _ := s.Symbol(sym)
		if _, exists := bindings[c.Name]; exists {
			return // nearer (already-processed) scope wins
		}
		if s.IsAncestorOrSelf(s.VisibleWithin(sym), scope) {
			bindings[c.Name] = sym
		}
	}

	for e := scope; ; {
		ns := s.NamespaceOf(e)
		for _, sym := range ns.Symbols {
			addIfVisible(sym)
		}
		for _, c := range s.Children(e) {
			if imp, ok := s.Import(c); ok {
				s.mergeImport(e, c, imp, bindings, importedFrom, emit)
			}
		}
		parent, has := s.Parent(e)
		if !has {
			break
		}
		e = parent
	}

	if s.symtableMemo == nil {
		s.symtableMemo = make(map[EntityID]map[string]EntityID)
	}
	s.symtableMemo[scope] = bindings
	return NewSymbolTable(bindings)
}

// mergeImport folds one Import entity's target namespace into bindings,
// honoring an explicit symbol filter and alias, and reporting collisions
// between two distinct imports that both contribute the same name.
func (s *Store) mergeImport(
	site, importID EntityID, imp ImportComp,
	bindings map[string]EntityID, importedFrom map[string]EntityID,
	emit func(code diag.Code, span source.Span, msg string),
) {
	target, ok := s.resolveModulePath(imp.PathSegments)
	if !ok {
		if emit != nil {
			emit(diag.EImportNotFound, imp.Span, "import target not found: "+joinDots(imp.PathSegments))
		}
		return
	}
	ns := s.NamespaceOf(target)
	contribute := func(name string, sym EntityID) {
		if !s.IsAncestorOrSelf(s.VisibleWithin(sym), site) {
			return
		}
		if prevImport, fromImport := importedFrom[name]; fromImport && prevImport != importID {
			if emit != nil {
				emit(diag.EMultipleImports, imp.Span, "symbol "+name+" imported from multiple sources")
			}
			return
		}
		if _, exists := bindings[name]; exists {
			return
		}
		bindings[name] = sym
		importedFrom[name] = importID
	}
	if len(imp.Symbols) == 0 {
		for _, sym := range ns.Symbols {
			c, _ := s.Symbol(sym)
			contribute(c.Name, sym)
		}
		return
	}
	for _, want := range imp.Symbols {
		for _, sym := range ns.Symbols {
			c, _ := s.Symbol(sym)
			if c.Name == want {
				name := want
				if imp.Alias != "" && len(imp.Symbols) == 1 {
					name = imp.Alias
				}
				contribute(name, sym)
			}
		}
	}
}

// resolveModulePath resolves a dotted module path starting from Root's own
// StaticMemberTable, the same lookup path-resolution step 2 in §4.2 uses for
// segments after the first.
func (s *Store) resolveModulePath(segments []string) (EntityID, bool) {
	if len(segments) == 0 {
		return NoEntityID, false
	}
	table := s.StaticMemberTableOf(s.root)
	cur, ok := table.Members[segments[0]]
	if !ok {
		return NoEntityID, false
	}
	for _, seg := range segments[1:] {
		table = s.StaticMemberTableOf(cur)
		cur, ok = table.Members[seg]
		if !ok {
			return NoEntityID, false
		}
	}
	return cur, true
}

func joinDots(segs []string) string {
	out := ""
	for i, seg := range segs {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}
