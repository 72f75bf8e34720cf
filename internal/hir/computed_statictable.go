package hir

import "fmt"

// StaticMemberTable is the computed name→symbol map of an entity's
// externally-accessible members, built from its Namespace (§4.1).
type StaticMemberTable struct {
	Members map[string]EntityID
}

// StaticMemberTableOf computes (and memoizes) id's StaticMemberTable. Two
// same-named static members is a programming error in the source language,
// not a recoverable diagnostic (§4.1: "undefined behavior"), so it panics
// the way an hir invariant violation does elsewhere in this package.
func (s *Store) StaticMemberTableOf(id EntityID) StaticMemberTable {
	if t, ok := s.staticMemo[id]; ok {
		return t
	}
	ns := s.NamespaceOf(id)
	members := make(map[string]EntityID, len(ns.Symbols))
	for _, sym := range ns.Symbols {
		c, _ := s.Symbol(sym)
		if _, dup := members[c.Name]; dup {
			panic(fmt.Sprintf("hir: duplicate static member %q", c.Name))
		}
		members[c.Name] = sym
	}
	t := StaticMemberTable{Members: members}
	s.staticMemo[id] = t
	return t
}
