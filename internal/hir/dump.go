package hir

import (
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Dump renders the entity tree descended from Root as indented text,
// the default `--print-hir` encoding (§6.1): one line per entity giving its
// id, kind, symbol name/visibility when present, and its HIR type string for
// anything carrying HasType. It walks depth-first from Root rather than
// Entities()'s breadth-first order so children print nested under their
// parent the way a reader expects a tree dump to look.
func (s *Store) Dump() string {
	var sb strings.Builder
	s.dumpEntity(&sb, s.root, 0)
	return sb.String()
}

func (s *Store) dumpEntity(sb *strings.Builder, id EntityID, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "#%d %s", id, s.Kind(id))
	if sym, ok := s.Symbol(id); ok {
		fmt.Fprintf(sb, " %q (%s)", sym.Name, sym.Visibility)
	}
	if ht, ok := s.TryHasType(id); ok {
		fmt.Fprintf(sb, " : %s", s.TyString(ht.Ty))
	}
	if c, ok := s.Callable(id); ok {
		out := make([]string, len(c.Params))
		for i, p := range c.Params {
			out[i] = s.TyString(p)
		}
		fmt.Fprintf(sb, " func(%s) -> %s", strings.Join(out, ", "), s.TyString(c.Return))
	}
	sb.WriteByte('\n')
	for _, child := range s.Children(id) {
		s.dumpEntity(sb, child, depth+1)
	}
}

// Snapshot is the msgpack-serializable rendering of the same tree
// (`--print-hir --format=msgpack`, SPEC_FULL domain stack): a flat slice
// indexed by EntityID so a consumer can rebuild parent/child edges without
// walking pointers, mirroring how the teacher repo (vovakirdan-surge)
// flattens its own ModuleMeta into a DiskPayload before msgpack-encoding it
// -- msgpack encodes plain data, not graphs with back-references.
type Snapshot struct {
	Entities []EntitySnapshot
}

// EntitySnapshot is one flattened entity record. Symbol/Type/Signature are
// left zero-valued when the entity doesn't carry that component, rather than
// using pointers, so the encoding stays a single flat value per entity.
type EntitySnapshot struct {
	ID       uint32
	Kind     string
	Parent   uint32
	HasParent bool
	Children []uint32

	SymbolName string
	Visibility string
	HasSymbol  bool

	Type      string
	HasType   bool

	Signature string
	IsFunc    bool
}

// ToSnapshot flattens the store into its msgpack-ready form.
func (s *Store) ToSnapshot() Snapshot {
	snap := Snapshot{Entities: make([]EntitySnapshot, 0, len(s.entities))}
	for id := range s.entities {
		eid := EntityID(id)
		rec := EntitySnapshot{
			ID:       uint32(eid),
			Kind:     s.Kind(eid).String(),
			Children: s.Children(eid),
		}
		if parent, ok := s.Parent(eid); ok {
			rec.Parent = uint32(parent)
			rec.HasParent = true
		}
		if sym, ok := s.Symbol(eid); ok {
			rec.SymbolName = sym.Name
			rec.Visibility = sym.Visibility.String()
			rec.HasSymbol = true
		}
		if ht, ok := s.TryHasType(eid); ok {
			rec.Type = s.TyString(ht.Ty)
			rec.HasType = true
		}
		if c, ok := s.Callable(eid); ok {
			out := make([]string, len(c.Params))
			for i, p := range c.Params {
				out[i] = s.TyString(p)
			}
			rec.Signature = fmt.Sprintf("func(%s) -> %s", strings.Join(out, ", "), s.TyString(c.Return))
			rec.IsFunc = true
		}
		snap.Entities = append(snap.Entities, rec)
	}
	return snap
}

// EncodeMsgpack writes the store's Snapshot to w, the alternate binary
// --print-hir encoding named in SPEC_FULL's domain stack. It is not a cache
// (the core excludes caching per its Non-goals) -- purely an alternate
// Emitter-adjacent output format next to the default text Dump.
func (s *Store) EncodeMsgpack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(s.ToSnapshot())
}
