package hir

import "fortio.org/safecast"

type entityRec struct {
	kind     EntityKind
	parent   EntityID
	hasParent bool
	children []EntityID
}

// Store is the HIR entity/component graph (§3.2). It is the single mutable
// handle the pipeline threads through link/def/code lowering, type checking
// (read-only), and HIR→MIR lowering; computed components memoize onto it,
// which is why even a read-only-looking query takes a *Store.
type Store struct {
	entities []entityRec // index 0 unused, matches internal/ast.Arena's 1-based scheme
	root     EntityID

	symbols     map[EntityID]Symbol
	callables   map[EntityID]Callable
	hasType     map[EntityID]HasType
	hasValue    map[EntityID]HasValue
	structDefs  map[EntityID]StructDefComp
	fields      map[EntityID]FieldComp
	imports     map[EntityID]ImportComp
	globals     map[EntityID]GlobalComp
	constants   map[EntityID]ConstantComp
	typeAliases map[EntityID]TypeAliasComp
	locals      map[EntityID]LocalComp
	tys         map[EntityID]TyComp
	values      map[EntityID]ValueComp
	stmts       map[EntityID]StmtComp
	blocks      map[EntityID]CodeBlockComp

	// Computed component memo caches (§4.1). Populated lazily and never
	// invalidated: the pipeline is append-only after the link pass.
	nsMemo      map[EntityID]Namespace
	staticMemo  map[EntityID]StaticMemberTable
	visibleMemo map[EntityID]EntityID
	mangledMemo map[EntityID]string
	symtableMemo map[EntityID]map[string]EntityID
	primMemo     map[TyKind]TyID
}

// NewStore allocates an empty store and its Root entity as id 1.
func NewStore() *Store {
	s := &Store{
		entities:    make([]entityRec, 1, 64), // index 0 reserved
		symbols:     make(map[EntityID]Symbol),
		callables:   make(map[EntityID]Callable),
		hasType:     make(map[EntityID]HasType),
		hasValue:    make(map[EntityID]HasValue),
		structDefs:  make(map[EntityID]StructDefComp),
		fields:      make(map[EntityID]FieldComp),
		imports:     make(map[EntityID]ImportComp),
		globals:     make(map[EntityID]GlobalComp),
		constants:   make(map[EntityID]ConstantComp),
		typeAliases: make(map[EntityID]TypeAliasComp),
		locals:      make(map[EntityID]LocalComp),
		tys:         make(map[EntityID]TyComp),
		values:      make(map[EntityID]ValueComp),
		stmts:       make(map[EntityID]StmtComp),
		blocks:      make(map[EntityID]CodeBlockComp),
		nsMemo:      make(map[EntityID]Namespace),
		staticMemo:  make(map[EntityID]StaticMemberTable),
		visibleMemo: make(map[EntityID]EntityID),
		mangledMemo: make(map[EntityID]string),
		symtableMemo: make(map[EntityID]map[string]EntityID),
		primMemo:     make(map[TyKind]TyID),
	}
	s.root = s.Create(KindRoot)
	return s
}

func (s *Store) Root() EntityID { return s.root }

// Create allocates a fresh entity with the given kind and no parent. The
// "component constructor" step from §4.1 is expressed in Go as the caller
// following up with AddSymbol/SetCallable/etc; there is no first-class
// constructor value, matching the "discipline by convention" allowance for
// narrowing in languages without phantom types (§9).
func (s *Store) Create(kind EntityKind) EntityID {
	s.entities = append(s.entities, entityRec{kind: kind})
	n, err := safecast.Conv[uint32](len(s.entities) - 1)
	if err != nil {
		panic(err)
	}
	return EntityID(n)
}

// CreateWithParent allocates an entity and links it under parent in one step.
func (s *Store) CreateWithParent(parent EntityID, kind EntityKind) EntityID {
	id := s.Create(kind)
	s.Link(parent, id)
	return id
}

// Link appends child to parent's children and records child's parent. It
// panics if child already has a parent: per §3.2, a second parent is a
// programming error, not a recoverable diagnostic.
func (s *Store) Link(parent, child EntityID) {
	rec := &s.entities[child]
	if rec.hasParent {
		panic("hir: entity already has a parent")
	}
	rec.parent = parent
	rec.hasParent = true
	s.entities[parent].children = append(s.entities[parent].children, child)
}

func (s *Store) Kind(id EntityID) EntityKind {
	if int(id) >= len(s.entities) {
		return KindPlaceholder
	}
	return s.entities[id].kind
}

// Parent returns the entity's parent and whether it has one (Root has none).
func (s *Store) Parent(id EntityID) (EntityID, bool) {
	rec := s.entities[id]
	return rec.parent, rec.hasParent
}

func (s *Store) Children(id EntityID) []EntityID { return s.entities[id].children }

// Entities performs a breadth-first traversal from Root (§4.1 entities()).
func (s *Store) Entities() []EntityID {
	out := make([]EntityID, 0, len(s.entities))
	queue := []EntityID{s.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, id)
		queue = append(queue, s.Children(id)...)
	}
	return out
}

// SearchFor iterates every entity id for which keep reports true: the Go
// stand-in for "search_for<C>(fn)" since there is no single heterogeneous
// component table to filter by type generically.
func (s *Store) SearchFor(keep func(EntityID) bool) []EntityID {
	var out []EntityID
	for _, id := range s.Entities() {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}

// --- Component accessors -----------------------------------------------
//
// Each pair below is the Go rendering of get<C>/try_get<C>/add_component:
// AddX replaces any existing component of that kind (per §4.1); X returns
// the component assuming it is present (infallible per the typed-id
// contract); TryX additionally reports whether it was found.

func (s *Store) AddSymbol(id EntityID, c Symbol) { s.symbols[id] = c }
func (s *Store) Symbol(id EntityID) (Symbol, bool) { c, ok := s.symbols[id]; return c, ok }

func (s *Store) AddCallable(id EntityID, c Callable)   { s.callables[id] = c }
func (s *Store) Callable(id EntityID) (Callable, bool) { c, ok := s.callables[id]; return c, ok }

func (s *Store) AddHasType(id EntityID, c HasType)   { s.hasType[id] = c }
func (s *Store) TryHasType(id EntityID) (HasType, bool) { c, ok := s.hasType[id]; return c, ok }

func (s *Store) AddHasValue(id EntityID, c HasValue)   { s.hasValue[id] = c }
func (s *Store) TryHasValue(id EntityID) (HasValue, bool) { c, ok := s.hasValue[id]; return c, ok }

func (s *Store) AddStructDef(id EntityID, c StructDefComp) { s.structDefs[id] = c }
func (s *Store) StructDef(id EntityID) (StructDefComp, bool) {
	c, ok := s.structDefs[id]
	return c, ok
}

func (s *Store) AddField(id EntityID, c FieldComp) { s.fields[id] = c }
func (s *Store) Field(id EntityID) (FieldComp, bool) { c, ok := s.fields[id]; return c, ok }

func (s *Store) AddImport(id EntityID, c ImportComp) { s.imports[id] = c }
func (s *Store) Import(id EntityID) (ImportComp, bool) { c, ok := s.imports[id]; return c, ok }

func (s *Store) AddGlobal(id EntityID, c GlobalComp) { s.globals[id] = c }
func (s *Store) Global(id EntityID) (GlobalComp, bool) { c, ok := s.globals[id]; return c, ok }

func (s *Store) AddConstant(id EntityID, c ConstantComp) { s.constants[id] = c }
func (s *Store) Constant(id EntityID) (ConstantComp, bool) {
	c, ok := s.constants[id]
	return c, ok
}

func (s *Store) AddTypeAlias(id EntityID, c TypeAliasComp) { s.typeAliases[id] = c }
func (s *Store) TypeAlias(id EntityID) (TypeAliasComp, bool) {
	c, ok := s.typeAliases[id]
	return c, ok
}

func (s *Store) AddLocal(id EntityID, c LocalComp) { s.locals[id] = c }
func (s *Store) Local(id EntityID) (LocalComp, bool) { c, ok := s.locals[id]; return c, ok }

func (s *Store) AddTy(id EntityID, t Ty) { s.tys[id] = TyComp{Ty: t} }
func (s *Store) TyOf(id EntityID) Ty     { return s.tys[id].Ty }

func (s *Store) AddValue(id EntityID, v Value) { s.values[id] = ValueComp{Value: v} }
func (s *Store) ValueOf(id EntityID) Value     { return s.values[id].Value }

func (s *Store) AddStmt(id EntityID, st Stmt) { s.stmts[id] = StmtComp{Stmt: st} }
func (s *Store) StmtOf(id EntityID) Stmt      { return s.stmts[id].Stmt }

func (s *Store) AddCodeBlock(id EntityID, b CodeBlock) { s.blocks[id] = CodeBlockComp{Block: b} }
func (s *Store) CodeBlockOf(id EntityID) CodeBlock     { return s.blocks[id].Block }

// NewTy allocates a KindTy entity carrying t and returns its id, the usual
// shape for building HIR types during lowering.
func (s *Store) NewTy(t Ty) TyID {
	id := s.Create(KindTy)
	s.AddTy(id, t)
	return id
}

// NewValue allocates a KindValue entity carrying v.
func (s *Store) NewValue(v Value) ValueID {
	id := s.Create(KindValue)
	s.AddValue(id, v)
	return id
}

// NewStmt allocates a KindStmt entity carrying st.
func (s *Store) NewStmt(st Stmt) StmtID {
	id := s.Create(KindStmt)
	s.AddStmt(id, st)
	return id
}

// NewCodeBlock allocates a KindCodeBlock entity carrying b.
func (s *Store) NewCodeBlock(b CodeBlock) CodeBlockID {
	id := s.Create(KindCodeBlock)
	s.AddCodeBlock(id, b)
	return id
}

// PrimitiveTy returns a shared, zero-span Ty entity for one of the
// primitive kinds (Unit/Integer/String/Bool/Float/Never), allocating it on
// first use. Builtins, literals, and synthesized placeholders all share
// these rather than allocating a fresh Ty entity per occurrence.
func (s *Store) PrimitiveTy(kind TyKind) TyID {
	if id, ok := s.primMemo[kind]; ok {
		return id
	}
	id := s.NewTy(Ty{Kind: kind})
	s.primMemo[kind] = id
	return id
}
