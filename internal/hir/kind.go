package hir

// EntityKind tags what role an entity plays; see §3.3 for the closed set.
// An entity's kind transitions exactly once, from Placeholder to its final
// value, assigned at creation time (the spec's "base component").
type EntityKind uint8

const (
	KindPlaceholder EntityKind = iota
	KindRoot
	KindModule
	KindSourceFile
	KindStructDef
	KindField
	KindFunc
	KindTypeAlias
	KindImport
	KindGlobal
	KindTy
	KindValue
	KindStmt
	KindCodeBlock
	KindConstant
	KindLocal
)

func (k EntityKind) String() string {
	switch k {
	case KindPlaceholder:
		return "placeholder"
	case KindRoot:
		return "root"
	case KindModule:
		return "module"
	case KindSourceFile:
		return "source-file"
	case KindStructDef:
		return "struct"
	case KindField:
		return "field"
	case KindFunc:
		return "func"
	case KindTypeAlias:
		return "type-alias"
	case KindImport:
		return "import"
	case KindGlobal:
		return "global"
	case KindTy:
		return "ty"
	case KindValue:
		return "value"
	case KindStmt:
		return "stmt"
	case KindCodeBlock:
		return "code-block"
	case KindConstant:
		return "constant"
	case KindLocal:
		return "local"
	default:
		return "unknown"
	}
}

// isPassthrough reports whether an entity kind is transparent to
// Namespace/StaticMemberTable: its symbol-carrying children are listed as if
// they were children of its parent. Only source files are passthrough; a
// nested module is not. See computed_namespace.go.
func (k EntityKind) isPassthrough() bool {
	return k == KindSourceFile
}
