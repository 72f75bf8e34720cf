package hir

import "ember/internal/source"

// ValueKind tags the sum-typed HIR value (§3.5).
type ValueKind uint8

const (
	ValUnit ValueKind = iota
	ValTuple
	ValLitInteger
	ValLitString
	ValLitBool
	ValLitFloat
	ValLocal
	ValGlobal
	ValFieldOf
	ValTupleMember
	ValStaticFunc
	ValInstanceFunc
	ValBuiltinFunc
	ValInitFor
	ValInvoke
	ValAssign
	ValReturn
	ValIf
	ValWhile
	ValBreak
	ValContinue
)

// ElseKind tags an IfValue's negative arm.
type ElseKind uint8

const (
	ElseNone ElseKind = iota
	ElseBlock
	ElseIf
)

// IfValue is embedded in a Value of kind ValIf.
type IfValue struct {
	Condition ValueID
	Positive  CodeBlockID

	NegativeKind  ElseKind
	NegativeBlock CodeBlockID // ElseBlock
	NegativeIf    ValueID     // ElseIf: another entity of kind ValIf
}

// WhileValue is embedded in a Value of kind ValWhile.
type WhileValue struct {
	HasLabel  bool
	Label     string
	Condition ValueID
	Body      CodeBlockID
}

// Value is the HIR value node, attached to KindValue entities via ValueComp.
// Only the fields relevant to Kind are populated, the same tagged-union-via-
// struct idiom internal/ast.Expr uses for surface expressions.
type Value struct {
	Kind ValueKind
	Ty   TyID
	Span source.Span

	// ValTuple
	TupleItems []ValueID

	// ValLitInteger
	IntValue uint64
	// ValLitFloat
	FloatValue float64
	// ValLitString
	StringValue string
	// ValLitBool
	BoolValue bool

	// ValLocal
	Local LocalID
	// ValGlobal
	Global GlobalID

	// ValFieldOf
	Base  ValueID
	Field FieldID

	// ValTupleMember
	Index int

	// ValStaticFunc
	Func FuncID
	// ValInstanceFunc: Base (above) + Func (above)

	// ValBuiltinFunc
	BuiltinName string

	// ValInitFor
	Struct StructID

	// ValInvoke
	Callee ValueID
	Args   []ValueID

	// ValAssign
	Place ValueID // another Value entity usable as an lvalue
	RHS   ValueID

	// ValReturn
	ReturnValue ValueID

	// ValIf
	If IfValue
	// ValWhile
	While WhileValue

	// ValBreak / ValContinue
	Loop CodeBlockID
}

// StmtKind tags a code block statement (§3.5).
type StmtKind uint8

const (
	StmtValue StmtKind = iota
	StmtBind
)

// Stmt is attached to KindStmt entities via StmtComp.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	// StmtValue
	Value ValueID

	// StmtBind
	Name     string
	NameSpan source.Span
	Local    LocalID
	Ty       TyID
	BindVal  ValueID
}

// CodeBlock is attached to KindCodeBlock entities via CodeBlockComp.
type CodeBlock struct {
	Span  source.Span
	Stmts []StmtID
	Yield ValueID // NoEntityID if the block yields Unit implicitly
}
