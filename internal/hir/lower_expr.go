package hir

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
)

// lowerExpr lowers one surface expression to a HIR Value under table's
// current lexical scope; scope is the entity visibility checks are measured
// against (the enclosing Func, Global, or Constant).
func (lw *Lowerer) lowerExpr(id ast.ExprID, table *SymbolTable, scope EntityID) ValueID {
	e := lw.b.Expr(id)
	switch e.Kind {
	case ast.ExprTuple:
		return lw.lowerTuple(e, table, scope)
	case ast.ExprIntLit:
		return lw.lowerIntLit(e)
	case ast.ExprFloatLit:
		return lw.lowerFloatLit(e)
	case ast.ExprStringLit:
		return lw.lowerStringLit(e)
	case ast.ExprBoolLit:
		return lw.store.NewValue(Value{Kind: ValLitBool, BoolValue: e.BoolValue, Ty: lw.store.PrimitiveTy(TyBool), Span: e.Span})
	case ast.ExprPath:
		return lw.resolvePathAsValue(e.PathSegments, e.Span, table, scope)
	case ast.ExprCall:
		return lw.lowerCall(e, table, scope)
	case ast.ExprMember:
		return lw.lowerMember(e, table, scope)
	case ast.ExprTupleMember:
		return lw.lowerTupleMember(e, table, scope)
	case ast.ExprBinary:
		return lw.lowerBinary(e, table, scope)
	case ast.ExprUnary:
		return lw.lowerUnary(e, table, scope)
	case ast.ExprReturn:
		return lw.lowerReturn(e, table, scope)
	case ast.ExprIf:
		return lw.lowerIf(e, table, scope)
	case ast.ExprWhile:
		return lw.lowerWhile(e, table, scope)
	case ast.ExprBreak:
		return lw.lowerBreak(e)
	case ast.ExprContinue:
		return lw.lowerContinue(e)
	case ast.ExprAssign:
		return lw.lowerAssign(e, table, scope)
	default:
		return lw.placeholderValue(e.Span)
	}
}

func (lw *Lowerer) lowerTuple(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	switch len(e.TupleItems) {
	case 0:
		return lw.store.NewValue(Value{Kind: ValUnit, Ty: lw.store.PrimitiveTy(TyUnit), Span: e.Span})
	case 1:
		return lw.lowerExpr(e.TupleItems[0], table, scope)
	}
	items := make([]ValueID, len(e.TupleItems))
	tys := make([]TyID, len(e.TupleItems))
	for i, it := range e.TupleItems {
		items[i] = lw.lowerExpr(it, table, scope)
		tys[i] = lw.store.ValueOf(items[i]).Ty
	}
	ty := lw.store.NewTy(Ty{Kind: TyTuple, TupleItems: tys, Span: e.Span})
	return lw.store.NewValue(Value{Kind: ValTuple, TupleItems: items, Ty: ty, Span: e.Span})
}

func (lw *Lowerer) lowerIntLit(e *ast.Expr) ValueID {
	v, ok := ParseIntLiteral(e.NumberText)
	if !ok {
		lw.report(diag.ESyntaxError, e.Span, "invalid integer literal "+e.NumberText)
	}
	return lw.store.NewValue(Value{Kind: ValLitInteger, IntValue: v, Ty: lw.store.PrimitiveTy(TyInteger), Span: e.Span})
}

func (lw *Lowerer) lowerFloatLit(e *ast.Expr) ValueID {
	v, ok := ParseFloatLiteral(e.NumberText)
	if !ok {
		lw.report(diag.ESyntaxError, e.Span, "invalid float literal "+e.NumberText)
	}
	return lw.store.NewValue(Value{Kind: ValLitFloat, FloatValue: v, Ty: lw.store.PrimitiveTy(TyFloat), Span: e.Span})
}

func (lw *Lowerer) lowerStringLit(e *ast.Expr) ValueID {
	body := e.StringBody
	if e.StringKind == ast.StringMultiLine {
		body = UnindentMultiline(body)
	}
	if !e.StringRaw {
		body = UnescapeString(body, e.Span, lw.emit)
	}
	return lw.store.NewValue(Value{Kind: ValLitString, StringValue: body, Ty: lw.store.PrimitiveTy(TyString), Span: e.Span})
}

// resolvePathAsValue implements §4.2's path resolution algorithm for a use
// as a value: the first segment through the lexical SymbolTable, later
// segments through StaticMemberTable (with a post-hoc VisibleWithin check
// against scope), synthesizing a fresh Value at the reference site.
func (lw *Lowerer) resolvePathAsValue(segments []string, span source.Span, table *SymbolTable, scope EntityID) ValueID {
	// A bare name no scope binds falls back to the builtin table, so a
	// builtin is callable by name (`add(n, 1)`) as well as via an operator.
	if len(segments) == 1 {
		if _, bound := table.Lookup(segments[0]); !bound {
			if sig, ok := LookupBuiltin(segments[0]); ok {
				params := make([]TyID, len(sig.Params))
				for i, k := range sig.Params {
					params[i] = lw.store.PrimitiveTy(k)
				}
				funcTy := lw.store.NewTy(Ty{Kind: TyFunc, FuncParams: params, FuncReturn: lw.store.PrimitiveTy(sig.Return), Span: span})
				return lw.store.NewValue(Value{Kind: ValBuiltinFunc, BuiltinName: segments[0], Ty: funcTy, Span: span})
			}
		}
	}
	terminal, ok := lw.resolvePath(segments, span, table, scope)
	if !ok {
		return lw.placeholderValue(span)
	}
	return lw.valueForTerminal(terminal, span)
}

func (lw *Lowerer) resolvePath(segments []string, span source.Span, table *SymbolTable, scope EntityID) (EntityID, bool) {
	if len(segments) == 0 {
		return NoEntityID, false
	}
	cur, ok := table.Lookup(segments[0])
	if !ok {
		lw.report(diag.ENotFound, span, "undefined name "+segments[0])
		return NoEntityID, false
	}
	for _, seg := range segments[1:] {
		st := lw.store.StaticMemberTableOf(cur)
		next, ok := st.Members[seg]
		if !ok {
			lw.report(diag.ENotFoundIn, span, "no member "+seg)
			return NoEntityID, false
		}
		if !lw.store.IsAncestorOrSelf(lw.store.VisibleWithin(next), scope) {
			lw.report(diag.ENotVisible, span, seg+" is not visible here")
			return NoEntityID, false
		}
		cur = next
	}
	return cur, true
}

// valueForTerminal synthesizes a fresh Value for a resolved path's terminal
// entity, switching on its EntityKind the way §4.2's "as a value" rule
// requires a HasValue component to exist first.
func (lw *Lowerer) valueForTerminal(terminal EntityID, span source.Span) ValueID {
	// Locals (params and let/var bindings) carry no HasValue component --
	// they're resolved through the lexical SymbolTable, not a namespace --
	// so they're handled before the HasValue gate below applies to everyone else.
	if lw.store.Kind(terminal) == KindLocal {
		lc, _ := lw.store.Local(terminal)
		return lw.store.NewValue(Value{Kind: ValLocal, Local: terminal, Ty: lc.Type, Span: span})
	}
	if _, ok := lw.store.TryHasValue(terminal); !ok {
		lw.report(diag.ENotAValue, span, "not a value")
		return lw.placeholderValue(span)
	}
	switch lw.store.Kind(terminal) {
	case KindFunc:
		ty, _ := lw.store.TryHasType(terminal)
		return lw.store.NewValue(Value{Kind: ValStaticFunc, Func: terminal, Ty: ty.Ty, Span: span})
	case KindGlobal:
		g, _ := lw.store.Global(terminal)
		return lw.store.NewValue(Value{Kind: ValGlobal, Global: terminal, Ty: g.Type, Span: span})
	case KindConstant:
		// A constant is never a mutable Place (isMutablePlace below rejects
		// it); it shares ValGlobal's representation because the language
		// has no dedicated "constant read" value kind.
		c, _ := lw.store.Constant(terminal)
		return lw.store.NewValue(Value{Kind: ValGlobal, Global: terminal, Ty: c.Type, Span: span})
	case KindStructDef:
		return lw.valueForStructInit(terminal, span)
	default:
		lw.report(diag.ENotAValue, span, "not a value")
		return lw.placeholderValue(span)
	}
}

func (lw *Lowerer) valueForStructInit(structID EntityID, span source.Span) ValueID {
	sdef, _ := lw.store.StructDef(structID)
	fieldTys := make([]TyID, len(sdef.Fields))
	for i, f := range sdef.Fields {
		fc, _ := lw.store.Field(f)
		fieldTys[i] = fc.Type
	}
	structTy, _ := lw.store.TryHasType(structID)
	funcTy := lw.store.NewTy(Ty{Kind: TyFunc, FuncParams: fieldTys, FuncReturn: structTy.Ty, Span: span})
	return lw.store.NewValue(Value{Kind: ValInitFor, Struct: structID, Ty: funcTy, Span: span})
}

func (lw *Lowerer) lowerCall(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	callee := lw.lowerExpr(e.Callee, table, scope)
	args := make([]ValueID, len(e.Args))
	for i, a := range e.Args {
		args[i] = lw.lowerExpr(a, table, scope)
	}
	calleeTy := lw.store.TyOf(lw.store.ValueOf(callee).Ty)
	if calleeTy.Kind != TyFunc {
		lw.report(diag.ECantCall, e.Span, "value is not callable")
		return lw.placeholderValue(e.Span)
	}
	return lw.store.NewValue(Value{Kind: ValInvoke, Callee: callee, Args: args, Ty: calleeTy.FuncReturn, Span: e.Span})
}

// lowerMember resolves an instance member access (§4.3 Member): the base
// value's type must be a struct, and name must name one of its fields.
func (lw *Lowerer) lowerMember(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	base := lw.lowerExpr(e.Base, table, scope)
	baseTy := lw.store.TyOf(lw.store.ValueOf(base).Ty)
	if baseTy.Kind != TyStructDef {
		lw.report(diag.EMemberNotAValue, e.Span, "value has no members")
		return lw.placeholderValue(e.Span)
	}
	sdef, _ := lw.store.StructDef(baseTy.StructDef)
	for _, f := range sdef.Fields {
		fc, _ := lw.store.Field(f)
		if fc.Name == e.Name {
			return lw.store.NewValue(Value{Kind: ValFieldOf, Base: base, Field: f, Ty: fc.Type, Span: e.Span})
		}
	}
	lw.report(diag.ENoMemberOn, e.Span, "no member "+e.Name)
	return lw.placeholderValue(e.Span)
}

func (lw *Lowerer) lowerTupleMember(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	base := lw.lowerExpr(e.Base, table, scope)
	baseTy := lw.store.TyOf(lw.store.ValueOf(base).Ty)
	if baseTy.Kind != TyTuple || e.Index < 0 || e.Index >= len(baseTy.TupleItems) {
		lw.report(diag.ETupleIndexBounds, e.Span, "tuple index out of bounds")
		return lw.placeholderValue(e.Span)
	}
	return lw.store.NewValue(Value{Kind: ValTupleMember, Base: base, Index: e.Index, Ty: baseTy.TupleItems[e.Index], Span: e.Span})
}

// binFamily names, per operand type, which builtin a surface binary
// operator dispatches to -- the same operator lowers to a different
// intrinsic depending on whether its operands are int/float/bool/string
// (§4.5/§4.6), which is why this isn't a flat ast.BinaryOp -> name map.
type binFamily struct {
	int_, float_, bool_, string_ string
}

func (f binFamily) forKind(k TyKind) string {
	switch k {
	case TyInteger:
		return f.int_
	case TyFloat:
		return f.float_
	case TyBool:
		return f.bool_
	case TyString:
		return f.string_
	default:
		return ""
	}
}

var binFamilies = map[ast.BinaryOp]binFamily{
	ast.OpAdd:    {int_: "add", float_: "fadd", string_: "concat"},
	ast.OpSub:    {int_: "sub", float_: "fsub"},
	ast.OpMul:    {int_: "mul", float_: "fmul"},
	ast.OpDiv:    {int_: "div", float_: "fdiv"},
	ast.OpRem:    {int_: "rem", float_: "frem"},
	ast.OpShl:    {int_: "left_shift"},
	ast.OpShr:    {int_: "right_shift"},
	ast.OpBitAnd: {int_: "bitand"},
	ast.OpBitOr:  {int_: "bitor"},
	ast.OpBitXor: {int_: "bitxor"},
	ast.OpAnd:    {bool_: "and"},
	ast.OpOr:     {bool_: "or"},
	ast.OpXor:    {bool_: "xor"},
	ast.OpEq:     {int_: "eq_int", float_: "eq_float", bool_: "eq_bool", string_: "eq_str"},
	ast.OpNeq:    {int_: "neq_int", float_: "neq_float", bool_: "neq_bool", string_: "neq_str"},
	ast.OpLt:     {int_: "lt_int"},
	ast.OpLeq:    {int_: "leq_int"},
	ast.OpGt:     {int_: "gt_int"},
	ast.OpGeq:    {int_: "geq_int"},
	ast.OpConcat: {string_: "concat"},
}

var unFamilies = map[ast.UnaryOp]map[TyKind]string{
	ast.OpNot:    {TyBool: "not"},
	ast.OpBitNot: {TyInteger: "bitnot"},
	ast.OpNegate: {TyInteger: "negate", TyFloat: "negate_float"},
}

func (lw *Lowerer) lowerBinary(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	lhs := lw.lowerExpr(e.Lhs, table, scope)
	rhs := lw.lowerExpr(e.Rhs, table, scope)
	fam := binFamilies[e.BinOp]
	name := fam.forKind(lw.store.TyOf(lw.store.ValueOf(lhs).Ty).Kind)
	if name == "" {
		lw.report(diag.ECantCall, e.Span, "operator not defined for operand type")
		return lw.placeholderValue(e.Span)
	}
	return lw.invokeBuiltin(name, []ValueID{lhs, rhs}, e.Span)
}

func (lw *Lowerer) lowerUnary(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	operand := lw.lowerExpr(e.Operand, table, scope)
	opKind := lw.store.TyOf(lw.store.ValueOf(operand).Ty).Kind
	name := unFamilies[e.UnOp][opKind]
	if name == "" {
		lw.report(diag.ECantCall, e.Span, "operator not defined for operand type")
		return lw.placeholderValue(e.Span)
	}
	return lw.invokeBuiltin(name, []ValueID{operand}, e.Span)
}

// invokeBuiltin synthesizes a ValBuiltinFunc callee typed as an ordinary
// Func(params, ret), so internal/sema's call-site checks (arity and
// argument types) apply to builtins exactly as they do to user-defined
// functions.
func (lw *Lowerer) invokeBuiltin(name string, args []ValueID, span source.Span) ValueID {
	sig, ok := LookupBuiltin(name)
	if !ok {
		lw.report(diag.ECantCall, span, "unknown builtin "+name)
		return lw.placeholderValue(span)
	}
	params := make([]TyID, len(sig.Params))
	for i, k := range sig.Params {
		params[i] = lw.store.PrimitiveTy(k)
	}
	retTy := lw.store.PrimitiveTy(sig.Return)
	funcTy := lw.store.NewTy(Ty{Kind: TyFunc, FuncParams: params, FuncReturn: retTy, Span: span})
	callee := lw.store.NewValue(Value{Kind: ValBuiltinFunc, BuiltinName: name, Ty: funcTy, Span: span})
	return lw.store.NewValue(Value{Kind: ValInvoke, Callee: callee, Args: args, Ty: retTy, Span: span})
}

func (lw *Lowerer) lowerReturn(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	var val ValueID
	if e.Value.IsValid() {
		val = lw.lowerExpr(e.Value, table, scope)
	} else {
		val = lw.store.NewValue(Value{Kind: ValUnit, Ty: lw.store.PrimitiveTy(TyUnit), Span: e.Span})
	}
	return lw.store.NewValue(Value{Kind: ValReturn, ReturnValue: val, Ty: lw.store.PrimitiveTy(TyNever), Span: e.Span})
}

// lowerIf lowers an if-expression; its own value always types as Unit (the
// language has no surface use of an if-expression's yielded value, so
// branch-type reconciliation isn't needed).
func (lw *Lowerer) lowerIf(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	cond := lw.lowerExpr(e.Cond, table, scope)
	positive := lw.lowerBlockScoped(e.Then, table, scope)
	iv := IfValue{Condition: cond, Positive: positive}
	switch e.ElseKind {
	case ast.ElseBlock:
		iv.NegativeKind = ElseBlock
		iv.NegativeBlock = lw.lowerBlockScoped(e.ElseBody, table, scope)
	case ast.ElseChain:
		iv.NegativeKind = ElseIf
		iv.NegativeIf = lw.lowerExpr(e.ElseIf, table, scope)
	default:
		iv.NegativeKind = ElseNone
	}
	return lw.store.NewValue(Value{Kind: ValIf, If: iv, Ty: lw.store.PrimitiveTy(TyUnit), Span: e.Span})
}

func (lw *Lowerer) lowerBlockScoped(cbID ast.CodeBlockID, table *SymbolTable, scope EntityID) CodeBlockID {
	table.Push()
	defer table.Pop()
	return lw.lowerCodeBlock(cbID, table, scope)
}

// loopLabel records one active while loop for Break/Continue resolution.
type loopLabel struct {
	hasLabel bool
	name     string
	block    CodeBlockID
}

// lowerWhile pre-allocates the loop's CodeBlockID before lowering its body,
// so a nested Break/Continue can reference it before the body's own
// statements/yield are known.
func (lw *Lowerer) lowerWhile(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	cond := lw.lowerExpr(e.WhileCond, table, scope)
	blockID := lw.store.Create(KindCodeBlock)
	lw.labels = append(lw.labels, loopLabel{hasLabel: e.HasLabel, name: e.Label, block: blockID})

	table.Push()
	stmts, yield := lw.lowerCodeBlockBody(e.Body, table, scope)
	table.Pop()
	lw.labels = lw.labels[:len(lw.labels)-1]

	bodySpan := lw.b.CodeBlock(e.Body).Span
	lw.store.AddCodeBlock(blockID, CodeBlock{Span: bodySpan, Stmts: stmts, Yield: yield})

	wv := WhileValue{HasLabel: e.HasLabel, Label: e.Label, Condition: cond, Body: blockID}
	return lw.store.NewValue(Value{Kind: ValWhile, While: wv, Ty: lw.store.PrimitiveTy(TyUnit), Span: e.Span})
}

func (lw *Lowerer) lowerBreak(e *ast.Expr) ValueID {
	block, ok := lw.findLabel(e.TargetLabel, e.HasTarget)
	if !ok {
		code := diag.EBreakOutsideLoop
		if e.HasTarget {
			code = diag.EUndefinedBreakLabel
		}
		lw.report(code, e.Span, "break outside of a loop")
		return lw.placeholderValue(e.Span)
	}
	return lw.store.NewValue(Value{Kind: ValBreak, Loop: block, Ty: lw.store.PrimitiveTy(TyNever), Span: e.Span})
}

func (lw *Lowerer) lowerContinue(e *ast.Expr) ValueID {
	block, ok := lw.findLabel(e.TargetLabel, e.HasTarget)
	if !ok {
		code := diag.EContinueOutsideLoop
		if e.HasTarget {
			code = diag.EUndefinedContLabel
		}
		lw.report(code, e.Span, "continue outside of a loop")
		return lw.placeholderValue(e.Span)
	}
	return lw.store.NewValue(Value{Kind: ValContinue, Loop: block, Ty: lw.store.PrimitiveTy(TyNever), Span: e.Span})
}

func (lw *Lowerer) findLabel(name string, hasTarget bool) (CodeBlockID, bool) {
	if !hasTarget {
		if len(lw.labels) == 0 {
			return NoEntityID, false
		}
		return lw.labels[len(lw.labels)-1].block, true
	}
	for i := len(lw.labels) - 1; i >= 0; i-- {
		if lw.labels[i].hasLabel && lw.labels[i].name == name {
			return lw.labels[i].block, true
		}
	}
	return NoEntityID, false
}

func (lw *Lowerer) lowerAssign(e *ast.Expr, table *SymbolTable, scope EntityID) ValueID {
	place := lw.lowerExpr(e.Base, table, scope)
	rhs := lw.lowerExpr(e.Value, table, scope)
	if !lw.isMutablePlace(place) {
		lw.report(diag.ENotMutable, e.Span, "assignment target is not mutable")
	}
	return lw.store.NewValue(Value{Kind: ValAssign, Place: place, RHS: rhs, Ty: lw.store.PrimitiveTy(TyUnit), Span: e.Span})
}

// isMutablePlace walks through FieldOf/TupleMember projections to the
// underlying Local/Global, since assigning through `s.field = x` is only
// valid when the base storage itself is mutable.
func (lw *Lowerer) isMutablePlace(v ValueID) bool {
	val := lw.store.ValueOf(v)
	switch val.Kind {
	case ValLocal:
		lc, _ := lw.store.Local(val.Local)
		return lc.Mutable
	case ValGlobal:
		return lw.store.Kind(val.Global) == KindGlobal
	case ValFieldOf:
		return lw.isMutablePlace(val.Base)
	case ValTupleMember:
		return lw.isMutablePlace(val.Base)
	default:
		return false
	}
}
