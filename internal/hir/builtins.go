package hir

// BinaryIntrinsic tags a two-operand primitive operation a MIR Binary
// immediate dispatches on (§4.5, §4.6). Defined here rather than in
// internal/mir because the builtin table below -- which both the AST
// lowerer (to type a call) and the MIR lowerer (to pick a dispatch target)
// need -- is itself an HIR-lowering concern.
type BinaryIntrinsic uint8

const (
	BinAdd BinaryIntrinsic = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinShl
	BinShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinAnd
	BinOr
	BinXor
	BinEqInt
	BinNeqInt
	BinLtInt
	BinLeqInt
	BinGtInt
	BinGeqInt
	BinEqFloat
	BinNeqFloat
	BinEqBool
	BinNeqBool
	BinEqStr
	BinNeqStr
	BinFAdd
	BinFSub
	BinFMul
	BinFDiv
	BinFRem
	BinFPow
	BinConcat
)

// UnaryIntrinsic tags a one-operand primitive operation.
type UnaryIntrinsic uint8

const (
	UnNot UnaryIntrinsic = iota
	UnBitNot
	UnLen
	UnPrint
	UnParseInt
	UnFormatInt
	UnParseBool
	UnFormatBool
	UnParseFloat
	UnFormatFloat
	UnFloor
	UnCeil
	UnToFloat
	UnIdentity
	UnIdentityFloat
	UnNegate
	UnNegateFloat
)

// BuiltinSig describes one entry of the fixed builtin-name table (§4.5,
// SPEC_FULL supplement #1, grounded on firefly-hir-lower/src/value/builtins.rs).
// Exactly one of BinOp/UnOp is meaningful, selected by Binary.
type BuiltinSig struct {
	Binary  bool
	BinOp   BinaryIntrinsic
	UnOp    UnaryIntrinsic
	Params  []TyKind
	Return  TyKind
}

var builtinTable = map[string]BuiltinSig{
	// Integer comparisons.
	"eq_int":  {Binary: true, BinOp: BinEqInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},
	"neq_int": {Binary: true, BinOp: BinNeqInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},
	"lt_int":  {Binary: true, BinOp: BinLtInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},
	"leq_int": {Binary: true, BinOp: BinLeqInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},
	"gt_int":  {Binary: true, BinOp: BinGtInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},
	"geq_int": {Binary: true, BinOp: BinGeqInt, Params: []TyKind{TyInteger, TyInteger}, Return: TyBool},

	// eq/neq siblings for float, bool, string.
	"eq_float":  {Binary: true, BinOp: BinEqFloat, Params: []TyKind{TyFloat, TyFloat}, Return: TyBool},
	"neq_float": {Binary: true, BinOp: BinNeqFloat, Params: []TyKind{TyFloat, TyFloat}, Return: TyBool},
	"eq_bool":   {Binary: true, BinOp: BinEqBool, Params: []TyKind{TyBool, TyBool}, Return: TyBool},
	"neq_bool":  {Binary: true, BinOp: BinNeqBool, Params: []TyKind{TyBool, TyBool}, Return: TyBool},
	"eq_str":    {Binary: true, BinOp: BinEqStr, Params: []TyKind{TyString, TyString}, Return: TyBool},
	"neq_str":   {Binary: true, BinOp: BinNeqStr, Params: []TyKind{TyString, TyString}, Return: TyBool},

	// Integer arithmetic, shifts, bitwise.
	"add":         {Binary: true, BinOp: BinAdd, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"sub":         {Binary: true, BinOp: BinSub, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"mul":         {Binary: true, BinOp: BinMul, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"div":         {Binary: true, BinOp: BinDiv, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"rem":         {Binary: true, BinOp: BinRem, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"left_shift":  {Binary: true, BinOp: BinShl, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"right_shift": {Binary: true, BinOp: BinShr, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"bitand":      {Binary: true, BinOp: BinBitAnd, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"bitor":       {Binary: true, BinOp: BinBitOr, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},
	"bitxor":      {Binary: true, BinOp: BinBitXor, Params: []TyKind{TyInteger, TyInteger}, Return: TyInteger},

	// Float arithmetic.
	"fadd": {Binary: true, BinOp: BinFAdd, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},
	"fsub": {Binary: true, BinOp: BinFSub, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},
	"fmul": {Binary: true, BinOp: BinFMul, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},
	"fdiv": {Binary: true, BinOp: BinFDiv, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},
	"frem": {Binary: true, BinOp: BinFRem, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},
	"fpow": {Binary: true, BinOp: BinFPow, Params: []TyKind{TyFloat, TyFloat}, Return: TyFloat},

	// Boolean logic.
	"and": {Binary: true, BinOp: BinAnd, Params: []TyKind{TyBool, TyBool}, Return: TyBool},
	"or":  {Binary: true, BinOp: BinOr, Params: []TyKind{TyBool, TyBool}, Return: TyBool},
	"xor": {Binary: true, BinOp: BinXor, Params: []TyKind{TyBool, TyBool}, Return: TyBool},

	// String.
	"concat": {Binary: true, BinOp: BinConcat, Params: []TyKind{TyString, TyString}, Return: TyString},

	// Unary.
	"not":           {UnOp: UnNot, Params: []TyKind{TyBool}, Return: TyBool},
	"bitnot":        {UnOp: UnBitNot, Params: []TyKind{TyInteger}, Return: TyInteger},
	"len":           {UnOp: UnLen, Params: []TyKind{TyString}, Return: TyInteger},
	"print":         {UnOp: UnPrint, Params: []TyKind{TyString}, Return: TyUnit},
	"parse_int":     {UnOp: UnParseInt, Params: []TyKind{TyString}, Return: TyInteger},
	"format_int":    {UnOp: UnFormatInt, Params: []TyKind{TyInteger}, Return: TyString},
	"parse_bool":    {UnOp: UnParseBool, Params: []TyKind{TyString}, Return: TyBool},
	"format_bool":   {UnOp: UnFormatBool, Params: []TyKind{TyBool}, Return: TyString},
	"parse_float":   {UnOp: UnParseFloat, Params: []TyKind{TyString}, Return: TyFloat},
	"format_float":  {UnOp: UnFormatFloat, Params: []TyKind{TyFloat}, Return: TyString},
	"floor":         {UnOp: UnFloor, Params: []TyKind{TyFloat}, Return: TyFloat},
	"ceil":          {UnOp: UnCeil, Params: []TyKind{TyFloat}, Return: TyFloat},
	"to_float":      {UnOp: UnToFloat, Params: []TyKind{TyInteger}, Return: TyFloat},
	"identity":      {UnOp: UnIdentity, Params: []TyKind{TyInteger}, Return: TyInteger},
	"identity_float": {UnOp: UnIdentityFloat, Params: []TyKind{TyFloat}, Return: TyFloat},
	"negate":        {UnOp: UnNegate, Params: []TyKind{TyInteger}, Return: TyInteger},
	"negate_float":  {UnOp: UnNegateFloat, Params: []TyKind{TyFloat}, Return: TyFloat},
}

// LookupBuiltin returns the signature for a builtin function name.
func LookupBuiltin(name string) (BuiltinSig, bool) {
	sig, ok := builtinTable[name]
	return sig, ok
}
