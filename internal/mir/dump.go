package mir

import (
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/hir"
)

// Dump renders every function, struct shell and global in ctx as the
// default `--dump-mir` text encoding: one block per function, instructions
// and a terminator per basic block. Block headers and branch targets both
// use the per-function bb0/bb1/... numbering (Block.Seq) that Validate's
// messages use.
func (c *Context) Dump() string {
	var sb strings.Builder
	for _, s := range c.Structs {
		fmt.Fprintf(&sb, "struct %s { %d fields }\n", s.MangledName, len(s.FieldTypes))
	}
	for _, g := range c.Globals {
		fmt.Fprintf(&sb, "global %s: %s\n", g.MangledName, immString(g.Init))
	}
	for _, f := range c.Funcs {
		c.dumpFunc(&sb, f)
	}
	return sb.String()
}

func (c *Context) dumpFunc(sb *strings.Builder, f Function) {
	fmt.Fprintf(sb, "func %s(%d params, %d locals):\n", f.MangledName, len(f.Params), len(f.Locals))
	for _, bid := range f.Blocks {
		b := c.Block(bid)
		fmt.Fprintf(sb, "  bb%d:\n", b.Seq)
		for _, instr := range b.Instrs {
			sb.WriteString("    ")
			sb.WriteString(instrString(instr))
			sb.WriteByte('\n')
		}
		sb.WriteString("    ")
		sb.WriteString(c.termString(b.Term))
		sb.WriteByte('\n')
	}
}

func instrString(i Instr) string {
	switch i.Kind {
	case InstrAssign:
		return fmt.Sprintf("%s = %s", placeString(i.Dst), immString(i.Val))
	case InstrEval:
		return immString(i.Val)
	default:
		return "<bad instr>"
	}
}

func (c *Context) termString(t Terminator) string {
	switch t.Kind {
	case TermBranch:
		return fmt.Sprintf("branch bb%d", c.Block(t.Target).Seq)
	case TermBranchIf:
		return fmt.Sprintf("branch_if %s, bb%d, bb%d", immString(t.Cond), c.Block(t.Then).Seq, c.Block(t.Else).Seq)
	case TermReturn:
		return fmt.Sprintf("return %s", immString(t.Value))
	case TermReturnVoid:
		return "return_void"
	default:
		return "<unterminated>"
	}
}

func placeString(p Place) string {
	var base string
	switch p.Kind {
	case PlaceLocal:
		base = fmt.Sprintf("_%d", p.Local)
	case PlaceGlobal:
		base = fmt.Sprintf("g%d", p.Global)
	}
	for _, idx := range p.Proj {
		base += fmt.Sprintf(".%d", idx)
	}
	return base
}

func immString(im Immediate) string {
	switch im.Kind {
	case ImmVoid:
		return "void"
	case ImmConstant:
		switch im.ConstKind {
		case ConstInteger:
			return fmt.Sprintf("%d", im.IntValue)
		case ConstBool:
			return fmt.Sprintf("%t", im.BoolValue)
		case ConstFloat:
			return fmt.Sprintf("%g", im.FloatValue)
		case ConstString:
			return fmt.Sprintf("%q", im.StringValue)
		default:
			return "<bad const>"
		}
	case ImmMove:
		return "move " + placeString(im.Place)
	case ImmCall:
		args := make([]string, len(im.Args))
		for i, a := range im.Args {
			args[i] = immString(a)
		}
		return fmt.Sprintf("call f%d(%s)", im.Func, strings.Join(args, ", "))
	case ImmBinary:
		return fmt.Sprintf("%s(%s, %s)", binOpName(im.BinOp), immString(*im.Lhs), immString(*im.Rhs))
	case ImmUnary:
		return fmt.Sprintf("%s(%s)", unOpName(im.UnOp), immString(*im.Operand))
	case ImmTuple:
		items := make([]string, len(im.TupleItems))
		for i, it := range im.TupleItems {
			items[i] = immString(it)
		}
		return "(" + strings.Join(items, ", ") + ")"
	case ImmStructInit:
		args := make([]string, len(im.StructArgs))
		for i, a := range im.StructArgs {
			args[i] = immString(a)
		}
		return fmt.Sprintf("init s%d(%s)", im.Struct, strings.Join(args, ", "))
	default:
		return "<bad immediate>"
	}
}

func binOpName(op hir.BinaryIntrinsic) string {
	if name, ok := binOpNames[op]; ok {
		return name
	}
	return "bin?"
}

func unOpName(op hir.UnaryIntrinsic) string {
	if name, ok := unOpNames[op]; ok {
		return name
	}
	return "un?"
}

// binOpNames/unOpNames invert internal/hir's builtin table for display only
// -- the interpreter and MIR lowering never consult these, they dispatch on
// the enum value directly.
var binOpNames = map[hir.BinaryIntrinsic]string{
	hir.BinAdd: "add", hir.BinSub: "sub", hir.BinMul: "mul", hir.BinDiv: "div", hir.BinRem: "rem",
	hir.BinShl: "shl", hir.BinShr: "shr", hir.BinBitAnd: "bitand", hir.BinBitOr: "bitor", hir.BinBitXor: "bitxor",
	hir.BinAnd: "and", hir.BinOr: "or", hir.BinXor: "xor",
	hir.BinEqInt: "eq_int", hir.BinNeqInt: "neq_int", hir.BinLtInt: "lt_int", hir.BinLeqInt: "leq_int",
	hir.BinGtInt: "gt_int", hir.BinGeqInt: "geq_int",
	hir.BinEqFloat: "eq_float", hir.BinNeqFloat: "neq_float",
	hir.BinEqBool: "eq_bool", hir.BinNeqBool: "neq_bool",
	hir.BinEqStr: "eq_str", hir.BinNeqStr: "neq_str",
	hir.BinFAdd: "fadd", hir.BinFSub: "fsub", hir.BinFMul: "fmul", hir.BinFDiv: "fdiv", hir.BinFRem: "frem", hir.BinFPow: "fpow",
	hir.BinConcat: "concat",
}

var unOpNames = map[hir.UnaryIntrinsic]string{
	hir.UnNot: "not", hir.UnBitNot: "bitnot", hir.UnLen: "len", hir.UnPrint: "print",
	hir.UnParseInt: "parse_int", hir.UnFormatInt: "format_int",
	hir.UnParseBool: "parse_bool", hir.UnFormatBool: "format_bool",
	hir.UnParseFloat: "parse_float", hir.UnFormatFloat: "format_float",
	hir.UnFloor: "floor", hir.UnCeil: "ceil", hir.UnToFloat: "to_float",
	hir.UnIdentity: "identity", hir.UnIdentityFloat: "identity_float",
	hir.UnNegate: "negate", hir.UnNegateFloat: "negate_float",
}

// Snapshot is the msgpack-serializable rendering of a Context
// (`--dump-mir --format=msgpack`): one flattened record per function, each
// holding its blocks pre-rendered as text lines rather than a nested
// Instr/Terminator tree, since the dump's only consumer is a human or a
// diff tool, not a re-loader (the core excludes module caching).
type Snapshot struct {
	Structs []string
	Globals []string
	Funcs   []FuncSnapshot
}

type FuncSnapshot struct {
	MangledName string
	NumParams   int
	NumLocals   int
	Blocks      []BlockSnapshot
}

type BlockSnapshot struct {
	Seq          uint32
	Instructions []string
	Terminator   string
}

// ToSnapshot flattens ctx into its msgpack-ready form.
func (c *Context) ToSnapshot() Snapshot {
	snap := Snapshot{
		Structs: make([]string, len(c.Structs)),
		Globals: make([]string, len(c.Globals)),
		Funcs:   make([]FuncSnapshot, len(c.Funcs)),
	}
	for i, s := range c.Structs {
		snap.Structs[i] = fmt.Sprintf("%s(%d fields)", s.MangledName, len(s.FieldTypes))
	}
	for i, g := range c.Globals {
		snap.Globals[i] = fmt.Sprintf("%s: %s", g.MangledName, immString(g.Init))
	}
	for i, f := range c.Funcs {
		fs := FuncSnapshot{MangledName: f.MangledName, NumParams: len(f.Params), NumLocals: len(f.Locals)}
		for _, bid := range f.Blocks {
			b := c.Block(bid)
			bs := BlockSnapshot{Seq: b.Seq, Terminator: c.termString(b.Term)}
			for _, instr := range b.Instrs {
				bs.Instructions = append(bs.Instructions, instrString(instr))
			}
			fs.Blocks = append(fs.Blocks, bs)
		}
		snap.Funcs[i] = fs
	}
	return snap
}

// EncodeMsgpack writes ctx's Snapshot to w.
func (c *Context) EncodeMsgpack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(c.ToSnapshot())
}
