package interp

import (
	"fmt"

	"ember/internal/mir"
)

// Fault is a runtime failure the interpreter cannot recover from (§4.6:
// "division by zero is a fatal interpreter fault"): a parse_* builtin given
// malformed input, an integer divide/remainder by zero, or a call to a
// function that does not exist or has no blocks.
type Fault struct {
	Message string
}

func (f *Fault) Error() string { return f.Message }

func fault(format string, args ...any) *Fault {
	return &Fault{Message: fmt.Sprintf(format, args...)}
}

// Interpreter tree-walks one mir.Context (§4.6): a single process-wide
// global frame built once at construction, then one fresh Frame per call,
// recursively, for every mir.ImmCall it evaluates.
type Interpreter struct {
	ctx     *mir.Context
	globals *Frame
}

// New builds an Interpreter and evaluates every global's initializer, in
// declaration order, into the process-wide global frame.
func New(ctx *mir.Context) (*Interpreter, error) {
	in := &Interpreter{ctx: ctx, globals: &Frame{Locals: make([]Value, len(ctx.Globals))}}
	for i, g := range ctx.Globals {
		v, err := in.evalImmediate(nil, g.Init)
		if err != nil {
			return nil, fmt.Errorf("initializing global %s: %w", g.MangledName, err)
		}
		in.globals.Locals[i] = v
	}
	return in, nil
}

// RunFunc looks up a function by its mangled name and calls it with args.
func (in *Interpreter) RunFunc(mangledName string, args []Value) (Value, error) {
	for _, f := range in.ctx.Funcs {
		if f.MangledName == mangledName {
			return in.call(f, args)
		}
	}
	return Value{}, fault("no such function %q", mangledName)
}

// call recursively executes fn with the given already-evaluated arguments
// (§4.6: "Call evaluates arguments left-to-right, recursively executes the
// called function with a fresh frame").
func (in *Interpreter) call(fn mir.Function, args []Value) (Value, error) {
	fr := NewFrame(fn)
	for i, a := range args {
		fr.Set(fn.ParamLocals[i], a.clone())
	}

	if len(fn.Blocks) == 0 {
		return Value{}, fault("function %s has no blocks", fn.MangledName)
	}
	bid := fn.Blocks[0]
	for {
		b := in.ctx.Block(bid)
		for _, instr := range b.Instrs {
			if err := in.execInstr(fr, instr); err != nil {
				return Value{}, err
			}
		}
		switch b.Term.Kind {
		case mir.TermBranch:
			bid = b.Term.Target
		case mir.TermBranchIf:
			cond, err := in.evalImmediate(fr, b.Term.Cond)
			if err != nil {
				return Value{}, err
			}
			if cond.Bool {
				bid = b.Term.Then
			} else {
				bid = b.Term.Else
			}
		case mir.TermReturn:
			return in.evalImmediate(fr, b.Term.Value)
		case mir.TermReturnVoid:
			return UndefinedValue(), nil
		default:
			return UndefinedValue(), nil
		}
	}
}

func (in *Interpreter) execInstr(fr *Frame, instr mir.Instr) error {
	switch instr.Kind {
	case mir.InstrAssign:
		v, err := in.evalImmediate(fr, instr.Val)
		if err != nil {
			return err
		}
		return in.assign(fr, instr.Dst, v)
	case mir.InstrEval:
		_, err := in.evalImmediate(fr, instr.Val)
		return err
	default:
		return fault("unknown instruction kind %v", instr.Kind)
	}
}

// readPlace follows a Place's root plus projection chain, indexing into
// Tuple/Struct Fields at each step.
func (in *Interpreter) readPlace(fr *Frame, p mir.Place) (Value, error) {
	var v Value
	switch p.Kind {
	case mir.PlaceLocal:
		v = fr.Get(p.Local)
	case mir.PlaceGlobal:
		v = in.globals.Locals[p.Global-1]
	default:
		return Value{}, fault("unknown place kind %v", p.Kind)
	}
	for _, idx := range p.Proj {
		if idx < 0 || idx >= len(v.Fields) {
			return Value{}, fault("projection index %d out of range", idx)
		}
		v = v.Fields[idx]
	}
	return v, nil
}

// assign writes val through a Place's projection chain, copy-on-write at
// every level so sibling fields of the same aggregate are never aliased.
func (in *Interpreter) assign(fr *Frame, p mir.Place, val Value) error {
	var root *Value
	switch p.Kind {
	case mir.PlaceLocal:
		root = &fr.Locals[p.Local-1]
	case mir.PlaceGlobal:
		root = &in.globals.Locals[p.Global-1]
	default:
		return fault("unknown place kind %v", p.Kind)
	}
	if len(p.Proj) == 0 {
		*root = val
		return nil
	}
	cur := root
	for _, idx := range p.Proj[:len(p.Proj)-1] {
		if idx < 0 || idx >= len(cur.Fields) {
			return fault("projection index %d out of range", idx)
		}
		cur = &cur.Fields[idx]
	}
	last := p.Proj[len(p.Proj)-1]
	if last < 0 || last >= len(cur.Fields) {
		return fault("projection index %d out of range", last)
	}
	cur.Fields[last] = val
	return nil
}

// evalImmediate is the expression evaluator (§4.6's "immediate evaluation"):
// fr is nil only while evaluating a global initializer, which cannot itself
// reference a local.
func (in *Interpreter) evalImmediate(fr *Frame, imm mir.Immediate) (Value, error) {
	switch imm.Kind {
	case mir.ImmVoid:
		return VoidValue(), nil

	case mir.ImmConstant:
		switch imm.ConstKind {
		case mir.ConstInteger:
			return IntValue(imm.IntValue), nil
		case mir.ConstBool:
			return BoolValue(imm.BoolValue), nil
		case mir.ConstFloat:
			return FloatValue(imm.FloatValue), nil
		case mir.ConstString:
			return StringValue(imm.StringValue), nil
		default:
			return Value{}, fault("unknown constant kind %v", imm.ConstKind)
		}

	case mir.ImmMove:
		v, err := in.readPlace(fr, imm.Place)
		if err != nil {
			return Value{}, err
		}
		return v.clone(), nil

	case mir.ImmTuple:
		items := make([]Value, len(imm.TupleItems))
		for i, it := range imm.TupleItems {
			v, err := in.evalImmediate(fr, it)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{Kind: ValueTuple, Fields: items}, nil

	case mir.ImmStructInit:
		fields := make([]Value, len(imm.StructArgs))
		for i, a := range imm.StructArgs {
			v, err := in.evalImmediate(fr, a)
			if err != nil {
				return Value{}, err
			}
			fields[i] = v
		}
		return Value{Kind: ValueStruct, Fields: fields}, nil

	case mir.ImmCall:
		fn := in.ctx.Func(imm.Func)
		args := make([]Value, len(imm.Args))
		for i, a := range imm.Args {
			v, err := in.evalImmediate(fr, a)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return in.call(*fn, args)

	case mir.ImmBinary:
		lhs, err := in.evalImmediate(fr, *imm.Lhs)
		if err != nil {
			return Value{}, err
		}
		rhs, err := in.evalImmediate(fr, *imm.Rhs)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(imm.BinOp, lhs, rhs)

	case mir.ImmUnary:
		operand, err := in.evalImmediate(fr, *imm.Operand)
		if err != nil {
			return Value{}, err
		}
		return evalUnary(imm.UnOp, operand)

	default:
		return Value{}, fault("unknown immediate kind %v", imm.Kind)
	}
}
