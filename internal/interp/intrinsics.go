package interp

import (
	"io"
	"math"
	"strconv"

	"ember/internal/hir"
)

// evalBinary implements the fixed builtin-name table's binary half (§4.6):
// integer arithmetic is unchecked two's-complement on uint64, float
// arithmetic and fpow follow IEEE-754 via math.Pow, and division/remainder
// by zero is a fatal Fault rather than a trapped value.
func evalBinary(op hir.BinaryIntrinsic, lhs, rhs Value) (Value, error) {
	switch op {
	case hir.BinAdd:
		return IntValue(lhs.Int + rhs.Int), nil
	case hir.BinSub:
		return IntValue(lhs.Int - rhs.Int), nil
	case hir.BinMul:
		return IntValue(lhs.Int * rhs.Int), nil
	case hir.BinDiv:
		if rhs.Int == 0 {
			return Value{}, fault("division by zero")
		}
		return IntValue(lhs.Int / rhs.Int), nil
	case hir.BinRem:
		if rhs.Int == 0 {
			return Value{}, fault("division by zero")
		}
		return IntValue(lhs.Int % rhs.Int), nil
	case hir.BinShl:
		return IntValue(lhs.Int << (rhs.Int & 63)), nil
	case hir.BinShr:
		return IntValue(lhs.Int >> (rhs.Int & 63)), nil
	case hir.BinBitAnd:
		return IntValue(lhs.Int & rhs.Int), nil
	case hir.BinBitOr:
		return IntValue(lhs.Int | rhs.Int), nil
	case hir.BinBitXor:
		return IntValue(lhs.Int ^ rhs.Int), nil

	case hir.BinAnd:
		return BoolValue(lhs.Bool && rhs.Bool), nil
	case hir.BinOr:
		return BoolValue(lhs.Bool || rhs.Bool), nil
	case hir.BinXor:
		return BoolValue(lhs.Bool != rhs.Bool), nil

	case hir.BinEqInt:
		return BoolValue(lhs.Int == rhs.Int), nil
	case hir.BinNeqInt:
		return BoolValue(lhs.Int != rhs.Int), nil
	case hir.BinLtInt:
		return BoolValue(lhs.Int < rhs.Int), nil
	case hir.BinLeqInt:
		return BoolValue(lhs.Int <= rhs.Int), nil
	case hir.BinGtInt:
		return BoolValue(lhs.Int > rhs.Int), nil
	case hir.BinGeqInt:
		return BoolValue(lhs.Int >= rhs.Int), nil

	case hir.BinEqFloat:
		return BoolValue(lhs.Float == rhs.Float), nil
	case hir.BinNeqFloat:
		return BoolValue(lhs.Float != rhs.Float), nil
	case hir.BinEqBool:
		return BoolValue(lhs.Bool == rhs.Bool), nil
	case hir.BinNeqBool:
		return BoolValue(lhs.Bool != rhs.Bool), nil
	case hir.BinEqStr:
		return BoolValue(lhs.Str == rhs.Str), nil
	case hir.BinNeqStr:
		return BoolValue(lhs.Str != rhs.Str), nil

	case hir.BinFAdd:
		return FloatValue(lhs.Float + rhs.Float), nil
	case hir.BinFSub:
		return FloatValue(lhs.Float - rhs.Float), nil
	case hir.BinFMul:
		return FloatValue(lhs.Float * rhs.Float), nil
	case hir.BinFDiv:
		return FloatValue(lhs.Float / rhs.Float), nil
	case hir.BinFRem:
		return FloatValue(math.Mod(lhs.Float, rhs.Float)), nil
	case hir.BinFPow:
		return FloatValue(math.Pow(lhs.Float, rhs.Float)), nil

	case hir.BinConcat:
		return StringValue(lhs.Str + rhs.Str), nil

	default:
		return Value{}, fault("unknown binary intrinsic %v", op)
	}
}

// evalUnary implements the builtin table's unary half, including print's
// side effect and the parse_*/format_* round-trip pair (§4.6, §8).
func evalUnary(op hir.UnaryIntrinsic, operand Value) (Value, error) {
	switch op {
	case hir.UnNot:
		return BoolValue(!operand.Bool), nil
	case hir.UnBitNot:
		return IntValue(^operand.Int), nil
	case hir.UnLen:
		return IntValue(uint64(len(operand.Str))), nil

	case hir.UnPrint:
		io.WriteString(stdout, operand.Str)
		io.WriteString(stdout, "\n")
		return VoidValue(), nil

	case hir.UnParseInt:
		n, err := strconv.ParseUint(operand.Str, 10, 64)
		if err != nil {
			return Value{}, fault("parse_int: invalid integer literal %q", operand.Str)
		}
		return IntValue(n), nil
	case hir.UnFormatInt:
		return StringValue(strconv.FormatUint(operand.Int, 10)), nil

	case hir.UnParseBool:
		b, err := strconv.ParseBool(operand.Str)
		if err != nil {
			return Value{}, fault("parse_bool: invalid boolean literal %q", operand.Str)
		}
		return BoolValue(b), nil
	case hir.UnFormatBool:
		return StringValue(strconv.FormatBool(operand.Bool)), nil

	case hir.UnParseFloat:
		f, err := strconv.ParseFloat(operand.Str, 64)
		if err != nil {
			return Value{}, fault("parse_float: invalid float literal %q", operand.Str)
		}
		return FloatValue(f), nil
	case hir.UnFormatFloat:
		return StringValue(strconv.FormatFloat(operand.Float, 'g', -1, 64)), nil

	case hir.UnFloor:
		return FloatValue(math.Floor(operand.Float)), nil
	case hir.UnCeil:
		return FloatValue(math.Ceil(operand.Float)), nil
	case hir.UnToFloat:
		return FloatValue(float64(operand.Int)), nil

	case hir.UnIdentity:
		return IntValue(operand.Int), nil
	case hir.UnIdentityFloat:
		return FloatValue(operand.Float), nil
	case hir.UnNegate:
		return IntValue(-operand.Int), nil
	case hir.UnNegateFloat:
		return FloatValue(-operand.Float), nil

	default:
		return Value{}, fault("unknown unary intrinsic %v", op)
	}
}
