// Package interp implements a straightforward tree-walking interpreter over
// a lowered internal/mir.Context (§4.6): a stack of frames sized to each
// function's local count, globals held in one process-wide frame, and a
// recursive call per ImmCall matching the spec's own "recursively
// executes the called function with a fresh frame" wording rather than the
// teacher's own explicit-stack/async-capable VM (_examples/vovakirdan-surge/internal/vm).
package interp

import (
	"fmt"
	"strings"
)

// ValueKind tags the tagged-union runtime Value (§4.6), the same
// Kind-plus-embedded-fields idiom internal/mir.Immediate and the teacher's
// own vm.Value use.
type ValueKind uint8

const (
	ValueUndefined ValueKind = iota
	ValueVoid
	ValueInteger
	ValueFloat
	ValueBool
	ValueString
	ValueTuple
	ValueStruct
)

func (k ValueKind) String() string {
	switch k {
	case ValueUndefined:
		return "undefined"
	case ValueVoid:
		return "void"
	case ValueInteger:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueString:
		return "string"
	case ValueTuple:
		return "tuple"
	case ValueStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Value is the interpreter's runtime value (§4.6): `Integer(u64) |
// Float(f64) | Bool(bool) | String(string) | Tuple([]Value) | Struct([]Value)
// | Void | Undefined`.
type Value struct {
	Kind ValueKind

	Int    uint64
	Float  float64
	Bool   bool
	Str    string
	Fields []Value // Tuple items or Struct field values, in declared order
}

func VoidValue() Value      { return Value{Kind: ValueVoid} }
func UndefinedValue() Value { return Value{Kind: ValueUndefined} }
func IntValue(n uint64) Value { return Value{Kind: ValueInteger, Int: n} }
func FloatValue(f float64) Value { return Value{Kind: ValueFloat, Float: f} }
func BoolValue(b bool) Value { return Value{Kind: ValueBool, Bool: b} }
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// clone deep-copies an aggregate value, the "deep-copy semantics for
// aggregates" §4.6's Move(place) evaluation requires; scalars are already
// copied by Go's assignment semantics, so clone only needs to recurse into
// Fields.
func (v Value) clone() Value {
	if len(v.Fields) == 0 {
		return v
	}
	out := v
	out.Fields = make([]Value, len(v.Fields))
	for i, f := range v.Fields {
		out.Fields[i] = f.clone()
	}
	return out
}

// String renders a Value for diagnostics and for the result `emberc run`
// prints, not for program-facing `format_*` builtins (those
// have their own dedicated, spec-mandated formatting in intrinsics.go).
func (v Value) String() string {
	switch v.Kind {
	case ValueInteger:
		return fmt.Sprintf("%d", v.Int)
	case ValueFloat:
		return fmt.Sprintf("%g", v.Float)
	case ValueBool:
		return fmt.Sprintf("%t", v.Bool)
	case ValueString:
		return v.Str
	case ValueTuple, ValueStruct:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ValueVoid:
		return "()"
	default:
		return "<undefined>"
	}
}
