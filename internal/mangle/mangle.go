// Package mangle encodes an entity's ancestor chain of symbol names into a
// single deterministic string persisted in MIR for global/function/struct
// identity. It mirrors the length-prefixed path encoding used by Rust
// compilers (Itanium-style component counts), kept purposefully simple since
// the core has no generics to disambiguate.
package mangle

import "strconv"

// Kind selects the one-letter-plus-underscore prefix prepended to a mangled
// path, distinguishing the three MIR namespaces that share path syntax.
type Kind uint8

const (
	Func Kind = iota
	Struct
	Global
)

func (k Kind) prefix() string {
	switch k {
	case Func:
		return "_F"
	case Struct:
		return "_S"
	case Global:
		return "_V"
	default:
		return "_?"
	}
}

// Path encodes an ancestor-chain of symbol names as `s1.len s1 s2.len s2 …`
// with no prefix. Used on its own when a caller already has the prefix
// (e.g. a custom/no-mangle name) or wants the raw path for diagnostics.
func Path(segments []string) string {
	var sb []byte
	for _, s := range segments {
		sb = strconv.AppendInt(sb, int64(len(s)), 10)
		sb = append(sb, s...)
	}
	return string(sb)
}

// Name produces the full mangled symbol: the kind prefix followed by the
// encoded ancestor path. Two distinct ancestor-name sequences always produce
// distinct output, since each segment is length-prefixed: a boundary can
// never be mistaken for scanning past it (the decimal length digits are not
// part of any segment's text window once parsed left to right).
func Name(kind Kind, segments []string) string {
	return kind.prefix() + Path(segments)
}

// Custom passes a user-supplied no-mangle name through unchanged, per §6.4
// ("custom names pass through unchanged").
func Custom(name string) string { return name }
