package token

import "ember/internal/source"

// Token is a single lexical token with its source span and, for literal and
// identifier tokens, the raw text that produced it.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	// StringRaw and StringMultiLine only apply to StringLit: whether a raw
	// prefix preceded the opening quote, and whether it was a `"""` block.
	StringRaw       bool
	StringMultiLine bool
}
