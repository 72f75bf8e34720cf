package ast

import "ember/internal/source"

// File is the root of one translation unit's AST: a flat list of top-level
// items in source order.
type File struct {
	Source source.FileID
	Span   source.Span
	Items  []ItemID
}
