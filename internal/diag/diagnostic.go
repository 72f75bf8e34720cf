package diag

import "ember/internal/source"

// Note provides auxiliary context for a diagnostic message.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single issue along with optional notes (§6.2:
// "{level, message, code, annotations}" -- Notes are this spec's
// annotations).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
