package diag

import (
	"pyfmt/internal/source"
)

// Note attaches a secondary span with explanatory text to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces the text at Span with NewText.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested correction made of one or more edits.
type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
