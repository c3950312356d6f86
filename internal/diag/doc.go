// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// primary source.Span and a short message, plus optional Notes (secondary
// spans with context) and Fixes (structured text edits a caller may apply).
//
// Producers emit through a Reporter so they stay decoupled from storage and
// rendering. BagReporter collects into a Bag, which supports sorting,
// deduplication and error queries; DedupReporter filters repeated reports
// before they reach a Bag. Rendering lives in internal/diagfmt, except for
// the stable one-line-per-entry form in short.go that tests and scripting
// output rely on.
//
// Keep the model deterministic and side-effect free: diagnostics are sorted,
// compared and cached, so a given input must always produce the same records.
package diag
