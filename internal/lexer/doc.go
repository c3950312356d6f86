// Package lexer turns Python source files into token streams.
//
// The scanner follows the CPython tokenizer's layout model: physical lines
// are folded into logical lines before any statement structure exists.
// Indentation is measured at the start of each significant line (tab stops
// of 8, form feed resets the column) against a stack of open indentation
// levels, emitting Indent and Dedent tokens as levels open and close.
// Newline tokens terminate logical lines only: blank lines vanish from the
// stream, comment-only lines contribute just their Comment token, and
// physical newlines inside open brackets or behind a trailing backslash
// join into the surrounding logical line.
//
// Layout tokens are zero-width. Their span pins a position but carries no
// text, which keeps the invariant that Token.Text always equals the bytes
// under Token.Span. Columns are byte offsets from the line start.
//
// The lexer never stops on bad input. Problems go to the diag.Reporter in
// Options and scanning resumes, so the driver can decide afterwards whether
// the file is still safe to format.
package lexer
