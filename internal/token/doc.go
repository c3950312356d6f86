// Package token defines the lexical vocabulary for the Python subset pyfmt
// formats. Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - Token.Line is 1-based and names the line the token starts on; a
//     multi-line string keeps its first line here.
//   - Token.Col is the 0-based byte column of the token start.
//   - Comments are ordinary tokens, never trivia: the formatter governs their
//     vertical placement, so they must survive into the syntax tree.
//   - Newline, Indent, and Dedent are synthesized from layout and carry no
//     source text.
//   - Operators and delimiters share the Op kind; the formatter never changes
//     anything inside a line, so operator identity lives in Token.Text alone.
//     The decorator marker '@' at statement position is the one exception.
//   - Soft keywords (match, case, type, _) lex as Ident; only reserved words
//     get keyword kinds.
package token
