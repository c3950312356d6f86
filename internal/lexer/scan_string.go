package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// stringPrefixLen reports how many bytes of string prefix (r, b, u, f and
// the rb/fr combinations, any case) sit at the cursor, provided a quote
// follows. Zero means the cursor is not at a prefixed string.
func (lx *Lexer) stringPrefixLen() int {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return 0
	}
	l0 := lowerByte(b0)
	if isQuote(b1) && (l0 == 'r' || l0 == 'b' || l0 == 'u' || l0 == 'f') {
		return 1
	}
	_, _, b2, ok3 := lx.cursor.Peek3()
	if !ok3 || !isQuote(b2) {
		return 0
	}
	l1 := lowerByte(b1)
	if (l0 == 'r' && (l1 == 'b' || l1 == 'f')) || ((l0 == 'b' || l0 == 'f') && l1 == 'r') {
		return 2
	}
	return 0
}

// scanString scans one string literal, prefix and quotes included. Newlines
// terminate single-quoted strings with an error but are ordinary content in
// triple-quoted ones. A backslash always carries the following byte, which
// covers escaped quotes, escaped newlines and raw-string backslash pairs
// alike; escape validity is not this scanner's concern.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	for n := lx.stringPrefixLen(); n > 0; n-- {
		lx.cursor.Bump()
	}
	quote := lx.cursor.Bump()

	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == quote && b1 == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}

	if triple {
		for !lx.cursor.EOF() {
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == quote && b1 == quote && b2 == quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.text(token.String, start)
			}
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				if !lx.cursor.EOF() {
					lx.cursor.Bump()
				}
				continue
			}
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
			"unterminated triple-quoted string literal")
		return lx.text(token.Invalid, start)
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.text(token.String, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '\n' {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
				"newline in string literal")
			return lx.text(token.Invalid, start)
		}
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
		"unterminated string literal")
	return lx.text(token.Invalid, start)
}
