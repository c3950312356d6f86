package lexer

import (
	"fmt"

	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// scanOperatorOrPunct scans operators and delimiters greedily: three-byte
// forms first, then two-byte, then singles. Everything lexes as Op except
// '@', which gets its own kind so the parser can spot decorator lines
// without poking at text. Brackets maintain the implicit-join depth.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('*', '*', '='), lx.try3('/', '/', '='),
		lx.try3('<', '<', '='), lx.try3('>', '>', '='),
		lx.try3('.', '.', '.'):
		return lx.interned(token.Op, start)

	case lx.try2('*', '*'), lx.try2('/', '/'), lx.try2('<', '<'), lx.try2('>', '>'),
		lx.try2('<', '='), lx.try2('>', '='), lx.try2('=', '='), lx.try2('!', '='),
		lx.try2('-', '>'), lx.try2(':', '='), lx.try2('@', '='),
		lx.try2('+', '='), lx.try2('-', '='), lx.try2('*', '='), lx.try2('/', '='),
		lx.try2('%', '='), lx.try2('&', '='), lx.try2('|', '='), lx.try2('^', '='):
		return lx.interned(token.Op, start)
	}

	switch lx.cursor.Peek() {
	case '(', '[', '{':
		lx.cursor.Bump()
		lx.depth++
		return lx.interned(token.Op, start)

	case ')', ']', '}':
		b := lx.cursor.Bump()
		if lx.depth == 0 {
			lx.errLex(diag.LexUnbalancedBracket, lx.cursor.SpanFrom(start),
				fmt.Sprintf("unmatched %q", b))
		} else {
			lx.depth--
		}
		return lx.interned(token.Op, start)

	case '@':
		lx.cursor.Bump()
		return lx.interned(token.At, start)

	case '+', '-', '*', '/', '%', '&', '|', '^', '~', '<', '>', '=', ',', ':', '.', ';':
		lx.cursor.Bump()
		return lx.interned(token.Op, start)
	}

	// Unknown character: consume one full rune so multi-byte garbage yields
	// a single Invalid token instead of one per byte.
	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.text(token.Invalid, start)
	}
	lx.bumpRune()
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start),
		fmt.Sprintf("unexpected character %q", r))
	return lx.text(token.Invalid, start)
}
