package lexer

import (
	"pyfmt/internal/token"
)

// scanNumber scans Python numeric literals: 0b/0o/0x forms, decimals with
// fraction and exponent, leading-dot floats, underscore digit separators
// and the imaginary j suffix. The scan is deliberately lenient about digit
// placement; a formatter reproduces literals, it does not evaluate them.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		lx.eatExponent()
		lx.eatImaginary()
		return lx.text(token.Number, start)
	}

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.eatDigits(isBin)
				return lx.text(token.Number, start)
			case 'o', 'O':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.eatDigits(isOct)
				return lx.text(token.Number, start)
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.eatDigits(isHex)
				return lx.text(token.Number, start)
			}
		}
	}

	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	lx.eatExponent()
	lx.eatImaginary()
	return lx.text(token.Number, start)
}

func (lx *Lexer) eatDigits(pred func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !pred(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}

// eatExponent consumes an e/E exponent only when digits actually follow,
// so "1e" lexes as Number("1") then Ident("e").
func (lx *Lexer) eatExponent() {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || (b0 != 'e' && b0 != 'E') {
		return
	}
	if isDec(b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		return
	}
	if b1 == '+' || b1 == '-' {
		if _, _, b2, ok3 := lx.cursor.Peek3(); ok3 && isDec(b2) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.eatDigits(isDec)
		}
	}
}

func (lx *Lexer) eatImaginary() {
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
	}
}
