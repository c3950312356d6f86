package lexer

import (
	"pyfmt/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies reserved words via
// LookupKeyword. Soft keywords (match, case, type) stay Ident. Token.Text
// is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.text(token.Invalid, start)
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
	} else if !isIdentStartRune(r) {
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()

	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	pos := lx.file.Position(sp.Start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := string(lex)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Line: pos.Line, Col: pos.Col, Text: text}
	}
	if lx.opts.Interner != nil {
		text = lx.opts.Interner.Canonical(lex)
	}
	return token.Token{Kind: token.Ident, Span: sp, Line: pos.Line, Col: pos.Col, Text: text}
}
