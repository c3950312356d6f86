package lexer

import (
	"pyfmt/internal/diag"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// tabWidth is the tab stop used when measuring indentation, matching the
// CPython tokenizer.
const tabWidth = 8

// Lexer scans one source file into a Python token stream.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	look    *token.Token  // one-token buffer for Peek
	pending []token.Token // synthesized layout tokens awaiting delivery

	indents      []uint32 // indentation stack; always holds at least level 0
	depth        int      // open bracket nesting, >0 joins lines implicitly
	atLineStart  bool     // measure indentation before the next token
	lineHasToken bool     // current logical line produced a significant token
	done         bool     // input exhausted, only EOF remains
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole file and returns its tokens, ending with EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+8)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if len(lx.pending) > 0 {
			tok := lx.pending[0]
			lx.pending = lx.pending[1:]
			return tok
		}
		if lx.done {
			return lx.makeAt(token.EOF, lx.cursor.Off)
		}

		if lx.atLineStart && lx.depth == 0 {
			lx.beginLine()
			continue
		}

		lx.skipBlanks()

		if lx.cursor.EOF() {
			lx.finishFile()
			continue
		}

		ch := lx.cursor.Peek()

		if ch == '\n' {
			off := lx.cursor.Off
			lx.cursor.Bump()
			if lx.depth > 0 {
				continue // implicit line joining inside brackets
			}
			lx.atLineStart = true
			if !lx.lineHasToken {
				continue // blank or comment-only line
			}
			lx.lineHasToken = false
			return lx.makeAt(token.Newline, off)
		}

		if ch == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue // explicit line joining
			}
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.errLex(diag.LexBadContinuation, lx.cursor.SpanFrom(start),
				"unexpected character after line continuation character")
			lx.lineHasToken = true
			return lx.text(token.Invalid, start)
		}

		if ch == '#' {
			// Comments never count as line content: a comment-only line must
			// not produce a Newline token.
			return lx.scanComment()
		}

		tok := lx.scanToken(ch)
		lx.lineHasToken = true
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanToken dispatches on the first byte of a significant token.
func (lx *Lexer) scanToken(ch byte) token.Token {
	switch {
	case ch == '\'' || ch == '"':
		return lx.scanString()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		if lx.stringPrefixLen() > 0 {
			return lx.scanString()
		}
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// beginLine measures the indentation of a fresh physical line and queues
// Indent or Dedent tokens against the indentation stack. Blank lines and
// comment-only lines never touch the stack.
func (lx *Lexer) beginLine() {
	lx.atLineStart = false

	start := lx.cursor.Mark()
	width := uint32(0)
loop:
	for {
		switch lx.cursor.Peek() {
		case ' ':
			width++
		case '\t':
			width = width - width%tabWidth + tabWidth
		case '\f':
			width = 0
		default:
			break loop
		}
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '#' {
		return
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.pending = append(lx.pending, lx.makeAt(token.Indent, uint32(start)))
	case width < top:
		for width < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, lx.makeAt(token.Dedent, lx.cursor.Off))
		}
		if width != lx.indents[len(lx.indents)-1] {
			lx.errLex(diag.LexInconsistentDedent, lx.cursor.SpanFrom(start),
				"unindent does not match any outer indentation level")
			// Recover by treating the line as the nearest outer level.
		}
	}
}

// skipBlanks consumes spaces, tabs and form feeds between tokens.
func (lx *Lexer) skipBlanks() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// finishFile closes the last logical line and unwinds the indentation stack.
func (lx *Lexer) finishFile() {
	off := lx.cursor.Off
	if lx.depth > 0 {
		lx.errLex(diag.LexUnbalancedBracket,
			source.Span{File: lx.file.ID, Start: off, End: off},
			"unexpected end of file inside brackets")
		lx.depth = 0
	}
	if lx.lineHasToken {
		lx.lineHasToken = false
		lx.pending = append(lx.pending, lx.makeAt(token.Newline, off))
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.pending = append(lx.pending, lx.makeAt(token.Dedent, off))
	}
	lx.done = true
}

// scanComment scans '#' to the end of the physical line, newline excluded.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.text(token.Comment, start)
}

// makeAt builds a zero-width layout token positioned at a byte offset.
func (lx *Lexer) makeAt(kind token.Kind, off uint32) token.Token {
	pos := lx.file.Position(off)
	return token.Token{
		Kind: kind,
		Span: source.Span{File: lx.file.ID, Start: off, End: off},
		Line: pos.Line,
		Col:  pos.Col,
	}
}

// text builds a token whose Text mirrors the scanned span.
func (lx *Lexer) text(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	pos := lx.file.Position(sp.Start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Line: pos.Line,
		Col:  pos.Col,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// interned builds a token like text but routes Text through the interner so
// repeated identifiers and operators share one backing string.
func (lx *Lexer) interned(kind token.Kind, start Mark) token.Token {
	if lx.opts.Interner == nil {
		return lx.text(kind, start)
	}
	sp := lx.cursor.SpanFrom(start)
	pos := lx.file.Position(sp.Start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Line: pos.Line,
		Col:  pos.Col,
		Text: lx.opts.Interner.Canonical(lx.file.Content[sp.Start:sp.End]),
	}
}
