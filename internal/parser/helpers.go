package parser

import (
	"fmt"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/source"
	"pyfmt/internal/token"
)

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

// at reports whether the next token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// eat consumes the next token and registers it as a tree leaf. Leaf IDs
// follow consumption order, so the registry tracks the source token stream.
func (p *Parser) eat() *cst.Leaf {
	tok := p.lx.Next()
	return p.tree.NewLeaf(tok.Kind, tok.Line, tok.Col, tok.Text)
}

// report emits an error diagnostic unless the error budget is spent.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors != 0 && p.errs >= p.opts.MaxErrors {
		return
	}
	p.errs++
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
}

// describe renders a token for an error message.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "end of line"
	case token.Indent:
		return "an indented block"
	case token.Dedent:
		return "the end of the enclosing block"
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}
