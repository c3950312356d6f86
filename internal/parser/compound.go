package parser

import (
	"fmt"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// parseCompound parses an if/while/for/try/with statement including every
// continuation clause at the same indentation.
func (p *Parser) parseCompound() *cst.Node {
	node := p.tree.NewNode(compoundKind(p.peek().Kind))
	p.parseClause(node)

	for {
		// Comments that rode out of the clause's suite belong to this node
		// when a further clause follows them, otherwise to our caller.
		if carried := p.takeCarry(); len(carried) != 0 {
			if !p.atClauseOf(node.Kind) {
				p.carry = carried
				return node
			}
			p.flushComments(node, carried)
		}
		if !p.atClauseOf(node.Kind) {
			return node
		}
		p.parseClause(node)
	}
}

func compoundKind(k token.Kind) cst.NodeKind {
	switch k {
	case token.KwIf:
		return cst.KindIfStmt
	case token.KwWhile:
		return cst.KindWhileStmt
	case token.KwFor:
		return cst.KindForStmt
	case token.KwTry:
		return cst.KindTryStmt
	case token.KwWith:
		return cst.KindWithStmt
	default:
		panic(fmt.Errorf("parser: %v does not open a compound statement", k))
	}
}

// atClauseOf reports whether the next token continues a compound statement of
// the given kind at its own level.
func (p *Parser) atClauseOf(kind cst.NodeKind) bool {
	switch p.peek().Kind {
	case token.KwElif:
		return kind == cst.KindIfStmt
	case token.KwElse:
		return kind == cst.KindIfStmt || kind == cst.KindWhileStmt ||
			kind == cst.KindForStmt || kind == cst.KindTryStmt
	case token.KwExcept, token.KwFinally:
		return kind == cst.KindTryStmt
	default:
		return false
	}
}

// parseClause consumes one header line through its colon and the suite that
// follows it.
func (p *Parser) parseClause(node *cst.Node) {
	p.parseHeader(node)
	p.parseSuiteInto(node)
}

// parseHeader appends header leaves through the terminating ':'. A colon
// inside brackets or owned by a bare lambda does not end the header.
func (p *Parser) parseHeader(node *cst.Node) bool {
	depth := 0
	lambdas := 0
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.Newline, token.EOF, token.Indent, token.Dedent:
			p.report(diag.SynExpectedColon, tok.Span,
				fmt.Sprintf("expected ':', got %s", describe(tok)))
			return false
		case token.Comment:
			// A comment at bracket depth is mid-expression; at the end of the
			// physical line it means the colon never came.
			if depth == 0 {
				p.report(diag.SynExpectedColon, tok.Span,
					fmt.Sprintf("expected ':', got %s", describe(tok)))
				return false
			}
		case token.KwLambda:
			if depth == 0 {
				lambdas++
			}
		case token.Op:
			switch tok.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth > 0 {
					depth--
				}
			case ":":
				if depth == 0 {
					if lambdas == 0 {
						node.Append(p.eat())
						return true
					}
					lambdas--
				}
			}
		}
		node.Append(p.eat())
	}
}
