package parser

import (
	"fmt"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// parseDefinition parses a class or def statement. attached comments become
// leading comment-statement children ahead of the keyword leaf, so the
// spacing pass can treat comment block and definition as one unit.
func (p *Parser) parseDefinition(attached []*cst.Leaf) *cst.Node {
	kind := cst.KindFuncDef
	if p.at(token.KwClass) {
		kind = cst.KindClassDef
	}
	node := p.tree.NewNode(kind)
	for _, c := range attached {
		node.Append(p.wrapComment(c))
	}
	p.parseClause(node)
	return node
}

// parseAsync handles async def, async for and async with. The marker stays a
// leaf sibling of the inner node so spacing rules can govern a definition at
// its marker.
func (p *Parser) parseAsync(parent *cst.Node, pending []*cst.Leaf) {
	markerCol := p.peek().Col
	marker := p.eat()

	switch next := p.peek(); next.Kind {
	case token.KwDef:
		siblings, attached := splitAttached(pending, markerCol)
		p.flushComments(parent, siblings)
		node := p.tree.NewNode(cst.KindAsyncFuncDef)
		for _, c := range attached {
			node.Append(p.wrapComment(c))
		}
		node.Append(marker)
		node.Append(p.parseDefinition(nil))
		parent.Append(node)

	case token.KwFor, token.KwWith:
		p.flushComments(parent, pending)
		node := p.tree.NewNode(cst.KindAsyncStmt)
		node.Append(marker)
		node.Append(p.parseCompound())
		parent.Append(node)

	default:
		p.flushComments(parent, pending)
		p.report(diag.SynBadAsyncTarget, next.Span,
			fmt.Sprintf("expected 'def', 'for' or 'with' after 'async', got %s", describe(next)))
		stmt := p.tree.NewNode(cst.KindSimpleStmt)
		stmt.Append(marker)
		p.finishSimple(stmt)
		parent.Append(stmt)
	}
}

// parseDecorated parses a run of decorator lines and the definition they
// apply to. Comments between a decorator and the definition become leading
// children of the definition; comments between two decorators stay comment
// statements inside the decorated node, where line adjacency keeps the next
// decorator glued to them.
func (p *Parser) parseDecorated() *cst.Node {
	node := p.tree.NewNode(cst.KindDecorated)
	var pending []*cst.Leaf

	for {
		if p.at(token.At) {
			p.flushComments(node, pending)
			pending = nil
			node.Append(p.parseDecorator())
			continue
		}
		if p.at(token.Comment) {
			pending = p.collectComments(pending)
			continue
		}
		break
	}

	switch tok := p.peek(); tok.Kind {
	case token.KwClass, token.KwDef:
		node.Append(p.parseDefinition(pending))

	case token.KwAsync:
		marker := p.eat()
		if p.at(token.KwDef) {
			inner := p.tree.NewNode(cst.KindAsyncFuncDef)
			for _, c := range pending {
				inner.Append(p.wrapComment(c))
			}
			inner.Append(marker)
			inner.Append(p.parseDefinition(nil))
			node.Append(inner)
			break
		}
		p.flushComments(node, pending)
		p.report(diag.SynBadAsyncTarget, p.peek().Span,
			fmt.Sprintf("expected 'def' after decorators and 'async', got %s", describe(p.peek())))
		stmt := p.tree.NewNode(cst.KindSimpleStmt)
		stmt.Append(marker)
		p.finishSimple(stmt)
		node.Append(stmt)

	default:
		p.report(diag.SynBareDecorator, tok.Span,
			fmt.Sprintf("expected a class or function definition after decorators, got %s", describe(tok)))
		p.flushComments(node, pending)
	}
	return node
}

// parseDecorator consumes one '@' line through its Newline.
func (p *Parser) parseDecorator() *cst.Node {
	node := p.tree.NewNode(cst.KindDecorator)
	node.Append(p.eat()) // '@'
	p.finishSimple(node)
	return node
}
