package parser

import (
	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

// parseSuiteInto parses the body after a header colon and appends it to node
// as a Suite. A trailing comment on the header line stays on node itself,
// ahead of the suite.
//
// Comment-only lines between the header and the first indented statement
// arrive before the Indent token, because they never touch the lexer's indent
// stack. They are collected here and seeded into the suite's statement flow,
// where column rules decide their owner.
func (p *Parser) parseSuiteInto(node *cst.Node) {
	if p.at(token.Comment) {
		node.Append(p.eat())
	}

	suite := p.tree.NewNode(cst.KindSuite)
	node.Append(suite)

	if !p.at(token.Newline) {
		// The body shares the header's physical line.
		suite.Append(p.parseSimpleStmt())
		return
	}
	suite.Append(p.eat())

	var pending []*cst.Leaf
	if p.at(token.Comment) {
		pending = p.collectComments(pending)
	}

	if !p.at(token.Indent) {
		p.report(diag.SynExpectedIndent, p.peek().Span, "expected an indented block")
		if len(pending) > 0 {
			p.carry = append(pending, p.carry...)
		}
		return
	}
	suite.Append(p.eat())

	indentCol := p.peek().Col
	if len(pending) > 0 {
		p.carry = append(pending, p.carry...)
	}
	p.parseStatements(suite, indentCol, false)

	if p.at(token.Dedent) {
		suite.Append(p.eat())
	}
}
