package parser

import (
	"pyfmt/internal/cst"
	"pyfmt/internal/token"
)

// collectComments consumes the standalone comment run at the cursor and
// appends it to pending. Consecutive lines at the same column merge into one
// leaf whose text joins the lines with '\n' and whose Line is the last line
// of the run, so a merged block moves as a unit.
func (p *Parser) collectComments(pending []*cst.Leaf) []*cst.Leaf {
	for p.at(token.Comment) {
		tok := p.lx.Next()
		if p.opts.Style.JoinCommentRuns && len(pending) > 0 {
			last := pending[len(pending)-1]
			if last.Col == tok.Col && last.Line+1 == tok.Line {
				last.Text += "\n" + tok.Text
				last.Line = tok.Line
				continue
			}
		}
		pending = append(pending, p.tree.NewLeaf(tok.Kind, tok.Line, tok.Col, tok.Text))
	}
	return pending
}

// flushComments appends each pending comment to parent as its own comment
// statement.
func (p *Parser) flushComments(parent *cst.Node, pending []*cst.Leaf) {
	for _, c := range pending {
		parent.Append(p.wrapComment(c))
	}
}

// wrapComment wraps a comment leaf in the simple-statement node that marks it
// as standalone.
func (p *Parser) wrapComment(leaf *cst.Leaf) *cst.Node {
	stmt := p.tree.NewNode(cst.KindSimpleStmt)
	stmt.Append(leaf)
	return stmt
}

// splitAttached splits pending before a class or function definition at col:
// the trailing entries sharing the definition's column attach to it as
// leading children, everything above them stays sibling statements.
func splitAttached(pending []*cst.Leaf, col uint32) (siblings, attached []*cst.Leaf) {
	i := len(pending)
	for i > 0 && pending[i-1].Col == col {
		i--
	}
	return pending[:i], pending[i:]
}

// splitSuiteEnd resolves the comments left over when a suite closes: those
// indented to the suite's level or deeper become its trailing comment
// statements, outdented ones ride out to the enclosing level.
func (p *Parser) splitSuiteEnd(parent *cst.Node, pending []*cst.Leaf, indentCol uint32) {
	var out []*cst.Leaf
	for _, c := range pending {
		if c.Col >= indentCol {
			parent.Append(p.wrapComment(c))
		} else {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		p.carry = append(out, p.carry...)
	}
}

// takeCarry drains the comments propagated out of a closed suite.
func (p *Parser) takeCarry() []*cst.Leaf {
	c := p.carry
	p.carry = nil
	return c
}
