package parser

import (
	"fmt"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
	"pyfmt/internal/style"
	"pyfmt/internal/token"
)

// Options configures a single parse.
type Options struct {
	// Reporter receives parse diagnostics. A nil reporter drops them.
	Reporter diag.Reporter

	// MaxErrors stops reporting (not parsing) after this many errors.
	// Zero means no limit.
	MaxErrors uint

	// Style supplies the comment-run merge policy. Nil means style.Default().
	Style *style.Config
}

// Parser drives one lexer to the end of its file and assembles the tree.
type Parser struct {
	lx   *lexer.Lexer
	tree *cst.Tree
	opts Options

	// carry holds suite-end comments that belong to an enclosing level and
	// ride outward past the Dedent that closed their suite.
	carry []*cst.Leaf

	errs uint
}

// ParseFile parses file through lx and returns its tree. The tree is always
// non-nil and structurally complete; parse errors go to opts.Reporter and the
// offending lines survive as flat statement leaves.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) *cst.Tree {
	if opts.Style == nil {
		opts.Style = style.Default()
	}
	p := &Parser{
		lx:   lx,
		tree: cst.NewTree(file.ID),
		opts: opts,
	}

	p.parseStatements(p.tree.Root, 0, true)
	p.tree.Root.Append(p.eat()) // EOF
	return p.tree
}

// parseStatements fills parent with statements until end of file (top level)
// or the Dedent that closes the suite. indentCol bounds suite-end comment
// ownership: pending comments indented at least that far stay here, the rest
// ride out through p.carry.
func (p *Parser) parseStatements(parent *cst.Node, indentCol uint32, topLevel bool) {
	var pending []*cst.Leaf
	strays := 0

	for {
		pending = append(pending, p.takeCarry()...)

		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			if topLevel {
				p.flushComments(parent, pending)
			} else {
				p.splitSuiteEnd(parent, pending, indentCol)
			}
			return

		case token.Dedent:
			if strays > 0 {
				p.flushComments(parent, pending)
				pending = nil
				parent.Append(p.eat())
				strays--
				continue
			}
			if topLevel {
				// The lexer balances every Indent, so this cannot happen on a
				// sound stream. Consume it to keep making progress.
				parent.Append(p.eat())
				continue
			}
			p.splitSuiteEnd(parent, pending, indentCol)
			return

		case token.Indent:
			p.flushComments(parent, pending)
			pending = nil
			p.report(diag.SynUnexpectedIndent, tok.Span, "unexpected indent")
			parent.Append(p.eat())
			strays++

		case token.Newline:
			// Stray zero-width newline from a recovered error.
			parent.Append(p.eat())

		case token.Comment:
			pending = p.collectComments(pending)

		default:
			p.parseStatement(parent, pending)
			pending = nil
		}
	}
}

// parseStatement dispatches on the first token of a logical line. pending
// holds the standalone comments collected directly above it.
func (p *Parser) parseStatement(parent *cst.Node, pending []*cst.Leaf) {
	tok := p.peek()
	switch tok.Kind {
	case token.At:
		// Comments above a decorated statement stay siblings; the spacing
		// pass tracks their adjacency by line number instead of structure.
		p.flushComments(parent, pending)
		parent.Append(p.parseDecorated())

	case token.KwClass, token.KwDef:
		siblings, attached := splitAttached(pending, tok.Col)
		p.flushComments(parent, siblings)
		parent.Append(p.parseDefinition(attached))

	case token.KwAsync:
		p.parseAsync(parent, pending)

	case token.KwIf, token.KwWhile, token.KwFor, token.KwTry, token.KwWith:
		p.flushComments(parent, pending)
		parent.Append(p.parseCompound())

	case token.KwElif, token.KwElse, token.KwExcept, token.KwFinally:
		p.flushComments(parent, pending)
		p.report(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("%q without a matching compound statement", tok.Text))
		parent.Append(p.parseSimpleStmt())

	default:
		p.flushComments(parent, pending)
		parent.Append(p.parseSimpleStmt())
	}
}

// parseSimpleStmt consumes one logical line through its Newline as a flat run
// of leaves, trailing comment included.
func (p *Parser) parseSimpleStmt() *cst.Node {
	stmt := p.tree.NewNode(cst.KindSimpleStmt)
	p.finishSimple(stmt)
	return stmt
}

// finishSimple appends leaves to stmt up to and including the Newline.
func (p *Parser) finishSimple(stmt *cst.Node) {
	for {
		switch p.peek().Kind {
		case token.Newline:
			stmt.Append(p.eat())
			return
		case token.EOF, token.Indent, token.Dedent:
			return
		default:
			stmt.Append(p.eat())
		}
	}
}
