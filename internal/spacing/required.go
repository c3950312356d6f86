package spacing

import (
	"fmt"

	"pyfmt/internal/cst"
	"pyfmt/internal/style"
	"pyfmt/internal/token"
)

// Break counts stored in the annotation table. A count of k prints as k-1
// blank lines.
const (
	noBlankLines = 1
	oneBlankLine = 2
)

// CalculateRequired walks the tree and forces break counts before the leaves
// that govern definitions, decorators, attached comments, and statements that
// directly follow a definition body. Statements no rule touches keep their
// author spacing via the recorder's values.
func CalculateRequired(tree *cst.Tree, ann *cst.Annotations, cfg *style.Config) {
	c := &calculator{ann: ann, cfg: cfg}
	c.visit(tree.Root, calcState{})
}

// calcState is the context threaded through the traversal by value. Visits
// return their successor state; nothing else carries information between
// siblings.
type calcState struct {
	classDepth int
	funcDepth  int

	// lastCommentLine is the last physical line of the most recent standalone
	// comment visited as a sibling statement. Comments attached as leading
	// children of a definition do not update it; they are tracked
	// structurally by attachLeading instead.
	lastCommentLine int

	// afterDecorator is set between a decorator line and the element it
	// decorates.
	afterDecorator bool

	// afterDefinition is set once a class or function body has been fully
	// visited and cleared by the next node visit.
	afterDefinition bool
}

type calculator struct {
	ann *cst.Annotations
	cfg *style.Config
}

func (c *calculator) visit(el cst.Element, st calcState) calcState {
	switch e := el.(type) {
	case *cst.Leaf:
		// Leaves carry no governance of their own.
		return st
	case *cst.Node:
		return c.visitNode(e, st)
	default:
		panic(fmt.Errorf("spacing: unknown element %T", el))
	}
}

func (c *calculator) visitNode(n *cst.Node, st calcState) calcState {
	switch n.Kind {
	case cst.KindSimpleStmt:
		return c.visitSimpleStmt(n, st)
	case cst.KindDecorator:
		return c.visitDecorator(n, st)
	case cst.KindClassDef:
		return c.visitClassDef(n, st)
	case cst.KindFuncDef:
		return c.visitFuncDef(n, st)
	case cst.KindAsyncFuncDef:
		return c.visitAsyncFuncDef(n, st)
	case cst.KindFile, cst.KindIfStmt, cst.KindWhileStmt, cst.KindForStmt,
		cst.KindTryStmt, cst.KindWithStmt, cst.KindDecorated,
		cst.KindAsyncStmt, cst.KindSuite:
		return c.visitDefault(n, st)
	default:
		panic(fmt.Errorf("spacing: unhandled node kind %v", n.Kind))
	}
}

// visitDefault applies the post-definition rule and continues the walk. Every
// node visit consumes the afterDefinition flag, matching how a definition
// governs only the statement directly after its body.
func (c *calculator) visitDefault(n *cst.Node, st calcState) calcState {
	if st.afterDefinition && n.Kind.IsStatement() {
		leaf := mustFirstLeaf(n)
		c.ann.SetRequired(leaf.ID, c.requiredBreaks(leaf, st))
	}
	st.afterDefinition = false

	for _, child := range n.Children() {
		st = c.visit(child, st)
	}
	return st
}

func (c *calculator) visitSimpleStmt(n *cst.Node, st calcState) calcState {
	st = c.visitDefault(n, st)
	if cst.IsCommentStatement(n) {
		st.lastCommentLine = int(mustFirstLeaf(n).Line)
	}
	return st
}

func (c *calculator) visitDecorator(n *cst.Node, st calcState) calcState {
	marker := mustFirstLeaf(n)
	if st.lastCommentLine != 0 && st.lastCommentLine == int(marker.Line)-1 {
		// A sibling comment ends directly above; keep the decorator glued.
		c.ann.SetRequired(marker.ID, noBlankLines)
	} else {
		c.ann.SetRequired(marker.ID, c.requiredBreaks(n, st))
	}

	for _, child := range n.Children() {
		st = c.visit(child, st)
	}
	st.afterDecorator = true
	return st
}

func (c *calculator) visitClassDef(n *cst.Node, st calcState) calcState {
	st.afterDefinition = false
	index, st := c.attachLeading(n, st)
	st.afterDecorator = false

	st.classDepth++
	for _, child := range n.Children()[index:] {
		st = c.visit(child, st)
	}
	st.classDepth--

	st.afterDefinition = true
	return st
}

func (c *calculator) visitFuncDef(n *cst.Node, st calcState) calcState {
	st.afterDefinition = false
	index, st := c.attachLeading(n, st)
	st.afterDecorator = false

	st.funcDepth++
	for _, child := range n.Children()[index:] {
		st = c.visit(child, st)
	}
	st.funcDepth--

	st.afterDefinition = true
	return st
}

// visitAsyncFuncDef governs an async definition at its async marker; the
// inner def keyword stays unannotated so the printer keeps marker and keyword
// on one line. Depth bookkeeping wraps the inner definition's children
// directly.
func (c *calculator) visitAsyncFuncDef(n *cst.Node, st calcState) calcState {
	st.afterDefinition = false
	index, st := c.attachLeading(n, st)
	st.afterDecorator = false

	inner, ok := n.Child(index + 1).(*cst.Node)
	if !ok || inner.Kind != cst.KindFuncDef {
		panic(fmt.Errorf("spacing: async wrapper without function definition"))
	}

	st.funcDepth++
	for _, child := range inner.Children() {
		st = c.visit(child, st)
	}
	st.funcDepth--

	st.afterDefinition = true
	return st
}

// attachLeading resolves the spacing of a definition's leading comment
// children and of the governed leaf that follows them (the keyword, or the
// async marker for async definitions). It returns the index of that leaf so
// the caller resumes ordinary traversal after it.
func (c *calculator) attachLeading(n *cst.Node, st calcState) (int, calcState) {
	children := n.Children()

	index := 0
	for index < len(children) && cst.IsCommentStatement(children[index]) {
		comment := mustFirstLeaf(children[index])
		st = c.visit(comment, st)
		if !st.afterDecorator {
			c.ann.SetRequired(comment.ID, oneBlankLine)
		}
		index++
	}
	if index >= len(children) {
		panic(fmt.Errorf("spacing: %v node has only comment children", n.Kind))
	}

	governed, ok := children[index].(*cst.Leaf)
	if !ok {
		panic(fmt.Errorf("spacing: %v node missing its keyword leaf", n.Kind))
	}

	if index > 0 {
		lastComment := mustFirstLeaf(children[index-1])
		if int(governed.Line)-1 == int(lastComment.Line) {
			// The comment run touches the keyword line; never split them.
			c.ann.SetRequired(governed.ID, noBlankLines)
			return index, st
		}
	}

	if st.lastCommentLine+1 == int(governed.Line) {
		c.ann.SetRequired(governed.ID, noBlankLines)
	} else {
		c.ann.SetRequired(governed.ID, c.requiredBreaks(n, st))
	}
	return index, st
}

// requiredBreaks is the primary spacing rule for definitions, decorators, and
// post-definition statements.
func (c *calculator) requiredBreaks(el cst.Element, st calcState) int {
	switch {
	case st.afterDecorator:
		return noBlankLines
	case c.isTopLevel(el, st):
		return 1 + c.cfg.BlankLinesAroundTopLevelDefinition
	default:
		return oneBlankLine
	}
}

// isTopLevel reports whether el sits at module level. Detection is by column
// rather than structure alone: an element counts as top-level only when
// nothing is nested AND it starts at the document margin, opens with a
// comment, or is an async definition whose marker sits at the margin.
func (c *calculator) isTopLevel(el cst.Element, st calcState) bool {
	if st.classDepth != 0 || st.funcDepth != 0 {
		return false
	}

	first := mustFirstLeaf(el)
	if first.Col == 0 || first.Kind == token.Comment {
		return true
	}

	if n, ok := el.(*cst.Node); ok && n.Kind == cst.KindFuncDef {
		if marker, ok := n.PrevSibling().(*cst.Leaf); ok &&
			marker.Kind == token.KwAsync && marker.Col == 0 {
			return true
		}
	}
	return false
}

func mustFirstLeaf(el cst.Element) *cst.Leaf {
	leaf := cst.FirstLeaf(el)
	if leaf == nil {
		panic(fmt.Errorf("spacing: element has no leaves"))
	}
	return leaf
}
