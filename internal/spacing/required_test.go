package spacing_test

import (
	"testing"

	"pyfmt/internal/style"
)

func TestTopLevelDefinitionsForceTwoBlanks(t *testing.T) {
	input := "x = 0\n" +
		"def f():\n" +
		"    pass\n" +
		"def g():\n" +
		"    pass\n" +
		"class A:\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantNoRequired(t, ann, leadingLeaf(t, tree, 1))
	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 3))
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 6), 3)
}

func TestNestedDefinitionsGetOneBlank(t *testing.T) {
	input := "x = 0\n" +
		"class C:\n" +
		"    def m(self):\n" +
		"        pass\n" +
		"    def n(self):\n" +
		"        pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 5), 2)
}

func TestConfiguredTopLevelBlankCount(t *testing.T) {
	input := "x = 0\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	cfg := style.Default()
	cfg.BlankLinesAroundTopLevelDefinition = 1
	ann := annotateWith(t, tree, cfg)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
}

func TestDecoratorForcesTopLevelSpacing(t *testing.T) {
	input := "x = 0\n" +
		"@deco\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestDecoratedClass(t *testing.T) {
	input := "x = 0\n" +
		"@register\n" +
		"class A:\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestDecoratorStack(t *testing.T) {
	input := "x = 0\n" +
		"@a.b(arg)\n" +
		"@c\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// Only the first decorator of a stack carries the definition spacing.
	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 1)
}

func TestLeadingCommentGluesToDefinition(t *testing.T) {
	input := "x = 0\n" +
		"# doc\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// The comment takes the definition's breathing room; the keyword stays
	// glued underneath it.
	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestSeparatedCommentDoesNotGlue(t *testing.T) {
	input := "x = 0\n" +
		"# doc\n" +
		"\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
}

func TestSiblingCommentGluesDecorator(t *testing.T) {
	input := "x = 0\n" +
		"# note\n" +
		"@deco\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// Comments stay siblings of a decorated statement; adjacency is tracked
	// by line number instead of tree shape.
	wantNoRequired(t, ann, leadingLeaf(t, tree, 2))
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 1)
}

func TestCommentBetweenDecoratorAndDefinition(t *testing.T) {
	input := "x = 0\n" +
		"@deco\n" +
		"# why\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	// After a decorator the comment keeps its author spacing.
	wantNoRequired(t, ann, leadingLeaf(t, tree, 3))
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 1)
}

func TestCommentBetweenDecorators(t *testing.T) {
	input := "x = 0\n" +
		"@a\n" +
		"# note\n" +
		"@b\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 3))
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 1)
	wantRequired(t, ann, leadingLeaf(t, tree, 5), 1)
}

func TestSiblingCommentAdjacentGluesDefinition(t *testing.T) {
	input := "x = 0\n" +
		"  # odd\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// The comment's column keeps it a sibling, but the line tracker still
	// sees it directly above the keyword.
	wantNoRequired(t, ann, leadingLeaf(t, tree, 2))
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestTwoTrackersPreferStructuralGlue(t *testing.T) {
	input := "# sib\n" +
		"x = 1\n" +
		"# lead\n" +
		"def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// The attached comment decides; the stale sibling comment on line 1
	// plays no part.
	wantNoRequired(t, ann, leadingLeaf(t, tree, 1))
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 1)
}

func TestMethodAfterComment(t *testing.T) {
	input := "class C:\n" +
		"    def m(self):\n" +
		"        pass\n" +
		"    # note\n" +
		"    def n(self):\n" +
		"        pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 5), 1)
}

func TestDecoratedMethod(t *testing.T) {
	input := "class C:\n" +
		"    @property\n" +
		"    def p(self):\n" +
		"        pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestStatementAfterFunctionBody(t *testing.T) {
	input := "a = 0\n" +
		"def f():\n" +
		"    pass\n" +
		"x = 1\n" +
		"y = 2\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	// Only the statement directly after the body is forced.
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 5))
}

func TestStatementAfterNestedFunctionBody(t *testing.T) {
	input := "def f():\n" +
		"    def g():\n" +
		"        pass\n" +
		"    return g\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 2)
}

func TestCompoundStatementAfterBody(t *testing.T) {
	input := "a = 0\n" +
		"def f():\n" +
		"    pass\n" +
		"if x:\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 5))
}

func TestAsyncDefinitionGovernedAtMarker(t *testing.T) {
	input := "x = 0\n" +
		"async def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	// The def keyword shares the marker's line and must stay there.
	wantNoRequired(t, ann, leafWithText(t, tree, "def"))
}

func TestAsyncDefinitionLeadingComment(t *testing.T) {
	input := "x = 0\n" +
		"# helper\n" +
		"async def f():\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 1)
}

func TestAsyncLoopAfterDefinition(t *testing.T) {
	input := "x = 0\n" +
		"async def f():\n" +
		"    pass\n" +
		"async for i in xs:\n" +
		"    pass\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
}

func TestSuiteTailCommentForcedAtTopLevel(t *testing.T) {
	input := "def f():\n" +
		"    pass\n" +
		"  # tail\n" +
		"x = 1\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// The outdented comment leaves the suite and becomes the statement after
	// the body; comments count as top level whatever their column.
	wantRequired(t, ann, leadingLeaf(t, tree, 3), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 4))
}

func TestStatementAfterClassBody(t *testing.T) {
	input := "x = 0\n" +
		"class A:\n" +
		"    pass\n" +
		"# tail\n" +
		"y = 1\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 3)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
	wantNoRequired(t, ann, leadingLeaf(t, tree, 5))
}

func TestDefinitionInsideIfGetsOneBlank(t *testing.T) {
	input := "if c:\n" +
		"    def f():\n" +
		"        pass\n" +
		"y = 1\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	// Conditional nesting adds no depth, but the indented column keeps the
	// definition off the top-level rule.
	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	wantRequired(t, ann, leadingLeaf(t, tree, 4), 3)
}

func TestElseClauseClearsDefinitionFlag(t *testing.T) {
	input := "if c:\n" +
		"    def f():\n" +
		"        pass\n" +
		"else:\n" +
		"    pass\n" +
		"y = 1\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantRequired(t, ann, leadingLeaf(t, tree, 2), 2)
	// The else suite consumes the post-definition state before its first
	// statement and before anything after the chain.
	wantNoRequired(t, ann, leadingLeaf(t, tree, 5))
	wantNoRequired(t, ann, leadingLeaf(t, tree, 6))
}

func TestDefinitionOnFirstLine(t *testing.T) {
	tree := parseTree(t, "def f():\n    pass\n")
	ann := annotate(t, tree)

	// The comment tracker starts at line zero, so line 1 reads as adjacent.
	// The printer never emits breaks before the first line anyway.
	wantRequired(t, ann, leadingLeaf(t, tree, 1), 1)
}

func TestUngovernedStatementsKeepAuthorSpacing(t *testing.T) {
	input := "x = 1\n" +
		"y = 2\n" +
		"\n" +
		"z = 3\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	wantNoRequired(t, ann, leadingLeaf(t, tree, 1))
	wantNoRequired(t, ann, leadingLeaf(t, tree, 2))
	wantNoRequired(t, ann, leadingLeaf(t, tree, 4))
	wantNoRequired(t, ann, eofLeaf(t, tree))

	wantOriginal(t, ann, leadingLeaf(t, tree, 2), 1)
	wantOriginal(t, ann, leadingLeaf(t, tree, 4), 2)
}
