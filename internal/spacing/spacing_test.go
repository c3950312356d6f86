package spacing_test

import (
	"testing"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/parser"
	"pyfmt/internal/source"
	"pyfmt/internal/spacing"
	"pyfmt/internal/style"
	"pyfmt/internal/token"
)

// parseTree builds the tree for input and fails the test on any diagnostic.
func parseTree(t *testing.T, input string) *cst.Tree {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tree := parser.ParseFile(file, lx, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		var msgs string
		for _, d := range bag.Items() {
			msgs += d.Code.ID() + " " + d.Message + "; "
		}
		t.Fatalf("parse failed: %s", msgs)
	}
	return tree
}

// annotate runs both passes with the default style.
func annotate(t *testing.T, tree *cst.Tree) *cst.Annotations {
	t.Helper()
	return annotateWith(t, tree, style.Default())
}

func annotateWith(t *testing.T, tree *cst.Tree, cfg *style.Config) *cst.Annotations {
	t.Helper()
	ann := cst.NewAnnotations(tree.NumLeaves())
	spacing.RecordOriginal(tree, ann)
	spacing.CalculateRequired(tree, ann, cfg)
	return ann
}

// leadingLeaf returns the material leaf that starts the given source line.
func leadingLeaf(t *testing.T, tree *cst.Tree, line uint32) *cst.Leaf {
	t.Helper()
	for _, leaf := range tree.Leaves() {
		if leaf.Kind.IsLayout() || leaf.Kind == token.EOF {
			continue
		}
		if first, _ := leaf.LineSpan(); first == line {
			return leaf
		}
	}
	t.Fatalf("no material leaf starts line %d", line)
	return nil
}

// leafWithText returns the first leaf whose text matches exactly.
func leafWithText(t *testing.T, tree *cst.Tree, text string) *cst.Leaf {
	t.Helper()
	for _, leaf := range tree.Leaves() {
		if leaf.Text == text {
			return leaf
		}
	}
	t.Fatalf("no leaf with text %q", text)
	return nil
}

func eofLeaf(t *testing.T, tree *cst.Tree) *cst.Leaf {
	t.Helper()
	leaves := tree.Leaves()
	last := leaves[len(leaves)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last leaf is %v, want EOF", last.Kind)
	}
	return last
}

func wantOriginal(t *testing.T, ann *cst.Annotations, leaf *cst.Leaf, want int) {
	t.Helper()
	got, ok := ann.Original(leaf.ID)
	if !ok {
		t.Fatalf("leaf %d (%s line %d) has no original break count, want %d",
			leaf.ID, leaf.Kind, leaf.Line, want)
	}
	if got != want {
		t.Errorf("leaf %d (%s line %d): original breaks = %d, want %d",
			leaf.ID, leaf.Kind, leaf.Line, got, want)
	}
}

func wantNoOriginal(t *testing.T, ann *cst.Annotations, leaf *cst.Leaf) {
	t.Helper()
	if got, ok := ann.Original(leaf.ID); ok {
		t.Errorf("leaf %d (%s line %d): unexpected original break count %d",
			leaf.ID, leaf.Kind, leaf.Line, got)
	}
}

func wantRequired(t *testing.T, ann *cst.Annotations, leaf *cst.Leaf, want int) {
	t.Helper()
	got, ok := ann.Required(leaf.ID)
	if !ok {
		t.Fatalf("leaf %d (%s line %d) has no required break count, want %d",
			leaf.ID, leaf.Kind, leaf.Line, want)
	}
	if got != want {
		t.Errorf("leaf %d (%s line %d): required breaks = %d, want %d",
			leaf.ID, leaf.Kind, leaf.Line, got, want)
	}
}

func wantNoRequired(t *testing.T, ann *cst.Annotations, leaf *cst.Leaf) {
	t.Helper()
	if got, ok := ann.Required(leaf.ID); ok {
		t.Errorf("leaf %d (%s line %d): unexpected required break count %d",
			leaf.ID, leaf.Kind, leaf.Line, got)
	}
}

// TestPassesCompose runs the full pipeline over a small module and checks
// both annotation tables side by side.
func TestPassesCompose(t *testing.T) {
	input := "x = 1\n" +
		"\n" +
		"# doc\n" +
		"def f():\n" +
		"    pass\n" +
		"y = 2\n"
	tree := parseTree(t, input)
	ann := annotate(t, tree)

	x := leadingLeaf(t, tree, 1)
	doc := leadingLeaf(t, tree, 3)
	def := leadingLeaf(t, tree, 4)
	pass_ := leadingLeaf(t, tree, 5)
	y := leadingLeaf(t, tree, 6)

	wantOriginal(t, ann, x, 0)
	wantOriginal(t, ann, doc, 2)
	wantOriginal(t, ann, def, 1)
	wantOriginal(t, ann, pass_, 1)
	wantOriginal(t, ann, y, 1)
	wantOriginal(t, ann, eofLeaf(t, tree), 1)

	wantNoRequired(t, ann, x)
	wantRequired(t, ann, doc, 2)
	wantRequired(t, ann, def, 1)
	wantNoRequired(t, ann, pass_)
	wantRequired(t, ann, y, 3)
	wantNoRequired(t, ann, eofLeaf(t, tree))
}
