package parser

import (
	"testing"

	"pyfmt/internal/style"
	"pyfmt/internal/token"
)

func TestSpliceLeadingCommentAttachesToDef(t *testing.T) {
	input := "# doc\ndef f(): pass\n"
	expectSketch(t, input,
		`File(FuncDef(SimpleStmt("# doc") def f ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)
}

func TestSpliceCommentRunMerges(t *testing.T) {
	input := "# a\n# b\ndef f(): pass\n"
	tree := expectSketch(t, input,
		`File(FuncDef(SimpleStmt("# a\n# b") def f ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)

	for _, leaf := range tree.Leaves() {
		if leaf.Kind != token.Comment {
			continue
		}
		if leaf.Line != 2 || leaf.Col != 0 {
			t.Fatalf("merged run at line %d col %d, want line 2 col 0 (last line of run)", leaf.Line, leaf.Col)
		}
		if leaf.EmbeddedBreaks() != 1 {
			t.Fatalf("EmbeddedBreaks = %d, want 1", leaf.EmbeddedBreaks())
		}
		return
	}
	t.Fatal("no comment leaf in tree")
}

func TestSpliceRunKeptSeparateWhenJoinDisabled(t *testing.T) {
	cfg := style.Default()
	cfg.JoinCommentRuns = false
	tree, bag := parseSourceWithOptions(t, "# a\n# b\ndef f(): pass\n", Options{Style: cfg})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", bagSummary(bag))
	}
	want := `File(FuncDef(SimpleStmt("# a") SimpleStmt("# b") def f ( ) : Suite(SimpleStmt(pass Newline))) EOF)`
	if got := sketch(tree.Root); got != want {
		t.Fatalf("tree mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestSpliceBlankLineSplitsRun(t *testing.T) {
	input := "# a\n\n# b\ndef f(): pass\n"
	expectSketch(t, input,
		`File(FuncDef(SimpleStmt("# a") SimpleStmt("# b") def f ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)
}

func TestSpliceColumnMismatchStaysSibling(t *testing.T) {
	input := "  # note\ndef f(): pass\n"
	expectSketch(t, input,
		`File(SimpleStmt("# note") FuncDef(def f ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)
}

func TestSpliceCommentBeforeDecoratedStaysSibling(t *testing.T) {
	input := "# why\n@deco\ndef f(): pass\n"
	expectSketch(t, input,
		`File(SimpleStmt("# why") Decorated(Decorator(@ deco Newline) `+
			`FuncDef(def f ( ) : Suite(SimpleStmt(pass Newline)))) EOF)`)
}

func TestSpliceCommentBetweenDecoratorAndDef(t *testing.T) {
	input := "@deco\n# why\ndef f(): pass\n"
	expectSketch(t, input,
		`File(Decorated(Decorator(@ deco Newline) `+
			`FuncDef(SimpleStmt("# why") def f ( ) : Suite(SimpleStmt(pass Newline)))) EOF)`)
}

func TestSpliceCommentBetweenDecorators(t *testing.T) {
	input := "@a\n# why\n@b\ndef f(): pass\n"
	expectSketch(t, input,
		`File(Decorated(Decorator(@ a Newline) SimpleStmt("# why") Decorator(@ b Newline) `+
			`FuncDef(def f ( ) : Suite(SimpleStmt(pass Newline)))) EOF)`)
}

func TestSpliceSuiteEndOwnership(t *testing.T) {
	input := "def f():\n    pass\n    # inner\n# outer\nx = 1\n"
	expectSketch(t, input,
		`File(FuncDef(def f ( ) : Suite(Newline Indent SimpleStmt(pass Newline) SimpleStmt("# inner") Dedent)) `+
			`SimpleStmt("# outer") SimpleStmt(x = 1 Newline) EOF)`)
}

func TestSpliceSuiteEndCommentAttachesToNextDef(t *testing.T) {
	input := "def f():\n    pass\n# link\ndef g(): pass\n"
	expectSketch(t, input,
		"File(FuncDef(def f ( ) : Suite(Newline Indent SimpleStmt(pass Newline) Dedent)) "+
			`FuncDef(SimpleStmt("# link") def g ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)
}

func TestSpliceMixedColumnsSplitAcrossLevels(t *testing.T) {
	input := "def f():\n    pass\n    # inner\n# outer\ndef g(): pass\n"
	expectSketch(t, input,
		`File(FuncDef(def f ( ) : Suite(Newline Indent SimpleStmt(pass Newline) SimpleStmt("# inner") Dedent)) `+
			`FuncDef(SimpleStmt("# outer") def g ( ) : Suite(SimpleStmt(pass Newline))) EOF)`)
}

func TestSpliceSuiteLeadingComment(t *testing.T) {
	input := "if x:\n    # lead\n    y = 1\n"
	expectSketch(t, input,
		`File(IfStmt(if x : Suite(Newline Indent SimpleStmt("# lead") SimpleStmt(y = 1 Newline) Dedent)) EOF)`)
}

func TestSpliceSuiteLeadingCommentAttachesToMethod(t *testing.T) {
	input := "class C:\n    # doc\n    def m(self):\n        pass\n"
	expectSketch(t, input,
		`File(ClassDef(class C : Suite(Newline Indent `+
			`FuncDef(SimpleStmt("# doc") def m ( self ) : Suite(Newline Indent SimpleStmt(pass Newline) Dedent)) `+
			`Dedent)) EOF)`)
}

func TestSpliceCommentBeforeClauseKeyword(t *testing.T) {
	input := "try:\n    pass\n# note\nexcept ValueError:\n    pass\n"
	expectSketch(t, input,
		`File(TryStmt(try : Suite(Newline Indent SimpleStmt(pass Newline) Dedent) `+
			`SimpleStmt("# note") `+
			`except ValueError : Suite(Newline Indent SimpleStmt(pass Newline) Dedent)) EOF)`)
}

func TestSpliceOutdentedTailCommentReachesTopLevel(t *testing.T) {
	input := "if x:\n    pass\n# tail\n"
	expectSketch(t, input,
		`File(IfStmt(if x : Suite(Newline Indent SimpleStmt(pass Newline) Dedent)) SimpleStmt("# tail") EOF)`)
}

func TestSpliceAsyncDefLeadingComment(t *testing.T) {
	input := "# helper\nasync def f(): pass\n"
	expectSketch(t, input,
		`File(AsyncFuncDef(SimpleStmt("# helper") async `+
			`FuncDef(def f ( ) : Suite(SimpleStmt(pass Newline)))) EOF)`)
}
