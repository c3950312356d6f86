package driver

import (
	"fortio.org/safecast"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/parser"
	"pyfmt/internal/source"
	"pyfmt/internal/spacing"
	"pyfmt/internal/style"
)

// ParseResult bundles everything the parse command needs to render.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Tree
	Bag     *diag.Bag
	// Annotations is filled by ParseSpacing and nil after a plain Parse.
	Annotations *cst.Annotations
}

// Parse loads path and parses it into a tree. Parse errors land in the
// returned bag; the tree is structurally complete either way.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	return parseWith(path, maxDiagnostics, nil)
}

// ParseSpacing parses path and runs both spacing passes over the tree, so the
// parse command can dump recorded and required blank lines per leaf. The
// passes only run when the parse produced no errors.
func ParseSpacing(path string, maxDiagnostics int, cfg *style.Config) (*ParseResult, error) {
	if cfg == nil {
		cfg = style.Default()
	}

	res, err := parseWith(path, maxDiagnostics, cfg)
	if err != nil {
		return nil, err
	}
	if res.Bag.HasErrors() {
		return res, nil
	}

	ann := cst.NewAnnotations(res.Tree.NumLeaves())
	spacing.RecordOriginal(res.Tree, ann)
	spacing.CalculateRequired(res.Tree, ann, cfg)
	res.Annotations = ann
	return res, nil
}

func parseWith(path string, maxDiagnostics int, cfg *style.Config) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	var maxErrors uint
	maxErrors, err = safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	tree := parser.ParseFile(file, lx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
		Style:     cfg,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Bag:     bag,
	}, nil
}
