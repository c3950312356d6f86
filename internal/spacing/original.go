package spacing

import (
	"cmp"
	"slices"

	"pyfmt/internal/cst"
	"pyfmt/internal/token"
)

// RecordOriginal computes, for every leaf that starts a source line, how many
// line breaks the original file contained before that line, and stores the
// counts in ann. Layout leaves never start a logical line and are ignored.
//
// The pass knows nothing about statements or definitions; it is pure line
// accounting over the leaf stream.
func RecordOriginal(tree *cst.Tree, ann *cst.Annotations) {
	r := &recorder{}
	r.collect(tree.Root)
	r.record(ann)
}

type recorder struct {
	worklist []*cst.Leaf
}

func (r *recorder) collect(el cst.Element) {
	switch e := el.(type) {
	case *cst.Leaf:
		if e.Kind.IsLayout() {
			return
		}
		r.push(e)
	case *cst.Node:
		for _, child := range e.Children() {
			r.collect(child)
		}
	}
}

func (r *recorder) push(leaf *cst.Leaf) {
	if len(r.worklist) == 0 || leaf.Line != r.worklist[len(r.worklist)-1].Line {
		r.worklist = append(r.worklist, leaf)
		return
	}
	// A string running past its start line moves the accounting cursor even
	// when it does not lead a line, so it must enter the scan.
	if leaf.Kind == token.String && leaf.EmbeddedBreaks() > 0 {
		r.worklist = append(r.worklist, leaf)
	}
}

func (r *recorder) record(ann *cst.Annotations) {
	slices.SortStableFunc(r.worklist, func(a, b *cst.Leaf) int {
		return cmp.Compare(a.Line, b.Line)
	})

	prev := 1
	for _, leaf := range r.worklist {
		offset := 0
		if leaf.Kind == token.Comment {
			// A comment leaf's line is the last line of the (possibly merged)
			// comment; the gap is measured to its first line.
			offset = leaf.EmbeddedBreaks()
		}

		breaks := int(leaf.Line) - prev - offset
		if breaks < 0 {
			breaks = 0
		}

		prev = int(leaf.Line)
		if leaf.Kind == token.String {
			// The next line-leading leaf measures its gap from the string's
			// last line, not its first.
			prev += leaf.EmbeddedBreaks()
		}

		ann.SetOriginal(leaf.ID, breaks)
	}
}
