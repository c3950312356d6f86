package printer

import (
	"errors"

	"pyfmt/internal/cst"
	"pyfmt/internal/source"
	"pyfmt/internal/style"
	"pyfmt/internal/token"
)

// lineGroup is one run of physical source lines emitted as a unit: a
// statement line together with the continuation lines of its multi-line
// strings, or a merged comment block. Breaks are decided once per group,
// before its first line.
type lineGroup struct {
	first, last uint32
	lead        *cst.Leaf
}

// Print renders the file with the spacing the annotations dictate. The output
// ends with exactly one newline; a file with no material leaves prints empty.
func Print(file *source.File, tree *cst.Tree, ann *cst.Annotations, cfg *style.Config) ([]byte, error) {
	if file == nil {
		return nil, errors.New("printer: nil source file")
	}
	if tree == nil {
		return nil, errors.New("printer: nil tree")
	}
	if ann == nil {
		return nil, errors.New("printer: nil annotations")
	}
	if cfg == nil {
		cfg = style.Default()
	}

	w := writer{
		file: file,
		cfg:  cfg,
		buf:  make([]byte, 0, len(file.Content)),
	}
	for _, g := range groupLines(tree) {
		w.writeGroup(g, ann)
	}
	return w.buf, nil
}

// groupLines partitions the material leaves into line groups. The walk follows
// the leaf registry, which stays source-ordered even where a suite-end comment
// re-attaches outside its suite, so groups come out in file order. A leaf
// starting inside the open group's line range extends it, anything else opens
// a new group led by that leaf.
func groupLines(tree *cst.Tree) []lineGroup {
	var groups []lineGroup
	for _, leaf := range tree.Leaves() {
		if leaf.Kind.IsLayout() || leaf.Kind == token.EOF {
			continue
		}
		first, last := leaf.LineSpan()
		if len(groups) > 0 {
			g := &groups[len(groups)-1]
			if first >= g.first && first <= g.last {
				if last > g.last {
					g.last = last
				}
				continue
			}
		}
		groups = append(groups, lineGroup{first: first, last: last, lead: leaf})
	}
	return groups
}

type writer struct {
	file  *source.File
	cfg   *style.Config
	buf   []byte
	lines int
}

func (w *writer) writeGroup(g lineGroup, ann *cst.Annotations) {
	if w.lines > 0 {
		for range w.breaksBefore(g.lead, ann) - 1 {
			w.buf = append(w.buf, '\n')
		}
	}
	for line := g.first; line <= g.last; line++ {
		w.buf = append(w.buf, w.file.Line(line)...)
		w.buf = append(w.buf, '\n')
		w.lines++
	}
}

// breaksBefore resolves the line-break count in front of a group: a required
// count is authoritative, an original count is clamped to the configured
// blank-line maximum, and a leaf with neither stays on the next line.
func (w *writer) breaksBefore(lead *cst.Leaf, ann *cst.Annotations) int {
	if breaks, ok := ann.Required(lead.ID); ok {
		return breaks
	}
	breaks, ok := ann.Original(lead.ID)
	if !ok {
		return 1
	}
	if breaks < 1 {
		breaks = 1
	}
	if limit := 1 + w.cfg.MaxBlankLines; breaks > limit {
		breaks = limit
	}
	return breaks
}
