package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"pyfmt/internal/cst"
)

// TreePretty writes an indented dump of the parse tree. With a non-nil
// annotation table each annotated leaf also shows its break counts, which is
// how `parse --spacing` exposes the two passes.
func TreePretty(w io.Writer, tree *cst.Tree, ann *cst.Annotations) {
	writeElement(w, tree.Root, ann, 0)
}

func writeElement(w io.Writer, el cst.Element, ann *cst.Annotations, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := el.(type) {
	case *cst.Leaf:
		fmt.Fprintf(w, "%s%s", indent, e.Kind.String())
		if e.Text != "" {
			fmt.Fprintf(w, " %q", e.Text)
		}
		fmt.Fprintf(w, " @%d:%d", e.Line, e.Col+1)
		if ann != nil {
			if breaks, ok := ann.Original(e.ID); ok {
				fmt.Fprintf(w, " original=%d", breaks)
			}
			if breaks, ok := ann.Required(e.ID); ok {
				fmt.Fprintf(w, " required=%d", breaks)
			}
		}
		fmt.Fprintln(w)
	case *cst.Node:
		fmt.Fprintf(w, "%s%s\n", indent, e.Kind)
		for _, child := range e.Children() {
			writeElement(w, child, ann, depth+1)
		}
	}
}
