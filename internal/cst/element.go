package cst

import (
	"strings"

	"pyfmt/internal/token"
)

// LeafID identifies a leaf within its tree. IDs are assigned in document
// order while the tree is built and index the Annotations side table.
type LeafID uint32

// Element is either a *Leaf or a *Node. The interface is sealed; no other
// implementations exist.
type Element interface {
	// Parent returns the owning node, nil for the root.
	Parent() *Node
	// PrevSibling returns the element before this one under the same parent.
	PrevSibling() Element
	// NextSibling returns the element after this one under the same parent.
	NextSibling() Element

	element()
}

// Leaf is a terminal token in the tree.
type Leaf struct {
	ID   LeafID
	Kind token.Kind
	Line uint32 // 1-based; last line for merged comments, first line otherwise
	Col  uint32 // 0-based byte column
	Text string

	parent   *Node
	childIdx int
}

func (l *Leaf) element() {}

func (l *Leaf) Parent() *Node { return l.parent }

func (l *Leaf) PrevSibling() Element {
	if l.parent == nil || l.childIdx == 0 {
		return nil
	}
	return l.parent.children[l.childIdx-1]
}

func (l *Leaf) NextSibling() Element {
	if l.parent == nil || l.childIdx+1 >= len(l.parent.children) {
		return nil
	}
	return l.parent.children[l.childIdx+1]
}

// EmbeddedBreaks counts the line breaks inside the leaf's text. Non-zero only
// for merged comment runs and multi-line strings.
func (l *Leaf) EmbeddedBreaks() int {
	return strings.Count(l.Text, "\n")
}

// LineSpan returns the first and last physical line the leaf occupies.
// Comment leaves report their last line in Line, every other kind its first.
func (l *Leaf) LineSpan() (first, last uint32) {
	breaks := uint32(l.EmbeddedBreaks())
	if l.Kind == token.Comment {
		return l.Line - breaks, l.Line
	}
	return l.Line, l.Line + breaks
}

// Node is a composite element owning an ordered run of children.
type Node struct {
	Kind NodeKind

	children []Element
	parent   *Node
	childIdx int
}

func (n *Node) element() {}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) PrevSibling() Element {
	if n.parent == nil || n.childIdx == 0 {
		return nil
	}
	return n.parent.children[n.childIdx-1]
}

func (n *Node) NextSibling() Element {
	if n.parent == nil || n.childIdx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[n.childIdx+1]
}

// Children returns the node's children. Callers must not mutate the slice.
func (n *Node) Children() []Element { return n.children }

// NumChildren reports the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child.
func (n *Node) Child(i int) Element { return n.children[i] }

// Append attaches el as the last child, rewiring its parent link. An element
// belongs to at most one parent; re-appending an owned element panics.
func (n *Node) Append(el Element) {
	switch e := el.(type) {
	case *Leaf:
		if e.parent != nil {
			panic("cst: leaf already has a parent")
		}
		e.parent = n
		e.childIdx = len(n.children)
	case *Node:
		if e.parent != nil {
			panic("cst: node already has a parent")
		}
		e.parent = n
		e.childIdx = len(n.children)
	}
	n.children = append(n.children, el)
}
