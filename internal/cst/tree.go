package cst

import (
	"fmt"

	"pyfmt/internal/source"
	"pyfmt/internal/token"

	"fortio.org/safecast"
)

// Tree owns the root node and the leaf registry of one parsed file.
type Tree struct {
	File source.FileID
	Root *Node

	leaves []*Leaf
}

// NewTree creates a tree with an empty KindFile root.
func NewTree(file source.FileID) *Tree {
	return &Tree{
		File: file,
		Root: &Node{Kind: KindFile},
	}
}

// NewLeaf registers a fresh leaf with the next LeafID. The leaf is unattached;
// the caller appends it to a node.
func (t *Tree) NewLeaf(kind token.Kind, line, col uint32, text string) *Leaf {
	id, err := safecast.Conv[uint32](len(t.leaves))
	if err != nil {
		panic(fmt.Errorf("leaf count overflow: %w", err))
	}
	leaf := &Leaf{
		ID:   LeafID(id),
		Kind: kind,
		Line: line,
		Col:  col,
		Text: text,
	}
	t.leaves = append(t.leaves, leaf)
	return leaf
}

// NewNode creates an unattached node of the given kind.
func (t *Tree) NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NumLeaves reports how many leaves the tree holds.
func (t *Tree) NumLeaves() int { return len(t.leaves) }

// Leaf resolves a LeafID back to its leaf.
func (t *Tree) Leaf(id LeafID) *Leaf { return t.leaves[id] }

// Leaves returns every leaf in registration order, which follows the source
// token stream. Document order can differ where a suite-end comment re-attaches
// outside its suite. Callers must not mutate the slice.
func (t *Tree) Leaves() []*Leaf { return t.leaves }

// FirstLeaf returns the leftmost leaf under el, or nil for an element with no
// leaves. Well-formed trees have no empty nodes, so nil signals a builder bug.
func FirstLeaf(el Element) *Leaf {
	switch e := el.(type) {
	case *Leaf:
		return e
	case *Node:
		for _, child := range e.children {
			if leaf := FirstLeaf(child); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// IsCommentStatement reports whether el is a standalone comment: a simple
// statement whose first child is a comment leaf.
func IsCommentStatement(el Element) bool {
	node, ok := el.(*Node)
	if !ok || node.Kind != KindSimpleStmt || len(node.children) == 0 {
		return false
	}
	leaf, ok := node.children[0].(*Leaf)
	return ok && leaf.Kind == token.Comment
}
