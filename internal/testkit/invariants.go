package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pyfmt/internal/cst"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a parsed
// tree:
// 1) the root is a parentless File node
// 2) parent and sibling links agree with child order everywhere
// 3) an in-order walk visits every registered leaf exactly once
// 4) leaf lines never decrease in registration order (a suite-end comment that
//    re-attaches outside its suite moves in document order, not in the registry)
// 5) no node is empty
func CheckTreeInvariants(tree *cst.Tree) error {
	if tree == nil || tree.Root == nil {
		return fmt.Errorf("nil tree or root")
	}
	if tree.Root.Kind != cst.KindFile {
		return fmt.Errorf("root kind is %v, want File", tree.Root.Kind)
	}
	if tree.Root.Parent() != nil {
		return fmt.Errorf("root has a parent")
	}

	// 2) link consistency, 5) no empty nodes; leaves collected along the way
	var walked []*cst.Leaf
	if err := walkChecked(tree.Root, &walked); err != nil {
		return err
	}

	// 3) walk matches the registry
	numLeaves, err := safecast.Conv[uint32](tree.NumLeaves())
	if err != nil {
		return fmt.Errorf("leaf count overflow: %w", err)
	}
	walkedLen, err := safecast.Conv[uint32](len(walked))
	if err != nil {
		return fmt.Errorf("walk count overflow: %w", err)
	}
	if walkedLen != numLeaves {
		return fmt.Errorf("walk found %d leaves, registry holds %d", walkedLen, numLeaves)
	}
	seen := make(map[cst.LeafID]bool, len(walked))
	for _, leaf := range walked {
		if seen[leaf.ID] {
			return fmt.Errorf("leaf %d appears twice in the walk", leaf.ID)
		}
		seen[leaf.ID] = true
		if tree.Leaf(leaf.ID) != leaf {
			return fmt.Errorf("leaf %d in the tree is not the registered leaf", leaf.ID)
		}
	}

	// 4) the registry follows source order
	var prevFirst uint32
	for _, leaf := range tree.Leaves() {
		first, _ := leaf.LineSpan()
		if first < prevFirst {
			return fmt.Errorf("leaf %d starts on line %d after a leaf starting on line %d", leaf.ID, first, prevFirst)
		}
		prevFirst = first
	}
	return nil
}

func walkChecked(node *cst.Node, out *[]*cst.Leaf) error {
	if node.NumChildren() == 0 {
		return fmt.Errorf("empty %v node", node.Kind)
	}
	for i, child := range node.Children() {
		if child.Parent() != node {
			return fmt.Errorf("child %d of %v node has a wrong parent link", i, node.Kind)
		}
		if i > 0 && child.PrevSibling() != node.Child(i-1) {
			return fmt.Errorf("child %d of %v node has a wrong prev sibling", i, node.Kind)
		}
		if i+1 < node.NumChildren() && child.NextSibling() != node.Child(i+1) {
			return fmt.Errorf("child %d of %v node has a wrong next sibling", i, node.Kind)
		}
		switch e := child.(type) {
		case *cst.Leaf:
			*out = append(*out, e)
		case *cst.Node:
			if err := walkChecked(e, out); err != nil {
				return err
			}
		}
	}
	return nil
}
