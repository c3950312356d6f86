package cst

import "fmt"

const unset = -1

// Annotations is the per-run side table of spacing values keyed by LeafID.
// Each slot is write-once; see the package documentation.
type Annotations struct {
	original []int32
	required []int32
}

// NewAnnotations creates empty tables sized for a tree's leaves.
func NewAnnotations(numLeaves int) *Annotations {
	a := &Annotations{
		original: make([]int32, numLeaves),
		required: make([]int32, numLeaves),
	}
	for i := range a.original {
		a.original[i] = unset
		a.required[i] = unset
	}
	return a
}

// SetOriginal records the number of source line breaks before id's line.
func (a *Annotations) SetOriginal(id LeafID, breaks int) {
	if breaks < 0 {
		panic(fmt.Errorf("cst: negative original break count %d for leaf %d", breaks, id))
	}
	if a.original[id] != unset {
		panic(fmt.Errorf("cst: original breaks for leaf %d written twice", id))
	}
	a.original[id] = int32(breaks)
}

// Original returns the recorded source break count for id.
func (a *Annotations) Original(id LeafID) (int, bool) {
	if v := a.original[id]; v != unset {
		return int(v), true
	}
	return 0, false
}

// SetRequired records how many line breaks the output must contain before id.
// A count of 1 means "next line, no blank"; k means k-1 blank lines.
func (a *Annotations) SetRequired(id LeafID, breaks int) {
	if breaks < 1 {
		panic(fmt.Errorf("cst: required break count %d for leaf %d below 1", breaks, id))
	}
	if a.required[id] != unset {
		panic(fmt.Errorf("cst: required breaks for leaf %d written twice", id))
	}
	a.required[id] = int32(breaks)
}

// Required returns the forced break count for id, if any rule governed it.
func (a *Annotations) Required(id LeafID) (int, bool) {
	if v := a.required[id]; v != unset {
		return int(v), true
	}
	return 0, false
}
