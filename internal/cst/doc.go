// Package cst defines the concrete syntax tree the formatter works on.
//
// # Data model
//
// A tree has exactly two element shapes behind the Element interface:
//
//   - Leaf: a terminal token with its kind, 1-based start line, 0-based
//     column, and raw text. A merged standalone comment run is one Leaf whose
//     Text joins the physical lines with '\n' and whose Line points at the
//     LAST line of the run; a multi-line string Leaf keeps its FIRST line.
//     Every Leaf carries a LeafID assigned in source token order at build
//     time.
//   - Node: an ordered, non-empty sequence of child elements with a NodeKind
//     tag. Ownership flows strictly parent to child; parent and sibling
//     pointers exist for navigation only.
//
// The tree is append-only while the parser builds it and read-only afterwards.
// Formatting passes never mutate elements; everything they compute lands in an
// Annotations side table keyed by LeafID.
//
// # Annotations
//
// Annotations stores two per-leaf values:
//
//   - Original: how many line breaks preceded the leaf's line in the source.
//     Written once per line-leading leaf by the spacing recorder.
//   - Required: how many line breaks the printed output must contain before
//     the leaf. Written at most once per leaf by the spacing calculator; a
//     missing value means "no explicit governance, keep a single break unless
//     the printer's own policy preserves author blank lines."
//
// Both tables are created per formatting run and discarded once the printer
// consumed them. A second write to the same slot panics: a rewrite means two
// rules claimed the same leaf and the output would depend on visit order.
package cst
