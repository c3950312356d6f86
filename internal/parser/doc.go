// Package parser builds the statement-level concrete syntax tree consumed by
// the spacing passes and the printer.
//
// The grammar is deliberately shallow. Compound statements (if, while, for,
// try, with, class, def, decorated and async forms) become nodes with their
// indented suites as children; everything inside a logical line stays a flat
// run of leaves. The annotator and the printer only reason about vertical
// structure, so expression interiors never need a tree shape.
//
// Standalone comments are spliced during parsing: consecutive same-column
// comment lines merge into one leaf, and a merged run directly above a class
// or function definition at the same column becomes a leading child of that
// definition. Comments closing an indented suite attach to the innermost
// suite whose indentation does not exceed the comment's column.
//
// Parse errors are reported through the diagnostic reporter and never abort
// the walk; the tree stays structurally sound so downstream passes can still
// run over partially broken input.
package parser
