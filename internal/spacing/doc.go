// Package spacing decides the vertical layout between statements: how many
// line breaks (and therefore blank lines) separate each statement from the one
// before it when a file is re-printed.
//
// Two passes run in order over one tree and one annotation table:
//
//  1. RecordOriginal walks the leaves, finds each one that starts a source
//     line, and records how many line breaks the author had before it. The
//     printer uses these values to preserve intentional blank lines where no
//     rule forces a count.
//  2. CalculateRequired walks the statements and forces break counts where
//     the style rules demand them: around class and function definitions,
//     between decorators and their targets, between leading comments and the
//     definitions they describe, and before the first statement after a
//     definition body.
//
// A break count of 1 means "next line, no blank line"; k means k-1 blank
// lines. Counts land in the cst.Annotations side table, never on the tree.
//
// The calculator threads its context (nesting depths, decorator and comment
// adjacency, definition-just-ended) through the recursion as a value. Each
// visit returns the successor state, so traversing a subtree can never leak
// state into a sibling except through the returned value.
//
// Both passes assume a well-formed tree from the parser. A definition without
// its keyword, or an element with no leaves, is a builder bug and panics.
package spacing
