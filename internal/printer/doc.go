// Package printer re-emits a parsed file line by line, applying the vertical
// spacing recorded in the annotation table. Required counts win; everywhere
// else the author's own blank lines survive up to the configured maximum.
// Line content is copied verbatim, so the output differs from the input only
// in blank lines.
package printer
