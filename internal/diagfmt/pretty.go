package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
)

// Pretty writes one block per diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// The caret underline covers the diagnostic's span on its first line,
// aligned by display width so wide runes do not shift it.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for i := range diags {
		writePretty(w, &diags[i], fs, opts)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col+1,
		severityTag(d.Severity, opts.Color), d.Code.ID(), d.Message)
	writeContext(w, file, start, end)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nfile := fs.Get(note.Span.File)
		nstart, nend := fs.Resolve(note.Span)
		label := "note"
		if opts.Color {
			label = noteColor.Sprint(label)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			nfile.Path, nstart.Line, nstart.Col+1, label, note.Msg)
		writeContext(w, nfile, nstart, nend)
	}
}

// writeContext prints the referenced source line and a caret underline.
// Lines past the end of the file (synthetic EOF positions) get no context.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol) {
	if int(start.Line) > file.NumLines() {
		return
	}
	line := file.Line(start.Line)
	fmt.Fprintf(w, "    %s\n", line)

	byteCol := min(int(start.Col), len(line))
	pad := runewidth.StringWidth(line[:byteCol])
	fmt.Fprintf(w, "    %s^%s\n",
		strings.Repeat(" ", pad),
		strings.Repeat("~", underlineWidth(line, start, end)))
}

// underlineWidth measures the span's display width on its first line, not
// counting the caret cell itself.
func underlineWidth(line string, start, end source.LineCol) int {
	if end.Line != start.Line || end.Col <= start.Col {
		return 0
	}
	from := min(int(start.Col), len(line))
	to := min(int(end.Col), len(line))
	width := runewidth.StringWidth(line[from:to])
	if width < 1 {
		return 0
	}
	return width - 1
}

func severityTag(sev diag.Severity, colored bool) string {
	var label string
	var c *color.Color
	switch sev {
	case diag.SevError:
		label, c = "error", errorColor
	case diag.SevWarning:
		label, c = "warning", warningColor
	default:
		label, c = "info", infoColor
	}
	if !colored {
		return label
	}
	return c.Sprint(label)
}
