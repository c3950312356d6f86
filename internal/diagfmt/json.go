package diagfmt

import (
	"encoding/json"
	"io"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

// LocationJSON is a resolved span. Lines and columns are 1-based, matching
// the pretty renderer.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// FormatDiagnosticsJSON writes the diagnostics as one indented JSON document.
func FormatDiagnosticsJSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet) error {
	out := DiagnosticsOutput{Diagnostics: DiagnosticsJSON(diags, fs)}
	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// DiagnosticsJSON converts diagnostics to their JSON form without encoding,
// for callers embedding them in a larger document.
func DiagnosticsJSON(diags []diag.Diagnostic, fs *source.FileSet) []DiagnosticJSON {
	out := make([]DiagnosticJSON, 0, len(diags))
	for i := range diags {
		out = append(out, diagnosticJSON(&diags[i], fs))
	}
	return out
}

func diagnosticJSON(d *diag.Diagnostic, fs *source.FileSet) DiagnosticJSON {
	item := DiagnosticJSON{
		Severity: severityTag(d.Severity, false),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: locationJSON(d.Primary, fs),
	}
	for _, note := range d.Notes {
		item.Notes = append(item.Notes, NoteJSON{
			Message:  note.Msg,
			Location: locationJSON(note.Span, fs),
		})
	}
	return item
}

func locationJSON(span source.Span, fs *source.FileSet) LocationJSON {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	return LocationJSON{
		File:      file.Path,
		StartLine: start.Line,
		StartCol:  start.Col + 1,
		EndLine:   end.Line,
		EndCol:    end.Col + 1,
	}
}
