package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"pyfmt/internal/diag"
	"pyfmt/internal/source"
)

func TestDiagnosticsJSONShape(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte("s = 'abc\n"))

	d := diag.NewError(diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 4, End: 8},
		"unterminated string literal").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "string starts here")

	var buf bytes.Buffer
	if err := FormatDiagnosticsJSON(&buf, []diag.Diagnostic{d}, fs); err != nil {
		t.Fatalf("FormatDiagnosticsJSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d, want 1", out.Count, len(out.Diagnostics))
	}
	got := out.Diagnostics[0]
	if got.Severity != "error" {
		t.Errorf("severity = %q, want %q", got.Severity, "error")
	}
	if got.Code != "LEX1002" {
		t.Errorf("code = %q, want %q", got.Code, "LEX1002")
	}
	if got.Title != "Unterminated string literal" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Location.File != "test.py" || got.Location.StartLine != 1 || got.Location.StartCol != 5 {
		t.Errorf("location = %+v", got.Location)
	}
	if len(got.Notes) != 1 || got.Notes[0].Message != "string starts here" {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestDiagnosticsJSONEmpty(t *testing.T) {
	fs := source.NewFileSet()

	var buf bytes.Buffer
	if err := FormatDiagnosticsJSON(&buf, nil, fs); err != nil {
		t.Fatalf("FormatDiagnosticsJSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 0 || len(out.Diagnostics) != 0 {
		t.Errorf("want empty output, got %+v", out)
	}
}
