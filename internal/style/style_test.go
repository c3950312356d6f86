package style

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStyle(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write style file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BlankLinesAroundTopLevelDefinition != 2 {
		t.Errorf("BlankLinesAroundTopLevelDefinition = %d, want 2", cfg.BlankLinesAroundTopLevelDefinition)
	}
	if cfg.MaxBlankLines != 2 {
		t.Errorf("MaxBlankLines = %d, want 2", cfg.MaxBlankLines)
	}
	if !cfg.JoinCommentRuns {
		t.Error("JoinCommentRuns should default to true")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeStyle(t, t.TempDir(), "[format]\nblank_lines_around_top_level_definition = 1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BlankLinesAroundTopLevelDefinition != 1 {
		t.Errorf("BlankLinesAroundTopLevelDefinition = %d, want 1", cfg.BlankLinesAroundTopLevelDefinition)
	}
	if cfg.MaxBlankLines != 2 {
		t.Errorf("MaxBlankLines = %d, want default 2", cfg.MaxBlankLines)
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeStyle(t, t.TempDir(),
		"[format]\nblank_lines_around_top_level_definition = 3\nmax_blank_lines = 4\njoin_comment_runs = false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		BlankLinesAroundTopLevelDefinition: 3,
		MaxBlankLines:                      4,
		JoinCommentRuns:                    false,
	}
	if *cfg != want {
		t.Errorf("Load = %+v, want %+v", *cfg, want)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "negative top-level blanks",
			content: "[format]\nblank_lines_around_top_level_definition = -1\n",
		},
		{
			name:    "negative max blanks",
			content: "[format]\nmax_blank_lines = -2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStyle(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("expected error for negative value")
			}
		})
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeStyle(t, t.TempDir(), "[format\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeStyle(t, root, "[format]\nmax_blank_lines = 1\n")

	nested := filepath.Join(root, "pkg", "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the style file above the start dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file in %q", path, root)
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	// An isolated temp dir has no pyfmt.toml anywhere up to the filesystem
	// root in practice; if one exists the loaded config is still valid.
	cfg, err := Resolve("", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Resolve returned nil config")
	}
}

func TestHashChangesWithConfig(t *testing.T) {
	a := Default()
	b := Default()
	if a.Hash() != b.Hash() {
		t.Error("identical configs must hash identically")
	}
	b.BlankLinesAroundTopLevelDefinition = 1
	if a.Hash() == b.Hash() {
		t.Error("different configs must hash differently")
	}
}
