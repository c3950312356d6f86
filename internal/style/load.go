package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the style file searched for in the formatted tree.
const FileName = "pyfmt.toml"

type fileConfig struct {
	Format formatSection `toml:"format"`
}

type formatSection struct {
	BlankLinesAroundTopLevelDefinition int  `toml:"blank_lines_around_top_level_definition"`
	MaxBlankLines                      int  `toml:"max_blank_lines"`
	JoinCommentRuns                    bool `toml:"join_comment_runs"`
}

// Load reads a style file. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	cfg := Default()
	if meta.IsDefined("format", "blank_lines_around_top_level_definition") {
		if raw.Format.BlankLinesAroundTopLevelDefinition < 0 {
			return nil, fmt.Errorf("%s: blank_lines_around_top_level_definition must be non-negative", path)
		}
		cfg.BlankLinesAroundTopLevelDefinition = raw.Format.BlankLinesAroundTopLevelDefinition
	}
	if meta.IsDefined("format", "max_blank_lines") {
		if raw.Format.MaxBlankLines < 0 {
			return nil, fmt.Errorf("%s: max_blank_lines must be non-negative", path)
		}
		cfg.MaxBlankLines = raw.Format.MaxBlankLines
	}
	if meta.IsDefined("format", "join_comment_runs") {
		cfg.JoinCommentRuns = raw.Format.JoinCommentRuns
	}
	return cfg.withDefaults(), nil
}

// Find walks up from startDir looking for a pyfmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve picks the effective configuration: an explicit file if given, else
// the nearest pyfmt.toml above startDir, else the defaults.
func Resolve(explicitPath, startDir string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
