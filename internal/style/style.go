package style

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Config holds the vertical-spacing knobs. All other layout is preserved
// verbatim from the source, so this is the whole style surface.
type Config struct {
	// BlankLinesAroundTopLevelDefinition is the number of blank lines forced
	// before a top-level class or function definition (and before the first
	// statement after one).
	BlankLinesAroundTopLevelDefinition int

	// MaxBlankLines caps how many consecutive author blank lines survive
	// between statements no spacing rule governs.
	MaxBlankLines int

	// JoinCommentRuns merges consecutive standalone comment lines at the same
	// column into one block, so the block moves as a unit.
	JoinCommentRuns bool
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		BlankLinesAroundTopLevelDefinition: 2,
		MaxBlankLines:                      2,
		JoinCommentRuns:                    true,
	}
}

// withDefaults replaces out-of-range values with the stock ones.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.BlankLinesAroundTopLevelDefinition < 0 {
		c.BlankLinesAroundTopLevelDefinition = d.BlankLinesAroundTopLevelDefinition
	}
	if c.MaxBlankLines < 0 {
		c.MaxBlankLines = d.MaxBlankLines
	}
	return c
}

// Hash returns a stable digest of the effective configuration. It feeds the
// result cache key so style changes invalidate cached clean verdicts.
func (c *Config) Hash() string {
	sum := sha256.Sum256(fmt.Appendf(nil, "v1|%d|%d|%t",
		c.BlankLinesAroundTopLevelDefinition, c.MaxBlankLines, c.JoinCommentRuns))
	return hex.EncodeToString(sum[:8])
}
