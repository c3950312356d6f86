package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pyfmt/internal/style"
)

// resolveStyle picks the effective spacing configuration for a run: the
// --style file when given, otherwise the nearest pyfmt.toml above the first
// input path, otherwise the defaults.
func resolveStyle(cmd *cobra.Command, firstArg string) (*style.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("style")
	if err != nil {
		return nil, err
	}

	startDir := "."
	if firstArg != "" {
		if st, statErr := os.Stat(firstArg); statErr == nil && st.IsDir() {
			startDir = firstArg
		} else {
			startDir = filepath.Dir(firstArg)
		}
	}
	return style.Resolve(explicit, startDir)
}

// resolveColor interprets the global --color flag against the given stream.
func resolveColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f)), nil
}
