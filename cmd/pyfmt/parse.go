package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfmt/internal/diagfmt"
	"pyfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.py",
	Short: "Parse a Python source file and output its line tree",
	Long:  `Parse analyzes a Python source file and outputs the logical line tree the formatter works on`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("spacing", false, "annotate each line with observed and required blank lines")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	showSpacing, err := cmd.Flags().GetBool("spacing")
	if err != nil {
		return fmt.Errorf("failed to get spacing flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	styleCfg, err := resolveStyle(cmd, filePath)
	if err != nil {
		return err
	}

	// Разбираем со стилем: он влияет на слияние комментариев в дереве
	result, err := driver.ParseSpacing(filePath, maxDiagnostics, styleCfg)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		useColor, colorErr := resolveColor(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		opts := diagfmt.PrettyOpts{
			Color:     useColor,
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.FileSet, opts)
	}

	ann := result.Annotations
	if !showSpacing {
		ann = nil
	}
	diagfmt.TreePretty(os.Stdout, result.Tree, ann)
	return nil
}
