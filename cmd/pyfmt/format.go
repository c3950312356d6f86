package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyfmt/internal/diagfmt"
	"pyfmt/internal/driver"
	"pyfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format Python source files",
	Long:  `Fmt rewrites Python files and directories in place, normalizing blank lines between top level definitions`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().Bool("diff", false, "print unified diffs instead of rewriting files")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	fmtCmd.Flags().Bool("no-cache", false, "reformat files even when cached as clean")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && showDiff {
		return fmt.Errorf("fmt: --stdout cannot be used with --diff")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	rewriteMode := !check && !showDiff && !writeToStdout && outputFormat == "text"
	if uiModeValue == uiModeOn && !rewriteMode {
		return fmt.Errorf("fmt: --ui on cannot be combined with --check, --diff, --stdout, or --format json")
	}
	useTUI := rewriteMode && shouldUseTUI(uiModeValue)

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}

	tmr := observ.NewTimer()

	styleIdx := tmr.Begin("style")
	styleCfg, err := resolveStyle(cmd, args[0])
	tmr.End(styleIdx, "")
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Check:          check,
		Diff:           showDiff,
		Stdout:         writeToStdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		NoCache:        noCache,
		Style:          styleCfg,
	}

	formatIdx := tmr.Begin("format")
	var formatResults []driver.FormatResult
	if useTUI {
		formatResults, err = runFmtWithUI(cmd.Context(), "pyfmt fmt", args, opts)
	} else {
		formatResults, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	tmr.End(formatIdx, fmt.Sprintf("%d files", len(formatResults)))
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	renderIdx := tmr.Begin("render")
	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(formatResults, useColor, &hasErrors)
			tmr.End(renderIdx, "")
			if showTimings {
				fmt.Fprint(os.Stderr, tmr.Summary())
			}
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		if useTUI {
			// Построчный статус уже на экране, остаются только ошибки
			renderFmtErrors(formatResults, useColor, &hasErrors)
		} else {
			renderFmtText(formatResults, check, showDiff, quiet, useColor, &hasErrors, &hasChanges)
		}
	case "json":
		if err := renderFmtJSON(formatResults, check, &hasErrors, &hasChanges); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	tmr.End(renderIdx, "")

	if showTimings {
		fmt.Fprint(os.Stderr, tmr.Summary())
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// renderResultDiags writes one file's diagnostics to stderr.
func renderResultDiags(res driver.FormatResult, useColor bool) {
	if len(res.Diags) > 0 && res.Files != nil {
		opts := diagfmt.PrettyOpts{
			Color:     useColor,
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, res.Diags, res.Files, opts)
	}
}

func renderFmtStdout(results []driver.FormatResult, useColor bool, hasErrors *bool) {
	for _, res := range results {
		renderResultDiags(res, useColor)
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		_, _ = os.Stdout.Write(res.Formatted)
	}
}

// renderFmtErrors reports failures after a TUI run, where per file statuses
// are already on screen.
func renderFmtErrors(results []driver.FormatResult, useColor bool, hasErrors *bool) {
	for _, res := range results {
		renderResultDiags(res, useColor)
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
		}
	}
}

func renderFmtText(results []driver.FormatResult, check, diffMode, quiet, useColor bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		renderResultDiags(res, useColor)
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if res.Diff != "" {
			_, printErr := fmt.Fprint(os.Stdout, res.Diff)
			if printErr != nil {
				panic(printErr)
			}
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					_, printErr := fmt.Fprintln(os.Stdout, res.Path)
					if printErr != nil {
						panic(printErr)
					}
				}
			}
			continue
		}

		if diffMode {
			continue
		}

		if res.Changed && !quiet {
			_, printErr := fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
			if printErr != nil {
				panic(printErr)
			}
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool, hasErrors, hasChanges *bool) error {
	type jsonResult struct {
		Path        string                   `json:"path"`
		Changed     bool                     `json:"changed"`
		Error       string                   `json:"error,omitempty"`
		CheckRun    bool                     `json:"check"`
		Diff        string                   `json:"diff,omitempty"`
		Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check, Diff: res.Diff}
		if res.Err != nil {
			*hasErrors = true
			jr.Error = res.Err.Error()
		}
		if res.Changed {
			*hasChanges = true
		}
		if len(res.Diags) > 0 && res.Files != nil {
			jr.Diagnostics = diagfmt.DiagnosticsJSON(res.Diags, res.Files)
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
