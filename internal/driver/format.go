package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"fortio.org/safecast"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"pyfmt/internal/cst"
	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/parser"
	"pyfmt/internal/printer"
	"pyfmt/internal/source"
	"pyfmt/internal/spacing"
	"pyfmt/internal/style"
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Diff renders a unified diff for files that would change, without
	// touching them.
	Diff bool
	// Stdout returns formatted content in the results instead of writing
	// files on disk.
	Stdout bool
	// Jobs caps concurrent workers. Zero or negative means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds per-file diagnostics. Zero or negative means 256.
	MaxDiagnostics int
	// NoCache disables the clean-file result cache.
	NoCache bool
	// Style supplies the spacing configuration. Nil means style.Default().
	Style *style.Config
	// Progress receives per-file events when non-nil.
	Progress ProgressSink
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Diff      string
	Err       error
	Diags     []diag.Diagnostic
	// Files resolves the spans inside Diags.
	Files *source.FileSet
}

// FormatPaths formats provided files or directories (recursively collecting
// .py files). When opts.Check is true, files are not modified; Changed
// indicates whether formatting would update the file contents. When
// opts.Stdout is true, formatted content is returned in the results without
// touching files on disk. Files are independent of each other, so they are
// processed concurrently; results come back in collection order.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no Python files found")
	}

	if opts.Style == nil {
		opts.Style = style.Default()
	}

	var cache *DiskCache
	if !opts.NoCache {
		// A cache that fails to open is not worth failing the run over.
		if c, cacheErr := OpenDiskCache("pyfmt"); cacheErr == nil {
			cache = c
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emitQueued(opts.Progress, files)

	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, opts, cache)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions, cache *DiskCache) FormatResult {
	start := time.Now()
	result := FormatResult{Path: path}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)

	emitStage(opts.Progress, path, StageRead)
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
			Primary:  source.Span{},
		})
		result.Err = err
		result.Diags = bag.Items()
		result.Files = fileSet
		emitError(opts.Progress, path, StageRead, err, time.Since(start))
		return result
	}
	file := fileSet.Get(fileID)
	result.Files = fileSet

	styleHash := opts.Style.Hash()
	key := cacheKey(path)
	if cache.IsClean(key, styleHash, Digest(file.Hash)) {
		if opts.Stdout {
			result.Formatted = append([]byte(nil), file.Content...)
		}
		emitDone(opts.Progress, path, StageRead, false, time.Since(start))
		return result
	}

	emitStage(opts.Progress, path, StageParse)
	maxErrors, convErr := safecast.Conv[uint](maxDiag)
	if convErr != nil {
		maxErrors = 0
	}
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	tree := parser.ParseFile(file, lx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
		Style:     opts.Style,
	})
	if bag.HasErrors() {
		bag.Sort()
		result.Err = errors.New("fmt: parse errors present")
		result.Diags = bag.Items()
		emitError(opts.Progress, path, StageParse, result.Err, time.Since(start))
		return result
	}

	emitStage(opts.Progress, path, StageAnnotate)
	ann := cst.NewAnnotations(tree.NumLeaves())
	spacing.RecordOriginal(tree, ann)
	spacing.CalculateRequired(tree, ann, opts.Style)

	emitStage(opts.Progress, path, StagePrint)
	formatted, err := printer.Print(file, tree, ann, opts.Style)
	if err != nil {
		result.Err = err
		result.Diags = bag.Items()
		emitError(opts.Progress, path, StagePrint, err, time.Since(start))
		return result
	}

	changed := !bytes.Equal(formatted, file.Content)
	result.Changed = changed
	if changed && opts.Diff {
		result.Diff = renderDiff(path, file.Content, formatted)
	}
	if opts.Stdout {
		result.Formatted = formatted
	}

	writeBack := changed && !opts.Check && !opts.Diff && !opts.Stdout
	if writeBack {
		emitStage(opts.Progress, path, StageWrite)
		if err := writeFormatted(path, file, formatted); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOWriteFileError,
				Message:  "failed to write file: " + err.Error(),
				Primary:  source.Span{},
			})
			result.Err = err
			result.Diags = bag.Items()
			emitError(opts.Progress, path, StageWrite, err, time.Since(start))
			return result
		}
	}

	switch {
	case !changed:
		_ = cache.MarkClean(key, styleHash, Digest(file.Hash))
	case writeBack:
		_ = cache.MarkClean(key, styleHash, Digest(sha256.Sum256(formatted)))
	}

	result.Diags = bag.Items()
	doneStage := StagePrint
	if writeBack {
		doneStage = StageWrite
	}
	emitDone(opts.Progress, path, doneStage, changed, time.Since(start))
	return result
}

// writeFormatted writes formatted back to path, undoing load-time
// normalization and preserving the file mode.
func writeFormatted(path string, file *source.File, formatted []byte) error {
	out, err := encodeForWrite(file, formatted)
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, out, mode.Perm())
}

// encodeForWrite reverses what FileSet.Load normalized away: CRLF endings
// come back when the file had them, the coding-cookie codec re-applies, and a
// stripped BOM is restored. Files with mixed endings unify to CRLF.
func encodeForWrite(file *source.File, formatted []byte) ([]byte, error) {
	out := formatted
	if file.Flags&source.FileNormalizedCRLF != 0 {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if file.Encoding != "" {
		encoded, err := source.EncodeBytes(out, file.Encoding)
		if err != nil {
			return nil, err
		}
		out = encoded
	}
	if file.Flags&source.FileHadBOM != 0 {
		out = append([]byte{0xEF, 0xBB, 0xBF}, out...)
	}
	return out, nil
}

func renderDiff(path string, original, formatted []byte) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: path + " (original)",
		ToFile:   path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return text
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == ".py" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if filepath.Ext(p) == ".py" {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
