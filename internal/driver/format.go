package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cssvalue/internal/format"
	"cssvalue/internal/source"
	"cssvalue/internal/trace"
)

// FormatOptions configure FormatPaths.
type FormatOptions struct {
	Check      bool // только сравнить, не записывать
	Stdout     bool // не записывать, вернуть Formatted
	Jobs       int
	Extensions []string
}

// FormatResult describes one formatted value sheet.
type FormatResult struct {
	Path      string
	Formatted []byte
	Changed   bool
	Err       error
}

// FormatPaths formats the given sheets and directories. Files are rewritten
// in place unless Check or Stdout is set. Per-file failures are reported in
// FormatResult.Err.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	ctx, span := trace.BeginContext(ctx, trace.ScopePass, "fmt")
	defer span.End("")

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil || !st.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := ListFiles(p, exts)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", p, err)
		}
		files = append(files, found...)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts FormatOptions) FormatResult {
	_, span := trace.BeginContext(ctx, trace.ScopeFile, "fmt:"+path)
	defer span.End("")

	res := FormatResult{Path: path}
	// у каждого воркера свой FileSet
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	file := fs.Get(id)
	formatted, err := format.FormatFile(file)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = formatted
	res.Changed = !bytes.Equal(formatted, file.Content)

	if res.Changed && !opts.Check && !opts.Stdout {
		if file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF|source.FileNormalizedNFC) != 0 {
			res.Err = fmt.Errorf("%s: content was normalized on load, refusing to rewrite", path)
			return res
		}
		mode := os.FileMode(0o644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode); err != nil {
			res.Err = fmt.Errorf("write %s: %w", path, err)
		}
	}
	return res
}
