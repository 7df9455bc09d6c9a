package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cssvalue/internal/diag"
	"cssvalue/internal/pipeline"
	"cssvalue/internal/source"
	"cssvalue/internal/trace"
)

// CheckResult collects the per-file results of a batch, sorted by path.
type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult
	Timings pipeline.Timings
}

// Diagnostics merges the diagnostics of every file into one sorted bag.
func (r *CheckResult) Diagnostics(limit int) *diag.Bag {
	bag := diag.NewBag(limit)
	for i := range r.Files {
		bag.Merge(r.Files[i].Bag)
	}
	bag.Sort()
	return bag
}

// Entries returns the number of parsed sheet entries.
func (r *CheckResult) Entries() int {
	n := 0
	for i := range r.Files {
		if s := r.Files[i].Sheet; s != nil {
			n += len(s.Entries)
		}
	}
	return n
}

// Failed returns the number of files that did not load or had errors.
func (r *CheckResult) Failed() int {
	n := 0
	for i := range r.Files {
		if !r.Files[i].OK() {
			n++
		}
	}
	return n
}

// ListFiles возвращает отсортированный список файлов с данными расширениями.
func ListFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir checks every value sheet under dir in parallel.
func ParseDir(ctx context.Context, dir string, opts Options) (*CheckResult, error) {
	files, err := ListFiles(dir, opts.extensions())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return ParseFiles(ctx, files, dir, opts)
}

// ParseFiles checks the given value sheets with at most opts.Jobs workers.
// Display paths are relative to baseDir when it is set. Load failures become
// IO4001 diagnostics; only cancellation of ctx returns an error.
func ParseFiles(ctx context.Context, paths []string, baseDir string, opts Options) (*CheckResult, error) {
	ctx, span := trace.BeginContext(ctx, trace.ScopePass, "check")
	defer span.End("")

	fileSet := source.NewFileSetWithBase(baseDir)
	res := &CheckResult{FileSet: fileSet}
	if len(paths) == 0 {
		return res, nil
	}

	displays := make([]string, len(paths))
	for i, p := range paths {
		displays[i] = pipeline.DisplayName(p, baseDir)
	}
	pipeline.EmitQueued(opts.Progress, displays)

	// FileSet не потокобезопасен: загружаем заранее, воркеры только читают
	loadDone := opts.phase("load")
	loadStart := time.Now()
	results := make([]FileResult, len(paths))
	ids := make([]source.FileID, len(paths))
	failed := make([]bool, len(paths))
	for i, p := range paths {
		id, err := fileSet.Load(p)
		if err != nil {
			results[i] = loadFailure(fileSet, p, displays[i], err, opts)
			failed[i] = true
			continue
		}
		ids[i] = id
	}
	// указатели берём после загрузки: Add может переаллоцировать слайс
	loaded := make([]*source.File, len(paths))
	for i, id := range ids {
		if !failed[i] {
			loaded[i] = fileSet.Get(id)
		}
	}
	res.Timings.Set(pipeline.StageLoad, time.Since(loadStart))
	loadDone(fmt.Sprintf("%d files", len(paths)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	parseDone := opts.phase("parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, file := range loaded {
		if file == nil {
			continue
		}
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pipeline.Emit(opts.Progress, pipeline.Event{File: displays[i], Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = checkSheet(gctx, file, displays[i], opts)
			status := pipeline.StatusDone
			var evErr error
			if !results[i].OK() {
				status = pipeline.StatusError
				evErr = errors.New(summary(&results[i]))
			}
			pipeline.Emit(opts.Progress, pipeline.Event{
				File:    displays[i],
				Stage:   pipeline.StageParse,
				Status:  status,
				Err:     evErr,
				Elapsed: results[i].Elapsed,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var parseTotal, verifyTotal time.Duration
	for i := range results {
		parseTotal += results[i].Elapsed - results[i].Verify
		verifyTotal += results[i].Verify
	}
	res.Timings.Set(pipeline.StageParse, parseTotal)
	if opts.VerifySpans {
		res.Timings.Set(pipeline.StageVerify, verifyTotal)
	}
	parseDone(fmt.Sprintf("%d workers", min(jobs, len(paths))))

	sort.SliceStable(results, func(a, b int) bool { return results[a].Path < results[b].Path })
	res.Files = results
	span.WithExtra("files", fmt.Sprint(len(paths))).WithExtra("failed", fmt.Sprint(res.Failed()))
	return res, nil
}

func summary(r *FileResult) string {
	if r.Sheet == nil {
		return "not loaded"
	}
	return fmt.Sprintf("%d of %d entries failed", r.Sheet.Errors, len(r.Sheet.Entries))
}
