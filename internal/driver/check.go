package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fortio.org/safecast"

	"cssvalue/internal/diag"
	"cssvalue/internal/parser"
	"cssvalue/internal/pipeline"
	"cssvalue/internal/source"
	"cssvalue/internal/trace"
)

// FileResult is the outcome of checking one value sheet.
type FileResult struct {
	Path    string // display path, relative to the batch base dir
	FileID  source.FileID
	Sheet   *parser.Sheet // nil when the file could not be loaded
	Bag     *diag.Bag
	Elapsed time.Duration
	Verify  time.Duration // part of Elapsed spent on span checks
}

// OK reports whether the file loaded and produced no errors.
func (r *FileResult) OK() bool { return r.Sheet != nil && !r.Bag.HasErrors() }

// ParseSheetFile checks a single value sheet.
func ParseSheetFile(ctx context.Context, path string, opts Options) (*CheckResult, error) {
	return ParseFiles(ctx, []string{path}, "", opts)
}

// checkSheet parses every entry of file. Workers call it concurrently with
// a shared read-only FileSet.
func checkSheet(ctx context.Context, file *source.File, display string, opts Options) FileResult {
	ctx, span := trace.BeginContext(ctx, trace.ScopeFile, "file:"+display)
	started := time.Now()
	tracer := trace.FromContext(ctx)

	bag := diag.NewBag(opts.MaxDiagnostics)
	sheet := parser.ParseFile(file, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: opts.maxErrors(),
	})

	for _, e := range sheet.Entries {
		if e.Err != nil {
			trace.Point(tracer, trace.ScopeNode, "entry", fmt.Sprintf("line %d: %s", e.Line, e.Err.Kind), span.ID())
		}
	}

	var verify time.Duration
	if opts.VerifySpans {
		pipeline.Emit(opts.Progress, pipeline.Event{File: display, Stage: pipeline.StageVerify, Status: pipeline.StatusWorking})
		verifyStart := time.Now()
		for _, e := range sheet.Entries {
			if e.Err == nil {
				verifyValue(bag, file, e.Value, e.Span)
			}
		}
		verify = time.Since(verifyStart)
	}

	span.WithExtra("entries", strconv.Itoa(len(sheet.Entries))).
		WithExtra("errors", strconv.Itoa(sheet.Errors)).
		End("")

	return FileResult{
		Path:    display,
		FileID:  file.ID,
		Sheet:   sheet,
		Bag:     bag,
		Elapsed: time.Since(started),
		Verify:  verify,
	}
}

// loadFailure turns an I/O error into a result carrying an IO4001 diagnostic.
// The path is registered as an empty virtual file so the diagnostic still
// renders as "path:1:1".
func loadFailure(fs *source.FileSet, path, display string, err error, opts Options) FileResult {
	id := fs.AddVirtual(path, nil)
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.At(id, 0), "failed to load file: "+err.Error()))
	pipeline.Emit(opts.Progress, pipeline.Event{File: display, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
	return FileResult{Path: display, FileID: id, Bag: bag}
}

func off(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
