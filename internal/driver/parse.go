package driver

import (
	"context"
	"fmt"

	"cssvalue/internal/ast"
	"cssvalue/internal/diag"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
	"cssvalue/internal/testkit"
	"cssvalue/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Value   ast.CSSValue  // nil on error
	Err     *parser.Error // первая ошибка разбора
	Bag     *diag.Bag
}

// OK reports whether the value parsed (and passed span checks when enabled).
func (r *ParseResult) OK() bool { return r.Err == nil && !r.Bag.HasErrors() }

// ParseString parses a value given as a string.
func ParseString(ctx context.Context, input string, opts Options) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(ValueName, []byte(input)))
	return parseWhole(ctx, fs, file, opts)
}

// Parse loads path and parses its whole content as one value.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return parseWhole(ctx, fs, fs.Get(fileID), opts), nil
}

func parseWhole(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	_, span := trace.BeginContext(ctx, trace.ScopePass, "parse")
	done := opts.phase("parse")

	res := &ParseResult{FileSet: fs, File: file, Bag: diag.NewBag(opts.MaxDiagnostics)}
	v, perr := parser.ParseSource(file)
	if perr != nil {
		res.Err = perr
		res.Bag.Add(perr.Diagnostic())
		trace.Error(trace.FromContext(ctx), "parse", perr.Message, span.ID())
		done(perr.Kind.String())
		span.End("error")
		return res
	}
	res.Value = v
	done(fmt.Sprintf("%d lists", len(v)))

	if opts.VerifySpans {
		bounds := source.Span{File: file.ID, Start: 0, End: off(len(file.Content))}
		verifyValue(res.Bag, file, v, bounds)
	}
	span.End("ok")
	return res
}

func verifyValue(bag *diag.Bag, file *source.File, v ast.CSSValue, bounds source.Span) bool {
	if err := testkit.CheckSpanInvariants(v, file, bounds); err != nil {
		bag.Add(diag.NewError(diag.UnknownCode, bounds, "span invariant violated: "+err.Error()))
		return false
	}
	return true
}
