package testkit_test

import (
	"strings"
	"testing"

	"cssvalue/internal/ast"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
	"cssvalue/internal/testkit"
)

func parse(t *testing.T, input string) (ast.CSSValue, *source.File, source.Span) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("<value>", []byte(input)))
	v, err := parser.ParseSource(f)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return v, f, source.Span{File: f.ID, Start: 0, End: uint32(len(input))}
}

func TestParsedValuesSatisfyInvariants(t *testing.T) {
	inputs := []string{
		"red",
		"10px solid #abc",
		"1px, 2px ,3px",
		"calc(100% - var(--x) * 2)",
		"rgba(0, 0, 0, .5) 'a b' \"c\"",
		"calc(1px + 2px * 3 / 4)",
		"url(x) , , local(y)",
	}
	for _, in := range inputs {
		v, f, bounds := parse(t, in)
		if err := testkit.CheckSpanInvariants(v, f, bounds); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestDetectsBrokenSpans(t *testing.T) {
	v, f, bounds := parse(t, "a calc(1px + 2px)")

	fn := v[0][1].(*ast.Function)
	op := fn.Args[0].(*ast.Operation)

	tests := []struct {
		name   string
		mutate func()
		undo   func()
		want   string
	}{
		{
			name:   "child outside parent",
			mutate: func() { op.Right.(*ast.Number).Loc.End = 30 },
			undo:   func() { op.Right.(*ast.Number).Loc.End = 16 },
			want:   "outside parent span",
		},
		{
			name:   "operator not between operands",
			mutate: func() { op.OpLoc = source.Span{File: f.ID, Start: 7, End: 8} },
			undo:   func() { op.OpLoc = source.Span{File: f.ID, Start: 11, End: 12} },
			want:   "is not between operands",
		},
		{
			name:   "overlapping values",
			mutate: func() { v[0][0].(*ast.Word).Loc.End = 4 },
			undo:   func() { v[0][0].(*ast.Word).Loc.End = 1 },
			want:   "overlaps previous value",
		},
		{
			name:   "empty span",
			mutate: func() { v[0][0].(*ast.Word).Loc.End = 0 },
			undo:   func() { v[0][0].(*ast.Word).Loc.End = 1 },
			want:   "empty span",
		},
	}

	if err := testkit.CheckSpanInvariants(v, f, bounds); err != nil {
		t.Fatalf("unexpected error before mutation: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()
			defer tt.undo()
			err := testkit.CheckSpanInvariants(v, f, bounds)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestBoundsOutsideContent(t *testing.T) {
	v, f, _ := parse(t, "red")
	if err := testkit.CheckSpanInvariants(v, f, source.Span{File: f.ID, End: 10}); err == nil {
		t.Fatal("expected bounds error")
	}
	if err := testkit.CheckSpanInvariants(v, nil, source.Span{}); err == nil {
		t.Fatal("expected nil file error")
	}
}
