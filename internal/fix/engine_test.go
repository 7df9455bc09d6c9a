package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cssvalue/internal/diag"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
)

func loadSheet(t *testing.T, content string) (*source.FileSet, *source.File, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.cssv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return fs, fs.Get(id), path
}

func sheetDiagnostics(file *source.File) []diag.Diagnostic {
	bag := diag.NewBag(0)
	parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return bag.Items()
}

func TestApplySpacingFixes(t *testing.T) {
	fs, file, path := loadSheet(t, "width: calc(1px+2px)\nmargin: 0\nheight: calc(10px -2px)\n")

	res, err := Apply(fs, sheetDiagnostics(file), ApplyOptions{Write: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 2 {
		t.Fatalf("applied = %+v, skipped = %+v", res.Applied, res.Skipped)
	}
	if len(res.FileChanges) != 1 || res.FileChanges[0].Path != "sheet.cssv" {
		t.Fatalf("changes = %+v", res.FileChanges)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "width: calc(1px + 2px)\nmargin: 0\nheight: calc(10px - 2px)\n"
	if string(got) != want {
		t.Fatalf("file = %q, want %q", got, want)
	}

	// после исправления лист разбирается без ошибок
	fs2 := source.NewFileSet()
	id2 := fs2.AddVirtual("fixed.cssv", got)
	if diags := sheetDiagnostics(fs2.Get(id2)); len(diags) != 0 {
		t.Fatalf("fixed sheet still has diagnostics: %v", diags)
	}
}

func TestApplyDryRun(t *testing.T) {
	fs, file, path := loadSheet(t, "calc(1px+2px)\n")
	res, err := Apply(fs, sheetDiagnostics(file), ApplyOptions{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(res.FileChanges[0].Content) != "calc(1px + 2px)\n" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "calc(1px+2px)\n" {
		t.Fatal("dry run must not write")
	}
}

func TestApplySkipsVirtualAndConflicts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<value>", []byte("ab"))
	insert := diag.Diagnostic{
		Code:    diag.SynOperatorSpacing,
		Primary: source.At(id, 1),
		Fixes:   []diag.Fix{{Title: "space", Edits: []diag.FixEdit{{Span: source.At(id, 1), NewText: " "}}}},
	}
	res, err := Apply(fs, []diag.Diagnostic{insert}, ApplyOptions{})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}

	fs, file, _ := loadSheet(t, "ab\n")
	first := insert
	first.Primary = source.At(file.ID, 1)
	first.Fixes = []diag.Fix{{Title: "space", Edits: []diag.FixEdit{{Span: source.At(file.ID, 1), NewText: " "}}}}
	second := first
	res, err = Apply(fs, []diag.Diagnostic{first, second}, ApplyOptions{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 1 {
		t.Fatalf("applied=%d skipped=%d", len(res.Applied), len(res.Skipped))
	}
	if string(res.FileChanges[0].Content) != "a b\n" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
}

func TestOverlaps(t *testing.T) {
	sp := func(s, e uint32) source.Span { return source.Span{Start: s, End: e} }
	tests := []struct {
		a, b source.Span
		want bool
	}{
		{sp(1, 1), sp(1, 1), true},
		{sp(1, 1), sp(2, 2), false},
		{sp(2, 2), sp(1, 3), true},
		{sp(1, 1), sp(1, 3), false},
		{sp(1, 3), sp(3, 5), false},
		{sp(1, 4), sp(3, 5), true},
	}
	for _, tt := range tests {
		if got := overlaps(tt.a, tt.b); got != tt.want {
			t.Errorf("overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
