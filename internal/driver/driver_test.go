package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cssvalue/internal/diag"
	"cssvalue/internal/parser"
	"cssvalue/internal/pipeline"
	"cssvalue/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenizeString(t *testing.T) {
	res := TokenizeString(context.Background(), "1px solid", Options{})
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	want := []token.Kind{token.Number, token.Word, token.Whitespace, token.Word, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d: kind %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
	if res.File.Path != ValueName {
		t.Errorf("path = %q, want %q", res.File.Path, ValueName)
	}
}

func TestParseStringOK(t *testing.T) {
	res := ParseString(context.Background(), "1px solid #fff, calc(100% - 2px)", Options{VerifySpans: true})
	if !res.OK() {
		t.Fatalf("expected success, got %v / %v", res.Err, res.Bag.Items())
	}
	if len(res.Value) != 2 {
		t.Fatalf("lists = %d, want 2", len(res.Value))
	}
}

func TestParseStringError(t *testing.T) {
	res := ParseString(context.Background(), "#12345", Options{})
	if res.OK() {
		t.Fatal("expected failure")
	}
	if res.Err.Kind != parser.MalformedHashColor {
		t.Fatalf("kind = %v", res.Err.Kind)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynMalformedHashColor {
		t.Fatalf("diagnostics = %v", items)
	}
	if res.Value != nil {
		t.Fatal("value must be nil on error")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(context.Background(), filepath.Join(t.TempDir(), "nope.cssv"), Options{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cssv", "margin: 0 auto;\ncolor: #fff\n")
	writeFile(t, dir, "sub/b.cssv", "// comment\nwidth: calc(10px-5px)\n\n1px solid\n")
	writeFile(t, dir, "skip.txt", "#12345\n")

	rec := &pipeline.Recorder{}
	res, err := ParseDir(context.Background(), dir, Options{Jobs: 2, Progress: rec, VerifySpans: true})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(res.Files))
	}
	if res.Files[0].Path != "a.cssv" || res.Files[1].Path != "sub/b.cssv" {
		t.Fatalf("paths = %q, %q", res.Files[0].Path, res.Files[1].Path)
	}
	if !res.Files[0].OK() {
		t.Fatalf("a.cssv: %v", res.Files[0].Bag.Items())
	}
	if res.Files[1].OK() {
		t.Fatal("sub/b.cssv should fail")
	}
	if got := res.Entries(); got != 4 {
		t.Errorf("entries = %d, want 4", got)
	}
	if got := res.Failed(); got != 1 {
		t.Errorf("failed = %d, want 1", got)
	}

	bag := res.Diagnostics(0)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynOperatorSpacing {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	start, _ := res.FileSet.Resolve(bag.Items()[0].Primary)
	if start.Line != 2 {
		t.Errorf("line = %d, want 2", start.Line)
	}

	var queued, done, failed int
	for _, ev := range rec.Events() {
		switch ev.Status {
		case pipeline.StatusQueued:
			queued++
		case pipeline.StatusDone:
			done++
		case pipeline.StatusError:
			failed++
			if ev.Err == nil {
				t.Error("error event without Err")
			}
		}
	}
	if queued != 2 || done != 1 || failed != 1 {
		t.Errorf("events: queued=%d done=%d error=%d", queued, done, failed)
	}
	if !res.Timings.Has(pipeline.StageParse) {
		t.Error("parse timing missing")
	}
}

func TestParseFilesLoadFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.cssv", "1px\n")
	missing := filepath.Join(dir, "missing.cssv")

	res, err := ParseFiles(context.Background(), []string{good, missing}, dir, Options{})
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	if res.Failed() != 1 {
		t.Fatalf("failed = %d, want 1", res.Failed())
	}
	bag := res.Diagnostics(0)
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.IOLoadFileError {
		t.Fatalf("code = %v", d.Code)
	}
	if f := res.FileSet.Get(d.Primary.File); f == nil || !strings.HasSuffix(f.Path, "missing.cssv") {
		t.Fatalf("diagnostic not attached to missing file: %+v", d.Primary)
	}
}

func TestParseFilesMaxDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.cssv", "#1\n#12\n#12345\n1px\n")

	res, err := ParseSheetFile(context.Background(), path, Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatalf("ParseSheetFile: %v", err)
	}
	sheet := res.Files[0].Sheet
	if sheet.Errors != 2 {
		t.Fatalf("errors = %d, want 2", sheet.Errors)
	}
	if res.Files[0].Bag.Len() != 2 {
		t.Fatalf("bag = %d, want 2", res.Files[0].Bag.Len())
	}
}

func TestParseFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.cssv", "1px\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ParseFiles(ctx, []string{path}, dir, Options{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestListFilesExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.VAL", "1px\n")
	writeFile(t, dir, "a.val", "1px\n")
	writeFile(t, dir, "c.cssv", "1px\n")

	files, err := ListFiles(dir, []string{".val"})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.val" {
		t.Fatalf("files = %v", files)
	}
}

func TestParseDirTestdata(t *testing.T) {
	res, err := ParseDir(context.Background(), filepath.Join("..", "..", "testdata", "sheets"), Options{VerifySpans: true})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("files = %d", len(res.Files))
	}
	byPath := map[string]*FileResult{}
	for i := range res.Files {
		byPath[res.Files[i].Path] = &res.Files[i]
	}

	valid := byPath["valid.cssv"]
	if valid == nil || !valid.OK() {
		t.Fatalf("valid.cssv: %v", valid.Bag.Items())
	}
	invalid := byPath["invalid.cssv"]
	if invalid == nil {
		t.Fatal("invalid.cssv missing")
	}
	// каждая строка invalid.cssv содержит ровно одну ошибку
	if invalid.Sheet.Errors != len(invalid.Sheet.Entries) {
		t.Fatalf("errors = %d, entries = %d", invalid.Sheet.Errors, len(invalid.Sheet.Entries))
	}
	want := []diag.Code{
		diag.SynOperatorSpacing,
		diag.SynOperatorSpacing,
		diag.SynMalformedHashColor,
		diag.SynEmptyFunctionArgument,
		diag.SynUnexpectedToken,
		diag.LexUnterminatedString,
		diag.SynEmptyFunctionArgument,
	}
	items := invalid.Bag.Items()
	if len(items) != len(want) {
		t.Fatalf("diagnostics = %d, want %d", len(items), len(want))
	}
	for i, code := range want {
		if items[i].Code != code {
			t.Errorf("line %d: code %v, want %v", i+2, items[i].Code.ID(), code.ID())
		}
	}
}
