package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cssvalue/internal/ast"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
)

func parseValue(t *testing.T, input string) (ast.CSSValue, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<value>", []byte(input))
	v, err := parser.ParseSource(fs.Get(id))
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return v, fs
}

func TestFormatASTPretty(t *testing.T) {
	v, fs := parseValue(t, "calc(1px + 2px), red")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, v, fs); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"CSSValue (lists: 2)",
		"├─ List[0] (values: 1)",
		"│  └─ Function calc (span: 1:1-1:16)",
		"│     └─ Operation + (span: 1:6-1:15)",
		"│        ├─ Number 1px (span: 1:6-1:9)",
		"│        └─ Number 2px (span: 1:12-1:15)",
		"└─ List[1] (values: 1)",
		"   └─ Word red (span: 1:18-1:21)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTTree(t *testing.T) {
	v, _ := parseValue(t, "1px")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, v); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		" CSSValue",
		"     |",
		"  List[0]",
		"     |",
		"Number 1px",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatASTTreeBranches(t *testing.T) {
	v, _ := parseValue(t, "a b")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, v); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[3], "/") || !strings.Contains(lines[3], "\\") {
		t.Fatalf("expected both branch connectors, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "Word a") || !strings.HasSuffix(lines[4], "Word b") {
		t.Fatalf("unexpected leaf row %q", lines[4])
	}
}

func TestFormatASTJSON(t *testing.T) {
	v, _ := parseValue(t, "rgb(255, 0, 0) 'x'")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, v); err != nil {
		t.Fatal(err)
	}

	var out ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Type != "CSSValue" || len(out.Children) != 1 {
		t.Fatalf("unexpected root %+v", out)
	}
	if out.Span.Start != 0 || out.Span.End != 18 {
		t.Errorf("root span = %+v", out.Span)
	}
	list := out.Children[0]
	if len(list.Children) != 2 {
		t.Fatalf("expected two values, got %+v", list)
	}
	fn := list.Children[0]
	if fn.Type != "Function" || fn.Fields["name"] != "rgb" || fn.Fields["args"] != "3" || len(fn.Children) != 3 {
		t.Errorf("unexpected function %+v", fn)
	}
	q := list.Children[1]
	if q.Type != "Quoted" || q.Text != "x" || q.Fields["quote"] != "single" {
		t.Errorf("unexpected quoted %+v", q)
	}
}

func TestFormatASTMsgpackRoundTrip(t *testing.T) {
	v, _ := parseValue(t, "10px solid #abcd, calc(100% - 2em)")

	var buf bytes.Buffer
	if err := FormatASTMsgpack(&buf, v); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeASTMsgpack(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := BuildASTOutput(v)
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if !bytes.Equal(wantJSON, gotJSON) {
		t.Fatalf("msgpack round trip mismatch:\n got %s\nwant %s", gotJSON, wantJSON)
	}
}
