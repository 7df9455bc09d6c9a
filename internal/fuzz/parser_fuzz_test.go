package fuzztests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cssvalue/internal/ast"
	"cssvalue/internal/diag"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
	"cssvalue/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsValue(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.cssv", input))
		v, perr := parser.ParseSource(file)
		if perr != nil {
			if v != nil {
				t.Fatal("tree returned together with an error")
			}
			if int(perr.Span.End) > len(file.Content) {
				t.Fatalf("error span %v outside input", perr.Span)
			}
			return
		}

		bounds := source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))} //nolint:gosec // clamped to 64 KiB
		if err := testkit.CheckSpanInvariants(v, file, bounds); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, input)
		}

		// печать и повторный разбор дают то же дерево
		var buf bytes.Buffer
		if err := ast.Print(&buf, v); err != nil {
			t.Fatalf("print: %v", err)
		}
		again, err := parser.ParseValue(buf.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v\ninput: %q", buf.String(), err, input)
		}
		if !ast.Equal(v, again) {
			t.Fatalf("round trip changed the tree\ninput:   %q\nprinted: %q", input, buf.String())
		}
	})
}

// FuzzSheetNoHang checks that value sheets parse in bounded time.
func FuzzSheetNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("a: 1px\n// c\n\nb: calc(1px+2px);\n"))
	f.Add([]byte(":\n;\n: ;\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.cssv", input))
			bag := diag.NewBag(0)
			sheet := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
			if sheet.Errors != bag.Len() {
				t.Errorf("errors = %d, diagnostics = %d", sheet.Errors, bag.Len())
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("sheet parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
