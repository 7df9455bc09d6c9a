package format

import (
	"bytes"
	"errors"
	"fmt"

	"cssvalue/internal/ast"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
)

// ErrSheetHasErrors is returned for sheets with unparsable entries.
var ErrSheetHasErrors = errors.New("format: sheet has syntax errors")

// FormatSheet renders sheet with every value printed canonically and
// "property : value" normalised to "property: value".
func FormatSheet(sheet *parser.Sheet) ([]byte, error) {
	if sheet == nil || sheet.File == nil {
		return nil, errors.New("format: nil sheet")
	}
	if !sheet.OK() {
		return nil, ErrSheetHasErrors
	}

	sf := sheet.File
	w := NewWriter(sf)
	var prev uint32
	var val bytes.Buffer
	for _, e := range sheet.Entries {
		if e.Property != "" {
			w.CopyRange(prev, e.PropertySpan.End)
			w.WriteString(": ")
		} else {
			w.CopyRange(prev, e.Span.Start)
		}

		val.Reset()
		if err := ast.Print(&val, e.Value); err != nil {
			return nil, fmt.Errorf("format: line %d: %w", e.Line, err)
		}
		w.WriteString(val.String())
		prev = e.Span.End
	}
	w.CopyRange(prev, uint32(len(sf.Content))) //nolint:gosec // file size is checked on load
	return w.Bytes(), nil
}

// FormatFile parses sf as a value sheet and formats it.
func FormatFile(sf *source.File) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	return FormatSheet(parser.ParseFile(sf, parser.Options{MaxErrors: 1}))
}

// CheckRoundTrip formats sf, re-parses the result and compares every entry
// with the original tree.
func CheckRoundTrip(sf *source.File) (ok bool, msg string) {
	orig := parser.ParseFile(sf, parser.Options{})
	if !orig.OK() {
		return false, "fmt-check: initial parse has errors"
	}
	formatted, err := FormatSheet(orig)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs2 := source.NewFileSet()
	rebuilt := parser.ParseFile(fs2.Get(fs2.AddVirtual(sf.Path, formatted)), parser.Options{})
	if !rebuilt.OK() {
		return false, "fmt-check: reparse failed"
	}
	if len(rebuilt.Entries) != len(orig.Entries) {
		return false, fmt.Sprintf("fmt-check: %d entries after round-trip, want %d", len(rebuilt.Entries), len(orig.Entries))
	}
	for i := range orig.Entries {
		a, b := orig.Entries[i], rebuilt.Entries[i]
		if a.Property != b.Property || !ast.Equal(a.Value, b.Value) {
			return false, fmt.Sprintf("fmt-check: line %d changed after round-trip", a.Line)
		}
	}
	return true, ""
}
