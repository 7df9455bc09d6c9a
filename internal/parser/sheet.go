package parser

import (
	"bytes"
	"fmt"

	"cssvalue/internal/ast"
	"cssvalue/internal/diag"
	"cssvalue/internal/source"

	"fortio.org/safecast"
)

// Options управляют разбором value sheet.
type Options struct {
	Reporter  diag.Reporter // может быть nil
	MaxErrors uint          // 0: без ограничения
}

// Entry is one non-blank, non-comment line of a value sheet.
type Entry struct {
	Line         uint32 // 1-based
	Property     string // empty for a bare value
	PropertySpan source.Span
	Span         source.Span // value text without the trailing ';'
	Value        ast.CSSValue
	Err          *Error // set when the value failed to parse; Value is nil then
}

// Sheet is the result of parsing a value sheet.
type Sheet struct {
	File    *source.File
	Entries []Entry
	Errors  int
}

// OK reports whether every entry parsed.
func (s *Sheet) OK() bool { return s.Errors == 0 }

// ParseFile parses a value sheet: one entry per line, either "value" or
// "property: value", optionally terminated by ';'. Blank lines and lines
// starting with "//" are skipped. Every entry is parsed independently, so one
// bad line does not hide errors on the following ones.
func ParseFile(file *source.File, opts Options) *Sheet {
	sheet := &Sheet{File: file}
	content := file.Content

	lineNo := uint32(0)
	for start := 0; start <= len(content); {
		end := bytes.IndexByte(content[start:], '\n')
		if end < 0 {
			end = len(content)
		} else {
			end += start
		}
		lineNo++

		if entry, ok := sheetEntry(file, start, end); ok {
			entry.Line = lineNo
			v, perr := ParseRange(file, entry.Span.Start, entry.Span.End)
			if perr != nil {
				entry.Err = perr
				sheet.Errors++
				reportEntryError(opts.Reporter, entry)
			} else {
				entry.Value = v
			}
			sheet.Entries = append(sheet.Entries, entry)
			if opts.MaxErrors > 0 && uint(sheet.Errors) >= opts.MaxErrors {
				break
			}
		}
		start = end + 1
	}
	return sheet
}

func reportEntryError(r diag.Reporter, e Entry) {
	if r == nil {
		return
	}
	b := diag.ReportError(r, e.Err.Code, e.Err.Span, e.Err.Message)
	if e.Property != "" {
		b.WithNote(e.PropertySpan, fmt.Sprintf("in value of property %q", e.Property))
	}
	if fix := e.Err.Fix; fix != nil {
		b.WithFix(fix.Title, fix.Edits...)
	}
	b.Emit()
}

// sheetEntry splits one line into property and value ranges.
func sheetEntry(file *source.File, start, end int) (Entry, bool) {
	content := file.Content
	for start < end && isSpaceByte(content[start]) {
		start++
	}
	for end > start && isSpaceByte(content[end-1]) {
		end--
	}
	if start == end || bytes.HasPrefix(content[start:end], []byte("//")) {
		return Entry{}, false
	}
	if content[end-1] == ';' {
		end--
		for end > start && isSpaceByte(content[end-1]) {
			end--
		}
	}

	var e Entry
	if n := propertyLen(content[start:end]); n > 0 {
		colon := start + n
		for colon < end && (content[colon] == ' ' || content[colon] == '\t') {
			colon++
		}
		if colon < end && content[colon] == ':' {
			e.Property = string(content[start : start+n])
			e.PropertySpan = source.Span{File: file.ID, Start: off(start), End: off(start + n)}
			start = colon + 1
		}
	}
	e.Span = source.Span{File: file.ID, Start: off(start), End: off(end)}
	return e, true
}

// propertyLen returns the length of a leading [A-Za-z_-][A-Za-z0-9_-]* run.
func propertyLen(b []byte) int {
	n := 0
	for n < len(b) {
		c := b[n]
		ok := c == '_' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (n > 0 && c >= '0' && c <= '9')
		if !ok {
			break
		}
		n++
	}
	return n
}

func off(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
