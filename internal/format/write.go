package format

import (
	"cssvalue/internal/source"
)

// Writer accumulates formatted output and copies untouched source fragments.
type Writer struct {
	sf  *source.File
	buf []byte
}

// NewWriter creates a new formatting writer.
func NewWriter(sf *source.File) *Writer {
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)+len(sf.Content)/8),
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends s verbatim.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// CopyRange copies source bytes [start, end).
func (w *Writer) CopyRange(start, end uint32) {
	if start >= end {
		return
	}
	w.buf = append(w.buf, w.sf.Content[start:end]...)
}
