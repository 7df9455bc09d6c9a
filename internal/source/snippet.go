package source

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Snippet is one source line with a marker placed under a span.
// Pad and Width are terminal display columns, so wide runes and tabs in the
// line keep the marker aligned.
type Snippet struct {
	Pos   LineCol
	Line  string
	Pad   string // prefix reproducing the line's indentation (tabs kept)
	Width int
}

// Snippet extracts the line containing span.Start. The marker covers the span
// up to the end of that line and is at least one column wide.
func (f *File) Snippet(span Span) Snippet {
	pos := toLineCol(f.LineIdx, span.Start)
	line := f.GetLine(pos.Line)
	lineStart := f.LineStart(pos.Line)

	col := int(span.Start - lineStart)
	col = min(col, len(line))
	end := len(line)
	if span.End >= span.Start && int(span.End-lineStart) < end {
		end = int(span.End - lineStart)
	}
	end = max(end, col)

	return Snippet{
		Pos:   pos,
		Line:  line,
		Pad:   padFor(line[:col]),
		Width: max(runewidth.StringWidth(line[col:end]), 1),
	}
}

// Marker renders the caret line: padding, '^' and '~' for the rest of the span.
func (s Snippet) Marker() string {
	return s.Pad + "^" + strings.Repeat("~", s.Width-1)
}

func padFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
