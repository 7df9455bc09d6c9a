package source

import "testing"

func TestSnippetMarker(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		span   Span
		line   string
		marker string
	}{
		{
			name:   "single column",
			input:  "calc(4px+4%)",
			span:   Span{Start: 8, End: 10},
			line:   "calc(4px+4%)",
			marker: "        ^~",
		},
		{
			name:   "empty span at end",
			input:  "rgb(1, 2",
			span:   Span{Start: 8, End: 8},
			line:   "rgb(1, 2",
			marker: "        ^",
		},
		{
			name:   "second line",
			input:  "red\n  #12345",
			span:   Span{Start: 6, End: 12},
			line:   "  #12345",
			marker: "  ^~~~~~",
		},
		{
			name:   "wide runes before the span",
			input:  "'日本' x",
			span:   Span{Start: 9, End: 10},
			line:   "'日本' x",
			marker: "       ^",
		},
		{
			name:   "tabs are kept",
			input:  "\tfoo",
			span:   Span{Start: 1, End: 4},
			line:   "\tfoo",
			marker: "\t^~~",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			id := fs.AddVirtual("v", []byte(tt.input))
			tt.span.File = id
			sn := fs.Get(id).Snippet(tt.span)
			if sn.Line != tt.line {
				t.Errorf("line = %q, want %q", sn.Line, tt.line)
			}
			if got := sn.Marker(); got != tt.marker {
				t.Errorf("marker = %q, want %q", got, tt.marker)
			}
		})
	}
}
