package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{Start: 2, End: 4}, Span{Start: 6, End: 9}, Span{Start: 2, End: 9}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 3, End: 4}, Span{Start: 0, End: 10}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	if !outer.Contains(Span{Start: 0, End: 10}) {
		t.Error("span must contain itself")
	}
	if !outer.Contains(Span{Start: 4, End: 4}) {
		t.Error("empty inner span must be contained")
	}
	if outer.Contains(Span{Start: 5, End: 11}) {
		t.Error("overflowing span must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 1, End: 2}) {
		t.Error("span from another file must not be contained")
	}
}

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 7}
	if s.Len() != 4 || s.Empty() {
		t.Fatalf("Len/Empty wrong for %v", s)
	}
	if s.String() != "1:3-7" {
		t.Fatalf("String() = %q", s.String())
	}
	if !At(1, 5).Empty() {
		t.Fatal("At must produce an empty span")
	}
}
