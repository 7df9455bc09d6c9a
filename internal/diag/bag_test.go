package diag

import (
	"testing"

	"cssvalue/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(NewError(SynUnexpectedToken, source.At(0, uint32(i)), "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("Len=%d Dropped=%d", b.Len(), b.Dropped())
	}
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		b.Add(New(SevInfo, LexInfo, source.Span{}, "i"))
	}
	if b.Len() != 100 {
		t.Fatalf("Len = %d", b.Len())
	}
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("info diagnostics must not count as errors or warnings")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SynOperatorSpacing, source.Span{File: 1, Start: 4, End: 5}, "b"))
	b.Add(New(SevWarning, SynUnexpectedToken, source.Span{File: 0, Start: 2, End: 3}, "w"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 2, End: 3}, "e"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 2, End: 3}, "dup"))

	b.Sort()
	items := b.Items()
	if items[0].Severity != SevError || items[0].Primary.File != 0 {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[len(items)-1].Primary.File != 1 {
		t.Fatalf("file 1 must sort last, got %+v", items[len(items)-1])
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SynOperatorSpacing, source.Span{Start: 3, End: 4}, "missing space").
		WithNote(source.Span{Start: 0, End: 3}, "left operand").
		WithFix("insert spaces", FixEdit{Span: source.At(0, 3), NewText: " "})
	rb.Emit()
	rb.Emit()

	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	d := b.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != " " {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexIllegalToken:          "LEX1001",
		SynEmptyFunctionArgument: "SYN2004",
		IOLoadFileError:          "IO4001",
		UnknownCode:              "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if got := SynMalformedHashColor.String(); got != "[SYN2002]: Malformed hash color" {
		t.Errorf("String() = %q", got)
	}
}
