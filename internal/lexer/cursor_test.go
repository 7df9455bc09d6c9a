package lexer

import (
	"testing"

	"cssvalue/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cssv", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a b" → a, ' ', b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a b"))

	for _, want := range []byte("a b") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

// TestPeek2 проверяет Peek2 на середине и конце файла
func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("abc"))

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Expected Peek2('a', 'b'), got ('%c', '%c', %v)", b0, b1, ok)
	}

	cursor.Bump()
	cursor.Bump()

	b0, b1, ok = cursor.Peek2()
	if ok || b0 != 0 || b1 != 0 {
		t.Errorf("Expected Peek2 to fail at end, got ('%c', '%c', %v)", b0, b1, ok)
	}
	if got := cursor.PeekAt(0); got != 'c' {
		t.Errorf("PeekAt(0) = %q", got)
	}
	if got := cursor.PeekAt(1); got != 0 {
		t.Errorf("PeekAt(1) past end = %q", got)
	}
}

func TestCursorRange(t *testing.T) {
	// "color: red;": только значение "red"
	file := createFile("color: red;")
	cursor := NewCursorRange(file, 7, 10)

	mark := cursor.Mark()
	for !cursor.EOF() {
		cursor.Bump()
	}
	span := cursor.SpanFrom(mark)
	if span.Start != 7 || span.End != 10 {
		t.Fatalf("span = %v, want 7..10", span)
	}
	if got := file.Slice(span.Start, span.End); got != "red" {
		t.Fatalf("slice = %q", got)
	}
	if cursor.PeekAt(0) != 0 {
		t.Fatal("cursor must not read past its limit")
	}

	clamped := NewCursorRange(file, 50, 100)
	if !clamped.EOF() || clamped.Off != clamped.Limit {
		t.Fatalf("out-of-range cursor not clamped: %+v", clamped)
	}
}

// TestSpanFromMultibyte проверяет SpanFrom с UTF-8: α = 2 байта
func TestSpanFromMultibyte(t *testing.T) {
	cursor := NewCursor(createFile("α\nβ"))

	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Errorf("Expected span (0,2), got (%d,%d)", span.Start, span.End)
	}

	mark2 := cursor.Mark()
	cursor.Bump() // '\n'
	span2 := cursor.SpanFrom(mark2)
	if span2.Start != 2 || span2.End != 3 {
		t.Errorf("Expected span2 (2,3), got (%d,%d)", span2.Start, span2.End)
	}
}

// TestEatAndReset проверяет поведение Eat и Reset
func TestEatAndReset(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	start := cursor.Mark()

	if !cursor.Eat('a') || !cursor.Eat('\n') || !cursor.Eat('b') {
		t.Fatal("Expected Eat to consume a, \\n, b")
	}
	if !cursor.EOF() {
		t.Error("Expected EOF after Eat('b')")
	}
	if cursor.Eat('x') {
		t.Error("Expected Eat('x') at EOF to fail")
	}

	cursor.Reset(start)
	if cursor.Eat('x') {
		t.Error("Expected Eat('x') to fail when current char is 'a'")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected cursor position unchanged after failed Eat, got %c", cursor.Peek())
	}
}
