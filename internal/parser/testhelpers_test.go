package parser

import (
	"errors"
	"testing"

	"cssvalue/internal/ast"
)

func mustParse(t *testing.T, input string) ast.CSSValue {
	t.Helper()
	v, err := ParseValue(input)
	if err != nil {
		t.Fatalf("ParseValue(%q) failed:\n%v", input, err)
	}
	return v
}

func mustFail(t *testing.T, input string) *Error {
	t.Helper()
	v, err := ParseValue(input)
	if err == nil {
		t.Fatalf("ParseValue(%q) = %v, expected an error", input, v)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("ParseValue(%q) returned %T, want *Error", input, err)
	}
	return perr
}

func single(t *testing.T, v ast.CSSValue) ast.Value {
	t.Helper()
	if len(v) != 1 || len(v[0]) != 1 {
		t.Fatalf("expected exactly one value, got %v (%d lists)", v, len(v))
	}
	return v[0][0]
}
