package cssvalue_test

import (
	"errors"
	"strings"
	"testing"

	"cssvalue"
)

func TestParse(t *testing.T) {
	v, err := cssvalue.Parse("1px solid #fff, calc(100% - 2em)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(v) != 2 || len(v[0]) != 3 || len(v[1]) != 1 {
		t.Fatalf("shape = %d lists", len(v))
	}
	fn, ok := v[1][0].(*cssvalue.Function)
	if !ok || fn.Name != "calc" {
		t.Fatalf("second list = %#v", v[1][0])
	}
	if _, ok := fn.Args[0].(*cssvalue.Operation); !ok {
		t.Fatalf("calc arg = %#v", fn.Args[0])
	}
}

func TestParseError(t *testing.T) {
	_, err := cssvalue.Parse("calc(1px+2px)")
	var perr *cssvalue.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not *ParseError", err)
	}
	if perr.Kind != cssvalue.OperatorSpacing {
		t.Fatalf("kind = %v", perr.Kind)
	}
	if !strings.Contains(err.Error(), "calc(1px+2px)") {
		t.Fatalf("error does not echo input: %q", err.Error())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	cssvalue.MustParse("#12345")
}

func TestTokenize(t *testing.T) {
	toks := cssvalue.Tokenize("10px")
	if len(toks) != 3 {
		t.Fatalf("tokens = %d, want 3", len(toks))
	}
	if toks[0].Text != "10" || toks[1].Text != "px" || !toks[2].IsEOF() {
		t.Fatalf("tokens = %v", toks)
	}
}

func TestTokenizerLookahead(t *testing.T) {
	tz := cssvalue.NewTokenizer("rgb(1)")
	for i := 0; i < 3; i++ {
		if tok := tz.Peek(); tok.Kind != cssvalue.TokenWord || tok.Text != "rgb" {
			t.Fatalf("Peek = %v", tok)
		}
		if tok := tz.PeekSecond(); tok.Kind != cssvalue.TokenLParen {
			t.Fatalf("PeekSecond = %v", tok)
		}
	}

	want := []cssvalue.TokenKind{cssvalue.TokenWord, cssvalue.TokenLParen, cssvalue.TokenNumber, cssvalue.TokenRParen, cssvalue.TokenEOF}
	for i, k := range want {
		if tok := tz.Next(); tok.Kind != k {
			t.Fatalf("token %d: kind %v, want %v", i, tok.Kind, k)
		}
	}
	if tok := tz.Next(); tok.Kind != cssvalue.TokenEOF {
		t.Fatalf("after end: %v", tok)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"1px  solid   red", "rgba(0,0,0,0.5)", "calc(100% - 2 * var(--x))", `"a b"`} {
		v := cssvalue.MustParse(in)
		again := cssvalue.MustParse(cssvalue.Format(v))
		if !cssvalue.Equal(v, again) {
			t.Errorf("%q: round trip via %q changed the tree", in, cssvalue.Format(v))
		}
	}
}
