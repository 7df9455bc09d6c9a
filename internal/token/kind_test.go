package token_test

import (
	"testing"

	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{
		token.GtEq, token.LtEq, token.EqEq, token.LParen, token.RParen, token.Comma,
		token.Slash, token.Lt, token.Gt, token.Plus, token.Star, token.Percent, token.Minus,
	}
	for _, k := range ops {
		if !k.IsOperator() {
			t.Fatalf("%v should be operator", k)
		}
	}
	non := []token.Kind{token.Invalid, token.EOF, token.Whitespace, token.Number, token.Word, token.Hash, token.SingleQuoted}
	for _, k := range non {
		if k.IsOperator() {
			t.Fatalf("%v must NOT be operator", k)
		}
	}
}

func TestIsBinaryOp(t *testing.T) {
	for _, k := range []token.Kind{token.LParen, token.RParen, token.Comma} {
		if k.IsBinaryOp() {
			t.Fatalf("%v is punctuation, not a binary operator", k)
		}
	}
	for _, k := range []token.Kind{token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.EqEq, token.GtEq} {
		if !k.IsBinaryOp() {
			t.Fatalf("%v should be a binary operator", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.Hash.String(); got != "Hash" {
		t.Fatalf("Hash.String() = %q", got)
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Fatalf("unknown kind String() = %q", got)
	}
}

func TestIsSignedNumber(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want bool
	}{
		{tok(token.Number, "-5"), true},
		{tok(token.Number, "+.2e-23"), true},
		{tok(token.Number, "5"), false},
		{tok(token.Word, "-x"), false},
	}
	for _, c := range cases {
		if got := c.tok.IsSignedNumber(); got != c.want {
			t.Errorf("IsSignedNumber(%q) = %v, want %v", c.tok.Text, got, c.want)
		}
	}
}

func TestQuote(t *testing.T) {
	q, ok := tok(token.DoubleQuoted, `"a"`).Quote()
	if !ok || q != token.QuoteDouble || q.Delim() != '"' {
		t.Fatalf("Quote() = (%v, %v)", q, ok)
	}
	if _, ok := tok(token.Word, "a").Quote(); ok {
		t.Fatal("word must not report a quote kind")
	}
	if token.QuoteSingle.String() != "single" {
		t.Fatalf("QuoteSingle.String() = %q", token.QuoteSingle.String())
	}
}
