package token

import (
	"cssvalue/internal/source"
)

// Token represents a single value token with its location and payload.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string // raw source text
	Value string // kind-specific payload, see package doc
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsSignedNumber reports whether the token is a number written with an explicit sign.
// The parser uses it to tell "-5px" apart from a binary minus.
func (t Token) IsSignedNumber() bool {
	return t.Kind == Number && len(t.Text) > 0 && (t.Text[0] == '+' || t.Text[0] == '-')
}

// Quote returns the delimiter kind of a quoted token.
func (t Token) Quote() (QuoteKind, bool) {
	switch t.Kind {
	case SingleQuoted:
		return QuoteSingle, true
	case DoubleQuoted:
		return QuoteDouble, true
	default:
		return 0, false
	}
}
