package token

// Kind represents the category of a value token.
type Kind uint8

const (
	// Invalid is produced for input no other alternative matches, including
	// unterminated quoted strings.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Whitespace is a run of spaces, tabs or newlines.
	Whitespace
	// Number is a signed decimal literal with optional fraction and exponent.
	Number
	// Word is a bare identifier: letters, digits, '_' and '-', not starting with a digit.
	Word
	// Hash is '#' followed by a run of hex digits.
	Hash
	// SingleQuoted is a '...' string.
	SingleQuoted
	// DoubleQuoted is a "..." string.
	DoubleQuoted

	GtEq    // >=
	LtEq    // <=
	EqEq    // ==
	LParen  // (
	RParen  // )
	Comma   // ,
	Slash   // /
	Lt      // <
	Gt      // >
	Plus    // +
	Star    // *
	Percent // %
	Minus   // -
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Whitespace:   "Whitespace",
	Number:       "Number",
	Word:         "Word",
	Hash:         "Hash",
	SingleQuoted: "SingleQuoted",
	DoubleQuoted: "DoubleQuoted",
	GtEq:         "GtEq",
	LtEq:         "LtEq",
	EqEq:         "EqEq",
	LParen:       "LParen",
	RParen:       "RParen",
	Comma:        "Comma",
	Slash:        "Slash",
	Lt:           "Lt",
	Gt:           "Gt",
	Plus:         "Plus",
	Star:         "Star",
	Percent:      "Percent",
	Minus:        "Minus",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsOperator reports whether k is one of the fixed operator/punctuation kinds.
func (k Kind) IsOperator() bool {
	return k >= GtEq && k <= Minus
}

// IsBinaryOp reports whether k may appear as the operator of an operation.
// Parentheses and commas are punctuation only.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case GtEq, LtEq, EqEq, Slash, Lt, Gt, Plus, Star, Percent, Minus:
		return true
	default:
		return false
	}
}

// IsQuoted reports whether k is a quoted string kind.
func (k Kind) IsQuoted() bool {
	return k == SingleQuoted || k == DoubleQuoted
}

// QuoteKind distinguishes the delimiter of a quoted string.
type QuoteKind uint8

const (
	// QuoteSingle is the ' delimiter.
	QuoteSingle QuoteKind = iota
	// QuoteDouble is the " delimiter.
	QuoteDouble
)

// Delim returns the delimiter byte.
func (q QuoteKind) Delim() byte {
	if q == QuoteDouble {
		return '"'
	}
	return '\''
}

func (q QuoteKind) String() string {
	if q == QuoteDouble {
		return "double"
	}
	return "single"
}
