// Package cssvalue tokenizes and parses CSS property values such as
// "1px solid #fff, calc(100% - 2em)" into a typed tree.
//
// The tree is a CSSValue: comma separated ValueLists of space separated
// values. Every node carries the byte span it was parsed from.
package cssvalue

import (
	"bytes"
	"fmt"

	"cssvalue/internal/ast"
	"cssvalue/internal/lexer"
	"cssvalue/internal/parser"
	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

type (
	CSSValue  = ast.CSSValue
	ValueList = ast.ValueList
	Value     = ast.Value
	Expr      = ast.Expr
	Node      = ast.Node
	NodeKind  = ast.NodeKind

	Word      = ast.Word
	Number    = ast.Number
	HashColor = ast.HashColor
	Quoted    = ast.Quoted
	Function  = ast.Function
	Operation = ast.Operation

	Token     = token.Token
	TokenKind = token.Kind
	// Tokenizer streams tokens with Next, Peek and PeekSecond.
	Tokenizer = lexer.Lexer
	Span      = source.Span

	// ParseError is returned by Parse; use errors.As to inspect it.
	ParseError = parser.Error
	ErrorKind  = parser.ErrorKind
)

const (
	IllegalToken          = parser.IllegalToken
	MalformedHashColor    = parser.MalformedHashColor
	OperatorSpacing       = parser.OperatorSpacing
	UnexpectedToken       = parser.UnexpectedToken
	EmptyFunctionArgument = parser.EmptyFunctionArgument
)

// Parse parses a property value. On failure the error is a *ParseError.
func Parse(input string) (CSSValue, error) {
	return parser.ParseValue(input)
}

// MustParse is like Parse but panics on error.
func MustParse(input string) CSSValue {
	v, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("cssvalue: Parse(%q): %v", input, err))
	}
	return v
}

// Token kinds most callers switch on. The operator kinds are reachable
// through TokenKind.IsBinaryOp.
const (
	TokenInvalid      = token.Invalid
	TokenEOF          = token.EOF
	TokenWhitespace   = token.Whitespace
	TokenNumber       = token.Number
	TokenWord         = token.Word
	TokenHash         = token.Hash
	TokenSingleQuoted = token.SingleQuoted
	TokenDoubleQuoted = token.DoubleQuoted
	TokenLParen       = token.LParen
	TokenRParen       = token.RParen
	TokenComma        = token.Comma
)

// NewTokenizer returns a lazy token stream over input. Peek and PeekSecond
// look ahead without consuming; after the end every call returns EOF.
func NewTokenizer(input string) *Tokenizer {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<value>", []byte(input)))
	return lexer.New(file, lexer.Options{})
}

// Tokenize splits input into tokens, ending with an EOF token. Input that
// matches no token becomes an Invalid token; tokenizing never fails.
func Tokenize(input string) []Token {
	return NewTokenizer(input).All()
}

// Format re-renders v in canonical form.
func Format(v CSSValue) string {
	var buf bytes.Buffer
	if err := ast.Print(&buf, v); err != nil {
		// bytes.Buffer не возвращает ошибок
		panic(err)
	}
	return buf.String()
}

// Equal compares two trees ignoring spans.
func Equal(a, b CSSValue) bool { return ast.Equal(a, b) }
