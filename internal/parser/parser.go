package parser

import (
	"fmt"

	"cssvalue/internal/ast"
	"cssvalue/internal/diag"
	"cssvalue/internal/lexer"
	"cssvalue/internal/source"
	"cssvalue/internal/token"

	"fortio.org/safecast"
)

// Parser хранит состояние разбора одного значения.
// Первая ошибка останавливает разбор: частичного дерева не бывает.
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	err  *Error
}

// ParseValue parses a standalone value string.
func ParseValue(input string) (ast.CSSValue, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<value>", []byte(input)))
	v, err := ParseSource(file)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ParseSource parses the whole content of file as one value.
func ParseSource(file *source.File) (ast.CSSValue, *Error) {
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	v, perr := ParseRange(file, 0, end)
	if perr != nil {
		perr.echoInput(file.Content)
	}
	return v, perr
}

// ParseRange parses the bytes [start, end) of file as one value.
// Spans in the result and in the error are relative to the file.
func ParseRange(file *source.File, start, end uint32) (ast.CSSValue, *Error) {
	p := Parser{
		lx:   lexer.NewRange(file, start, end, lexer.Options{}),
		file: file,
	}
	v, ok := p.parseCSSValue()
	if !ok {
		return nil, p.err
	}
	return v, nil
}

func (p *Parser) peek() token.Token { return p.lx.Peek() }

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) skipWS() {
	if p.at(token.Whitespace) {
		p.advance()
	}
}

// fail записывает первую ошибку; всегда возвращает false для удобства
func (p *Parser) fail(kind ErrorKind, sp source.Span, msg string) bool {
	return p.failCode(kind, kind.Code(), sp, msg)
}

func (p *Parser) failCode(kind ErrorKind, code diag.Code, sp source.Span, msg string) bool {
	if p.err == nil {
		p.err = newError(p.file, kind, code, sp, msg)
	}
	return false
}

// failAt reports tok as out of place. Invalid tokens always surface as
// IllegalToken, whatever the grammar expected.
func (p *Parser) failAt(tok token.Token, expected string) bool {
	switch {
	case tok.Kind == token.Invalid:
		if len(tok.Text) > 1 && (tok.Text[0] == '\'' || tok.Text[0] == '"') {
			return p.failCode(IllegalToken, diag.LexUnterminatedString, tok.Span, "unterminated string "+quote(tok.Text))
		}
		return p.fail(IllegalToken, tok.Span, "illegal token "+quote(tok.Text))
	case expected == "":
		return p.fail(UnexpectedToken, tok.Span, "unexpected "+describe(tok))
	default:
		return p.fail(UnexpectedToken, tok.Span, fmt.Sprintf("expected %s, got %s", expected, describe(tok)))
	}
}

func (p *Parser) failSpacing(op source.Span, msg string) bool {
	p.fail(OperatorSpacing, op, msg)
	if p.err.Kind == OperatorSpacing && p.err.Span == op {
		p.err.Fix = spacingFix(p.file, op)
	}
	return false
}

// parseCSSValue := ValueList ("," ValueList)*
func (p *Parser) parseCSSValue() (ast.CSSValue, bool) {
	var out ast.CSSValue
	for {
		list, ok := p.parseValueList()
		if !ok {
			return nil, false
		}
		out = append(out, list)

		switch tok := p.peek(); tok.Kind {
		case token.Comma:
			p.advance()
		case token.EOF:
			if len(out) == 1 && len(out[0]) == 0 {
				return nil, p.fail(UnexpectedToken, tok.Span, "expected a value, got end of input")
			}
			return out, true
		default:
			return nil, p.failAt(tok, "',' or end of input")
		}
	}
}

// parseValueList := Value (WS Value)*, ведущие и хвостовые пробелы срезаются.
// Пустой список допустим: его судьбу решает parseCSSValue.
func (p *Parser) parseValueList() (ast.ValueList, bool) {
	list := ast.ValueList{}
	p.skipWS()
	for {
		if p.at(token.Comma) || p.at(token.EOF) {
			return list, true
		}
		v, ok := p.parseValue("a value")
		if !ok {
			return nil, false
		}
		list = append(list, v)

		tok := p.peek()
		switch {
		case tok.Kind == token.Whitespace:
			p.advance()
			if next := p.peek(); next.IsSignedNumber() {
				// "10px +5px": бинарный оператор или знак, не различить.
				// Исправления нет: операторы вне функций запрещены.
				return nil, p.fail(OperatorSpacing, signSpan(next),
					fmt.Sprintf("signed number %s after a value is ambiguous: operator %q must be surrounded by whitespace", quote(next.Text), next.Text[:1]))
			}
		case tok.Kind == token.Comma || tok.Kind == token.EOF:
			return list, true
		case tok.IsSignedNumber():
			return nil, p.failSpacing(signSpan(tok), fmt.Sprintf("operator %q must be surrounded by whitespace", tok.Text[:1]))
		case tok.Kind.IsBinaryOp():
			return nil, p.failSpacing(tok.Span, fmt.Sprintf("operator %q must be preceded by whitespace", tok.Text))
		default:
			return nil, p.failAt(tok, "whitespace, ',' or end of input")
		}
	}
}

// parseValue := Function | Primitive
func (p *Parser) parseValue(expected string) (ast.Value, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Word:
		if p.lx.PeekSecond().Kind == token.LParen {
			return p.parseFunction()
		}
		p.advance()
		return &ast.Word{Text: tok.Text, Loc: tok.Span}, true
	case token.Number:
		return p.parseNumber()
	case token.Hash:
		return p.parseHashColor()
	case token.SingleQuoted, token.DoubleQuoted:
		p.advance()
		q, _ := tok.Quote()
		return &ast.Quoted{Quote: q, Text: tok.Value, Loc: tok.Span}, true
	}
	if tok.Kind.IsBinaryOp() {
		return nil, p.fail(UnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected operator %q: operators are only allowed between function arguments", tok.Text))
	}
	return nil, p.failAt(tok, expected)
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	if tok.Kind == token.Whitespace {
		return "whitespace"
	}
	return quote(tok.Text)
}

func quote(s string) string {
	const maxShown = 24
	if len(s) > maxShown {
		s = s[:maxShown] + "..."
	}
	return fmt.Sprintf("%q", s)
}

// signSpan covers the sign of a signed number token.
func signSpan(tok token.Token) source.Span {
	return source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1}
}
