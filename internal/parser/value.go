package parser

import (
	"fmt"
	"strings"

	"cssvalue/internal/ast"
	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

// parseNumber := NumericLiteral (Word | "%")?
// Единица присоединяется только вплотную: следующий токен без пробела.
func (p *Parser) parseNumber() (ast.Value, bool) {
	tok := p.advance()
	n := &ast.Number{Literal: tok.Value, Loc: tok.Span}

	next := p.peek()
	if next.Kind != token.Word && next.Kind != token.Percent {
		return n, true
	}
	// "10px-5px" и "6px- 6%" лексируются как число + слово с дефисом:
	// дефис здесь это оператор без обязательных пробелов.
	if i := strings.IndexByte(next.Text, '-'); i >= 0 {
		at := next.Span.Start + uint32(i) //nolint:gosec // i < len(next.Text)
		return nil, p.failSpacing(source.Span{File: next.Span.File, Start: at, End: at + 1},
			`operator "-" must be surrounded by whitespace`)
	}
	p.advance()
	n.Unit = next.Text
	n.UnitLoc = next.Span
	n.Loc = tok.Span.Cover(next.Span)
	return n, true
}

// parseHashColor := "#" HexDigits{3,4,6,8}
func (p *Parser) parseHashColor() (ast.Value, bool) {
	tok := p.advance()
	switch len(tok.Value) {
	case 3, 4, 6, 8:
		return &ast.HashColor{Digits: tok.Value, Loc: tok.Span}, true
	}
	return nil, p.fail(MalformedHashColor, tok.Span,
		fmt.Sprintf("malformed hash color %q: expected 3, 4, 6 or 8 hex digits, got %d", tok.Text, len(tok.Value)))
}

// parseFunction := Word "(" WS? ExpressionList WS? ")"
// Пустые аргументы считаются ошибкой, в отличие от пустых списков верхнего уровня.
func (p *Parser) parseFunction() (ast.Value, bool) {
	name := p.advance()
	lparen := p.advance()
	fn := &ast.Function{Name: name.Text, NameLoc: name.Span, Args: []ast.Expr{}}

	p.skipWS()
	if rp := p.peek(); rp.Kind == token.RParen {
		return nil, p.fail(EmptyFunctionArgument, lparen.Span.Cover(rp.Span),
			fmt.Sprintf("function %s() requires at least one argument", name.Text))
	}

	for {
		switch tok := p.peek(); tok.Kind {
		case token.Comma:
			return nil, p.fail(EmptyFunctionArgument, tok.Span,
				fmt.Sprintf("empty argument in %s()", name.Text))
		case token.EOF:
			return nil, p.fail(UnexpectedToken, tok.Span,
				fmt.Sprintf("expected ')' to close %s(, got end of input", name.Text))
		}

		arg, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		fn.Args = append(fn.Args, arg)

		p.skipWS()
		switch tok := p.peek(); tok.Kind {
		case token.Comma:
			p.advance()
			p.skipWS()
			if rp := p.peek(); rp.Kind == token.RParen {
				return nil, p.fail(EmptyFunctionArgument, tok.Span,
					fmt.Sprintf("trailing ',' leaves an empty argument in %s()", name.Text))
			}
		case token.RParen:
			p.advance()
			fn.Loc = name.Span.Cover(tok.Span)
			return fn, true
		default:
			return nil, p.failAt(tok, fmt.Sprintf("',' or ')' in %s()", name.Text))
		}
	}
}

// parseExpression := Value (WS Operator WS Expression)?
// Цепочки правоассоциативны: a - b - c == a - (b - c).
func (p *Parser) parseExpression() (ast.Expr, bool) {
	left, ok := p.parseValue("an argument")
	if !ok {
		return nil, false
	}

	tok := p.peek()
	switch {
	case tok.Kind == token.Whitespace:
		next := p.lx.PeekSecond()
		switch {
		case next.Kind.IsBinaryOp():
			p.advance() // WS
			op := p.advance()
			if !p.at(token.Whitespace) {
				return nil, p.failSpacing(op.Span, fmt.Sprintf("operator %q must be followed by whitespace", op.Text))
			}
			p.advance()
			right, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			return &ast.Operation{
				Left:   left,
				Op:     op.Text,
				OpKind: op.Kind,
				Right:  right,
				Loc:    left.Span().Cover(right.Span()),
				OpLoc:  op.Span,
			}, true
		case next.IsSignedNumber():
			// "5px +5%": знак прилип к числу
			return nil, p.failSpacing(signSpan(next), fmt.Sprintf("operator %q must be surrounded by whitespace", next.Text[:1]))
		}
	case tok.Kind.IsBinaryOp():
		// "4px/2" или "a+ b"
		return nil, p.failSpacing(tok.Span, fmt.Sprintf("operator %q must be preceded by whitespace", tok.Text))
	case tok.IsSignedNumber():
		// "4px+4%"
		return nil, p.failSpacing(signSpan(tok), fmt.Sprintf("operator %q must be surrounded by whitespace", tok.Text[:1]))
	}
	return left, true
}
