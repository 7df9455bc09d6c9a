package lexer

import (
	"cssvalue/internal/token"
)

// Жадность: сначала 2-символьные (>= <= ==), затем 1-символьные.
// Одиночный '=' оператором не является.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), true
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), true
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), true
	}

	var k token.Kind
	switch lx.cursor.Peek() {
	case '(':
		k = token.LParen
	case ')':
		k = token.RParen
	case ',':
		k = token.Comma
	case '/':
		k = token.Slash
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '+':
		k = token.Plus
	case '*':
		k = token.Star
	case '%':
		k = token.Percent
	case '-':
		k = token.Minus
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.emit(k, start), true
}
