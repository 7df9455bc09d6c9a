package lexer

import (
	"strings"

	"cssvalue/internal/diag"
	"cssvalue/internal/token"
)

// Строка в кавычках q. Снимаются только экранирования "\\" и "\q";
// любой другой обратный слеш остаётся в тексте как есть.
// Незакрытая строка становится Invalid токеном до конца ввода.
func (lx *Lexer) scanString(q byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	var body strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch {
		case b == q:
			kind := token.SingleQuoted
			if q == '"' {
				kind = token.DoubleQuoted
			}
			tok := lx.emit(kind, start)
			tok.Value = body.String()
			return tok
		case b == '\\' && (lx.cursor.Peek() == q || lx.cursor.Peek() == '\\'):
			body.WriteByte(lx.cursor.Bump())
		default:
			body.WriteByte(b)
		}
	}

	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string "+quoteText(tok.Text))
	return tok
}
