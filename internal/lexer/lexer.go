package lexer

import (
	"cssvalue/internal/diag"
	"cssvalue/internal/source"
	"cssvalue/internal/token"
)

// Lexer turns a value string into tokens with up to two tokens of lookahead.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   [2]token.Token // буфер предпросмотра
	nlook  int
}

// New creates a lexer over the whole file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRange creates a lexer restricted to the byte range [start, end) of the file.
// Token spans stay relative to the file.
func NewRange(file *source.File, start, end uint32, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursorRange(file, start, end),
		opts:   opts,
	}
}

// Next возвращает следующий токен и потребляет его.
// После конца ввода всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.nlook > 0 {
		tok := lx.look[0]
		lx.look[0] = lx.look[1]
		lx.nlook--
		return tok
	}
	return lx.scan()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	lx.fill(1)
	return lx.look[0]
}

// PeekSecond возвращает токен после следующего, не потребляя ни один из них.
func (lx *Lexer) PeekSecond() token.Token {
	lx.fill(2)
	return lx.look[1]
}

// All drains the lexer and returns every token, EOF included.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) fill(n int) {
	for lx.nlook < n {
		lx.look[lx.nlook] = lx.scan()
		lx.nlook++
	}
}

// scan выбирает сканер в фиксированном порядке: пробелы, число, слово,
// хеш, оператор, строки; всё остальное становится Invalid.
func (lx *Lexer) scan() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		return lx.scanWhitespace()
	case lx.atNumberStart():
		return lx.scanNumber()
	case lx.wordLen() > 0:
		return lx.scanWord()
	case ch == '#' && isHex(lx.cursor.PeekAt(1)):
		return lx.scanHash()
	}

	if tok, ok := lx.scanOperator(); ok {
		return tok
	}
	if ch == '\'' || ch == '"' {
		return lx.scanString(ch)
	}
	return lx.scanIllegal()
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: k, Span: sp, Text: text, Value: text}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for n := lx.wordLen(); n > 0; n-- {
		lx.cursor.Bump()
	}
	return lx.emit(token.Word, start)
}

func (lx *Lexer) scanHash() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Hash, start)
	tok.Value = tok.Text[1:]
	return tok
}

func (lx *Lexer) scanIllegal() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexIllegalToken, tok.Span, "illegal character "+quoteText(tok.Text))
	return tok
}
