package lexer

import (
	"cssvalue/internal/token"
)

// Поддержка: 1, -1, +1.5, .5, -.5, 1e3, 1E-3, +.2e-23.
// Единицы измерения и '%' не входят в число: их присоединяет парсер.
// "1." это число "1", за которым следует отдельный Invalid '.'.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}

	// целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть только если за точкой есть цифра
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// экспонента только если она полная: e, опциональный знак, цифра.
	// Иначе "1em" превратился бы в число с битой экспонентой.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		digitAt := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			digitAt = 2
		}
		if isDec(lx.cursor.PeekAt(digitAt)) {
			for i := uint32(0); i < digitAt; i++ {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.emit(token.Number, start)
}

// atNumberStart: [+-]? (digit | '.' digit)
func (lx *Lexer) atNumberStart() bool {
	i := uint32(0)
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		i = 1
	}
	b := lx.cursor.PeekAt(i)
	return isDec(b) || (b == '.' && isDec(lx.cursor.PeekAt(i+1)))
}
