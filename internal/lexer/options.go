package lexer

import (
	"cssvalue/internal/diag"
	"cssvalue/internal/source"
)

type Options struct {
	// Reporter получает диагностики для Invalid токенов; может быть nil.
	// Лексер продолжает работу в любом случае: ошибка остаётся в потоке токенов.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
