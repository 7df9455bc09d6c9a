package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune перемещает курсор на размер текущей руны (минимум один байт)
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	if lx.cursor.Peek() < utf8.RuneSelf {
		lx.cursor.Bump()
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// wordLen returns the length of the word starting at the cursor, or 0.
// A run made only of hyphens is not a word: "-" and "--" lex as operators.
func (lx *Lexer) wordLen() uint32 {
	if !isWordStart(lx.cursor.Peek()) {
		return 0
	}
	n := uint32(0)
	onlyHyphens := true
	for {
		b := lx.cursor.PeekAt(n)
		if !isWordContinue(b) {
			break
		}
		if b != '-' {
			onlyHyphens = false
		}
		n++
	}
	if onlyHyphens {
		return 0
	}
	return n
}

// try2 пробует "съесть" 2 байта, если совпадает.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// ===== Классификаторы =====

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isWordStart(b byte) bool {
	return b == '_' || b == '-' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isWordContinue(b byte) bool {
	return isWordStart(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func quoteText(s string) string {
	const maxShown = 24
	if len(s) > maxShown {
		s = s[:maxShown] + "..."
	}
	return strconv.Quote(s)
}
