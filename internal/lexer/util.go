package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
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

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

// isTerminator reports whether b ends an atom. '#' and '\'' are allowed
// inside symbols, as in the Clojure reader.
func isTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v', ',',
		'(', ')', '[', ']', '{', '}',
		'"', ';', '@', '^', '`', '~', '\\':
		return true
	}
	return false
}
