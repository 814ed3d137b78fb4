package lexer

import (
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/token"
)

// scanAtomTail consumes symbol/keyword/number characters until a terminator.
func (lx *Lexer) scanAtomTail() {
	for !lx.cursor.EOF() {
		if isTerminator(lx.cursor.Peek()) {
			return
		}
		lx.bumpRune()
	}
}

// scanChar reads a character literal: '\' plus at least one rune, then any
// non-terminating tail (\newline, é, \o101).
func (lx *Lexer) scanChar(start Mark) token.Token {
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadCharLiteral, tok.Span, "backslash at end of input")
		return tok
	}
	lx.bumpRune()
	lx.scanAtomTail()
	return lx.emit(token.Atom, start)
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}
