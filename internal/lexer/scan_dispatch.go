package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/token"
)

// scanDispatch handles every '#'-prefixed reader macro.
func (lx *Lexer) scanDispatch(start Mark) token.Token {
	lx.cursor.Bump() // '#'
	next := lx.cursor.Peek()

	switch next {
	case '{':
		lx.cursor.Bump()
		return lx.emit(token.HashBrace, start)
	case '(':
		lx.cursor.Bump()
		return lx.emit(token.HashParen, start)
	case '\'':
		lx.cursor.Bump()
		return lx.emit(token.VarQuote, start)
	case '_':
		lx.cursor.Bump()
		return lx.emit(token.Discard, start)
	case '"':
		return lx.scanString(start, token.Regex)
	case '!':
		lx.skipLine()
		return lx.emit(token.Comment, start)
	case '#':
		// ##Inf, ##-Inf, ##NaN
		lx.cursor.Bump()
		lx.scanAtomTail()
		return lx.emit(token.Atom, start)
	case '?':
		lx.cursor.Bump()
		if lx.cursor.Eat('@') {
			return lx.emit(token.ReaderCondSplice, start)
		}
		return lx.emit(token.ReaderCond, start)
	case ':':
		lx.cursor.Bump()
		lx.cursor.Eat(':')
		lx.scanAtomTail()
		return lx.emit(token.NamespacedMap, start)
	case '=':
		// #=(...) read-eval; kept as a tag so the form round-trips.
		lx.cursor.Bump()
		return lx.emit(token.Tag, start)
	}

	if r, _ := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit]); unicode.IsLetter(r) {
		lx.scanAtomTail()
		return lx.emit(token.Tag, start)
	}

	tok := lx.emit(token.Invalid, start)
	if lx.cursor.EOF() {
		lx.errLex(diag.LexBadDispatch, tok.Span, "dispatch character '#' at end of input")
	} else {
		lx.errLex(diag.LexBadDispatch, tok.Span, fmt.Sprintf("invalid dispatch macro '#%c'", next))
	}
	return tok
}
