package lexer

import (
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/token"
)

// scanString reads "..." (or the body of #"...") up to the closing quote.
// Strings may span lines; escapes are skipped, not validated.
func (lx *Lexer) scanString(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '"' {
			return lx.emit(kind, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	if kind == token.Regex {
		lx.errLex(diag.LexUnterminatedRegex, tok.Span, "unterminated regex literal")
	} else {
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	}
	return tok
}
