package lexer

import (
	"github.com/7even/clj-sculptor/internal/source"
	"github.com/7even/clj-sculptor/internal/token"
)

// Lexer splits a Clojure source file into tokens. Unlike a compiler lexer it
// keeps whitespace, newlines, commas and comments as ordinary tokens: the
// reader needs them to decide which comments trail which forms.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == '\n':
		for lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
		}
		return lx.emit(token.Newline, start)
	case isSpace(ch):
		for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Whitespace, start)
	case ch == ',':
		lx.cursor.Bump()
		return lx.emit(token.Comma, start)
	case ch == ';':
		lx.skipLine()
		return lx.emit(token.Comment, start)
	case ch == '"':
		return lx.scanString(start, token.String)
	case ch == '\\':
		return lx.scanChar(start)
	case ch == '#':
		return lx.scanDispatch(start)
	}

	if kind, ok := punct[ch]; ok {
		lx.cursor.Bump()
		if kind == token.Unquote && lx.cursor.Eat('@') {
			kind = token.UnquoteSplicing
		}
		return lx.emit(kind, start)
	}

	lx.scanAtomTail()
	return lx.emit(token.Atom, start)
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the remainder of the file, EOF excluded.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

var punct = map[byte]token.Kind{
	'(':  token.LParen,
	')':  token.RParen,
	'[':  token.LBracket,
	']':  token.RBracket,
	'{':  token.LBrace,
	'}':  token.RBrace,
	'\'': token.Quote,
	'`':  token.SyntaxQuote,
	'~':  token.Unquote,
	'@':  token.Deref,
	'^':  token.Caret,
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
