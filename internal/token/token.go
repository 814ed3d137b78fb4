package token

import (
	"github.com/7even/clj-sculptor/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNoise reports whether the token is insignificant to the reader
// (whitespace, newline or comma).
func (t Token) IsNoise() bool {
	switch t.Kind {
	case Whitespace, Newline, Comma:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the token opens a collection.
func (t Token) IsOpen() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace, HashBrace, HashParen:
		return true
	default:
		return false
	}
}

// IsClose reports whether the token closes a collection.
func (t Token) IsClose() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// IsPrefix reports whether the token is a reader prefix that must be
// followed by a form.
func (t Token) IsPrefix() bool {
	switch t.Kind {
	case Quote, SyntaxQuote, Unquote, UnquoteSplicing, VarQuote, Discard,
		Deref, Caret, ReaderCond, ReaderCondSplice, NamespacedMap, Tag:
		return true
	default:
		return false
	}
}

// Closer returns the closing kind matching an opening kind.
func Closer(open Kind) Kind {
	switch open {
	case LParen, HashParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace, HashBrace:
		return RBrace
	default:
		return Invalid
	}
}
