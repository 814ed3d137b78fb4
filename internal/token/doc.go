// Package token defines the lexical vocabulary of the Clojure reader.
//
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace, newlines, commas and comments are real tokens: the reader
//     keeps them so the formatter can tell trailing from standalone comments.
//   - Atom covers symbols, keywords, numbers, booleans, nil, characters and
//     symbolic values (##Inf); the lexer never classifies them further.
package token
