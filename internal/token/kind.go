package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a run of spaces and tabs.
	Whitespace
	// Newline is a run of '\n'.
	Newline
	// Comma is a single ',' which the reader treats as whitespace.
	Comma
	// Comment is ';' up to end of line, or a '#!' shebang line.
	Comment

	// Atom is any leaf literal spelled verbatim.
	Atom
	// String is a "..." literal including quotes.
	String
	// Regex is a #"..." literal including the dispatch.
	Regex

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	HashBrace // #{
	HashParen // #(

	Quote            // '
	SyntaxQuote      // `
	Unquote          // ~
	UnquoteSplicing  // ~@
	VarQuote         // #'
	Discard          // #_
	Deref            // @
	Caret            // ^
	ReaderCond       // #?
	ReaderCondSplice // #?@
	NamespacedMap    // #:ns or #::ns, brace not included
	Tag              // #inst, #my/tag
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Whitespace:       "Whitespace",
	Newline:          "Newline",
	Comma:            "Comma",
	Comment:          "Comment",
	Atom:             "Atom",
	String:           "String",
	Regex:            "Regex",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	HashBrace:        "HashBrace",
	HashParen:        "HashParen",
	Quote:            "Quote",
	SyntaxQuote:      "SyntaxQuote",
	Unquote:          "Unquote",
	UnquoteSplicing:  "UnquoteSplicing",
	VarQuote:         "VarQuote",
	Discard:          "Discard",
	Deref:            "Deref",
	Caret:            "Caret",
	ReaderCond:       "ReaderCond",
	ReaderCondSplice: "ReaderCondSplice",
	NamespacedMap:    "NamespacedMap",
	Tag:              "Tag",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
