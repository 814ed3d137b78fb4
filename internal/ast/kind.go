package ast

// Kind discriminates Node variants.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Forms is the document root.
	Forms

	List
	Vector
	Map
	Set

	Atom
	Comment

	// Structural noise, regenerated by the formatter.
	Whitespace
	Newline
	Comma

	// Wrappers carry their reader prefix in Node.Text.
	Quote
	SyntaxQuote
	Unquote
	UnquoteSplicing
	VarQuote
	AnonFn
	Uneval
	Deref
	Meta
	Tagged
	ReaderCond
	ReaderCondSplice
	NamespacedMap
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	Forms:            "Forms",
	List:             "List",
	Vector:           "Vector",
	Map:              "Map",
	Set:              "Set",
	Atom:             "Atom",
	Comment:          "Comment",
	Whitespace:       "Whitespace",
	Newline:          "Newline",
	Comma:            "Comma",
	Quote:            "Quote",
	SyntaxQuote:      "SyntaxQuote",
	Unquote:          "Unquote",
	UnquoteSplicing:  "UnquoteSplicing",
	VarQuote:         "VarQuote",
	AnonFn:           "AnonFn",
	Uneval:           "Uneval",
	Deref:            "Deref",
	Meta:             "Meta",
	Tagged:           "Tagged",
	ReaderCond:       "ReaderCond",
	ReaderCondSplice: "ReaderCondSplice",
	NamespacedMap:    "NamespacedMap",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsCollection reports whether k is List, Vector, Map or Set.
func (k Kind) IsCollection() bool {
	switch k {
	case List, Vector, Map, Set:
		return true
	default:
		return false
	}
}

func (k Kind) IsNoise() bool {
	switch k {
	case Whitespace, Newline, Comma:
		return true
	default:
		return false
	}
}

func (k Kind) IsWrapper() bool {
	return k >= Quote && k <= NamespacedMap
}

// Delims returns the opening and closing delimiters of a collection kind.
func (k Kind) Delims() (open, closing string) {
	switch k {
	case List:
		return "(", ")"
	case Vector:
		return "[", "]"
	case Map:
		return "{", "}"
	case Set:
		return "#{", "}"
	default:
		return "", ""
	}
}

// Prefix returns the fixed reader prefix of a wrapper kind. Meta, Tagged and
// NamespacedMap have no fixed prefix; their text lives in Node.Text.
func (k Kind) Prefix() string {
	switch k {
	case Quote:
		return "'"
	case SyntaxQuote:
		return "`"
	case Unquote:
		return "~"
	case UnquoteSplicing:
		return "~@"
	case VarQuote:
		return "#'"
	case AnonFn:
		return "#"
	case Uneval:
		return "#_"
	case Deref:
		return "@"
	case Meta:
		return "^"
	case ReaderCond:
		return "#?"
	case ReaderCondSplice:
		return "#?@"
	default:
		return ""
	}
}
