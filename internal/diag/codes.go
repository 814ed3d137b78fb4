package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexUnterminatedRegex  Code = 1002
	LexBadDispatch        Code = 1003
	LexBadCharLiteral     Code = 1004

	// Reader structure
	SynInfo                Code = 2000
	SynUnexpectedClose     Code = 2001
	SynUnclosedDelimiter   Code = 2002
	SynMismatchedDelimiter Code = 2003
	SynMissingForm         Code = 2004
	SynBadNamespacedMap    Code = 2005

	// IO
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Formatter results
	FmtInfo         Code = 6000
	FmtNotCanonical Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedRegex:   "Unterminated regex literal",
	LexBadDispatch:         "Invalid dispatch macro",
	LexBadCharLiteral:      "Invalid character literal",
	SynInfo:                "Syntax information",
	SynUnexpectedClose:     "Unexpected closing delimiter",
	SynUnclosedDelimiter:   "Unclosed delimiter",
	SynMismatchedDelimiter: "Mismatched closing delimiter",
	SynMissingForm:         "Reader prefix is not followed by a form",
	SynBadNamespacedMap:    "Namespaced map prefix must be followed by a map",
	IOLoadFileError:        "Failed to load file",
	IOWriteFileError:       "Failed to write file",
	FmtInfo:                "Formatter information",
	FmtNotCanonical:        "File is not canonically formatted",
}

// ID returns the stable short identifier of the code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
