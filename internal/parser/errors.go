package parser

import (
	"fmt"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/lexer"
	"github.com/7even/clj-sculptor/internal/source"
)

// SyntaxError is the single fatal error of the reader. Line and Col are
// 1-based.
type SyntaxError struct {
	Path    string
	Line    uint32
	Col     uint32
	Code    diag.Code
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Message)
}

// ErrorFromBag converts the earliest error in bag into a *SyntaxError.
// It returns nil when bag holds no errors.
func ErrorFromBag(fs *source.FileSet, bag *diag.Bag) error {
	if bag == nil {
		return nil
	}
	var first *diag.Diagnostic
	items := bag.Items()
	for i := range items {
		d := &items[i]
		if d.Severity < diag.SevError {
			continue
		}
		if first == nil || d.Primary.Start < first.Primary.Start {
			first = d
		}
	}
	if first == nil {
		return nil
	}
	file := fs.Get(first.Primary.File)
	pos := file.Position(first.Primary.Start)
	return &SyntaxError{
		Path:    file.Path,
		Line:    pos.Line,
		Col:     pos.Col,
		Code:    first.Code,
		Message: first.Message,
	}
}

// Parse reads src as the file path and returns its tree, or a *SyntaxError.
func Parse(path string, src []byte) (*ast.Node, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, src)
	root, bag := ParseSource(fs, id, 0)
	if err := ErrorFromBag(fs, bag); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseSource lexes and parses one file of fs, collecting diagnostics in a
// fresh bag capped at maxDiagnostics (0 means unlimited).
func ParseSource(fs *source.FileSet, id source.FileID, maxDiagnostics int) (*ast.Node, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := ParseFile(fs, lx, Options{Reporter: rep})
	return res.Root, bag
}
