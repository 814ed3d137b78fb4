package driver

import (
	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/lexer"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/source"
	"github.com/7even/clj-sculptor/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file, collecting lexer diagnostics instead of failing.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.All()
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *ast.Node
	Bag     *diag.Bag
}

// Parse reads one file into its tree. Root is partial when Bag has errors.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	root, bag := parser.ParseSource(fs, fileID, maxDiagnostics)
	bag.Sort()
	return &ParseResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Root:    root,
		Bag:     bag,
	}, nil
}
