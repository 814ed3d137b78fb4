package lsp

import (
	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/source"
)

// document is one open editor buffer.
type document struct {
	uri      string
	path     string // "" for untitled buffers
	text     string
	version  int
	analysis *analysis
}

// name is what diagnostics and the formatter call the buffer.
func (d *document) name() string {
	if d.path != "" {
		return d.path
	}
	return d.uri
}

// analysis is the parse of one document version.
type analysis struct {
	version int
	fs      *source.FileSet
	file    *source.File
	root    *ast.Node
	bag     *diag.Bag
}

func analyze(name, text string, version, maxDiagnostics int) *analysis {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	root, bag := parser.ParseSource(fs, id, maxDiagnostics)
	bag.Sort()
	return &analysis{
		version: version,
		fs:      fs,
		file:    fs.Get(id),
		root:    root,
		bag:     bag,
	}
}

// analysisLocked returns the parse of doc's current version, reparsing when
// the buffer changed. s.mu must be held.
func (s *Server) analysisLocked(doc *document) *analysis {
	if doc.analysis == nil || doc.analysis.version != doc.version {
		doc.analysis = analyze(doc.name(), doc.text, doc.version, s.maxDiagnostics)
	}
	return doc.analysis
}

func (s *Server) analysisFor(uri string) *analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return s.analysisLocked(doc)
}
