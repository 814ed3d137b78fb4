package parser

import (
	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/lexer"
	"github.com/7even/clj-sculptor/internal/source"
	"github.com/7even/clj-sculptor/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root *ast.Node
	Bag  *diag.Bag
}

// Parser: состояние ридера на один файл
type Parser struct {
	lx   *lexer.Lexer
	fs   *source.FileSet
	opts Options
}

// ParseFile reads every top-level form of the lexer's file into a Forms node.
// Comments and noise are kept as children so the tree prints back to the
// exact input. Errors go to opts.Reporter; the tree is still returned.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{lx: lx, fs: fs, opts: opts}
	root := p.parseForms()

	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = r.Bag
	case diag.BagReporter:
		bag = r.Bag
	}
	return Result{Root: root, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string, notes ...diag.Note) {
	p.opts.CurrentErrors++
	diag.ReportError(p.opts.Reporter, code, sp, msg, notes...)
}

// parseForms: основной цикл верхнего уровня.
func (p *Parser) parseForms() *ast.Node {
	root := &ast.Node{Kind: ast.Forms}
	first := p.lx.Peek().Span
	for !p.at(token.EOF) && !p.opts.Enough() {
		tok := p.lx.Peek()
		if tok.IsClose() {
			p.lx.Next()
			p.report(diag.SynUnexpectedClose, tok.Span, "unexpected closing delimiter '"+tok.Text+"'")
			continue
		}
		root.Children = append(root.Children, p.parseElement())
	}
	root.Span = first.Cover(p.lx.Peek().Span)
	return root
}

// parseElement reads one child: noise, a comment or a form.
func (p *Parser) parseElement() *ast.Node {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Whitespace:
		p.lx.Next()
		return leaf(ast.Whitespace, tok)
	case token.Newline:
		p.lx.Next()
		return leaf(ast.Newline, tok)
	case token.Comma:
		p.lx.Next()
		return leaf(ast.Comma, tok)
	case token.Comment:
		p.lx.Next()
		return leaf(ast.Comment, tok)
	}
	return p.parseForm()
}

func leaf(kind ast.Kind, tok token.Token) *ast.Node {
	return &ast.Node{Kind: kind, Text: tok.Text, Span: tok.Span}
}
