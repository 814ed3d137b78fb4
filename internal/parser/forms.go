package parser

import (
	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/token"
)

var wrapperKinds = map[token.Kind]ast.Kind{
	token.Quote:            ast.Quote,
	token.SyntaxQuote:      ast.SyntaxQuote,
	token.Unquote:          ast.Unquote,
	token.UnquoteSplicing:  ast.UnquoteSplicing,
	token.VarQuote:         ast.VarQuote,
	token.Discard:          ast.Uneval,
	token.Deref:            ast.Deref,
	token.Caret:            ast.Meta,
	token.ReaderCond:       ast.ReaderCond,
	token.ReaderCondSplice: ast.ReaderCondSplice,
	token.NamespacedMap:    ast.NamespacedMap,
	token.Tag:              ast.Tagged,
}

var collKinds = map[token.Kind]ast.Kind{
	token.LParen:    ast.List,
	token.LBracket:  ast.Vector,
	token.LBrace:    ast.Map,
	token.HashBrace: ast.Set,
}

// parseForm reads one significant form. The caller guarantees the next
// token is neither noise, a comment, a closer nor EOF.
func (p *Parser) parseForm() *ast.Node {
	tok := p.lx.Peek()
	if kind, ok := collKinds[tok.Kind]; ok {
		return p.parseColl(kind)
	}
	if tok.Kind == token.HashParen {
		inner := p.parseColl(ast.List)
		return &ast.Node{
			Kind:     ast.AnonFn,
			Text:     ast.AnonFn.Prefix(),
			Children: []*ast.Node{inner},
			Span:     inner.Span,
		}
	}
	if kind, ok := wrapperKinds[tok.Kind]; ok {
		return p.parseWrapper(kind)
	}
	// Atom, String, Regex and Invalid (already reported by the lexer).
	p.lx.Next()
	return leaf(ast.Atom, tok)
}

// parseColl reads from an opening token to its matching closer.
func (p *Parser) parseColl(kind ast.Kind) *ast.Node {
	open := p.lx.Next()
	want := token.Closer(open.Kind)
	node := &ast.Node{Kind: kind, Span: open.Span}
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.report(diag.SynUnclosedDelimiter, open.Span, "unclosed '"+open.Text+"'",
				diag.Note{Span: tok.Span, Msg: "input ends here"})
			node.Span = node.Span.Cover(tok.Span)
			return node
		case tok.Kind == want:
			p.lx.Next()
			node.Span = node.Span.Cover(tok.Span)
			return node
		case tok.IsClose():
			p.lx.Next()
			p.report(diag.SynMismatchedDelimiter, tok.Span,
				"mismatched closing delimiter '"+tok.Text+"'",
				diag.Note{Span: open.Span, Msg: "'" + open.Text + "' opened here"})
			node.Span = node.Span.Cover(tok.Span)
			return node
		}
		node.Children = append(node.Children, p.parseElement())
		if p.opts.Enough() {
			return node
		}
	}
}

// parseWrapper reads a prefix, any comments and noise after it, and the
// wrapped form. Meta wraps two forms: the metadata and its target.
func (p *Parser) parseWrapper(kind ast.Kind) *ast.Node {
	prefix := p.lx.Next()
	node := &ast.Node{Kind: kind, Text: prefix.Text, Span: prefix.Span}
	forms := 1
	if kind == ast.Meta {
		forms = 2
	}
	for forms > 0 {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || tok.IsClose() {
			p.report(diag.SynMissingForm, prefix.Span, "'"+prefix.Text+"' is not followed by a form")
			return node
		}
		child := p.parseElement()
		node.Children = append(node.Children, child)
		node.Span = node.Span.Cover(child.Span)
		if child.IsNoise() || child.IsComment() {
			continue
		}
		forms--
		if kind == ast.NamespacedMap && child.Kind != ast.Map {
			p.report(diag.SynBadNamespacedMap, child.Span, "expected a map after '"+prefix.Text+"'")
		}
	}
	return node
}
