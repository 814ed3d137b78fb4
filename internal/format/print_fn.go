package format

import (
	"strings"

	"github.com/7even/clj-sculptor/internal/ast"
)

// layoutDefn handles defn, defn-, defmacro and fn.
//
//	(defn name "doc"? {attrs}? [params] body...)
//	(defn name ([params] body...) ...)
//	(fn ([a] ...)
//	    ([a b] ...))
func layoutDefn(r *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	b.next(head, col+1)
	body := col + 2
	anonymous := head.Elem.Text == "fn"
	i := 0
	skipComments := func(place func(Item)) {
		for i < len(rest) && rest[i].commentLike() {
			place(rest[i])
			i++
		}
	}
	inlineComment := func(it Item) { b.inline(it, body) }
	lineComment := func(it Item) { b.line(it, body) }

	skipComments(inlineComment)
	named := false
	if i < len(rest) && isName(rest[i].Elem, anonymous) {
		b.inline(rest[i], body)
		i++
		named = true
	}

	moved := false
	if !anonymous {
		skipComments(lineComment)
		if i+1 < len(rest) && isString(rest[i].Elem) {
			b.line(rest[i], body)
			i++
			moved = true
			skipComments(lineComment)
		}
		if i+1 < len(rest) && rest[i].Elem.Kind == ast.Map {
			b.line(rest[i], body)
			i++
			moved = true
		}
	}

	j := i
	for j < len(rest) && rest[j].commentLike() {
		j++
	}
	if j < len(rest) && rest[j].Elem.Kind == ast.List {
		arityCol := body
		inlineFirst := anonymous && !named && !moved
		if inlineFirst {
			arityCol = col + 4
		}
		for k := i; k < len(rest); k++ {
			it := rest[k]
			switch {
			case inlineFirst && k <= j:
				b.inlineWith(it, arityCol, r.renderArity)
			default:
				b.lineWith(it, arityCol, r.renderArity)
			}
		}
		return b.finish(ast.List, col+1)
	}

	place := inlineComment
	if moved {
		place = lineComment
	}
	for ; i < len(rest); i++ {
		if i <= j {
			place(rest[i])
			continue
		}
		b.line(rest[i], body)
	}
	return b.finish(ast.List, col+1)
}

// layoutDefmethod keeps the name, dispatch value and parameter vector on the
// call line.
func layoutDefmethod(r *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	b.next(head, col+1)
	body := col + 2
	placed, i := 0, 0
	for ; i < len(rest) && placed < 2; i++ {
		b.inline(rest[i], body)
		if !rest[i].commentLike() {
			placed++
		}
	}
	j := i
	for j < len(rest) && rest[j].commentLike() {
		j++
	}
	multi := j < len(rest) && rest[j].Elem.Kind == ast.List
	for ; i < len(rest); i++ {
		switch {
		case multi:
			b.lineWith(rest[i], body, r.renderArity)
		case i <= j:
			b.inline(rest[i], body)
		default:
			b.line(rest[i], body)
		}
	}
	return b.finish(ast.List, col+1)
}

// renderArity renders ([params] body...) with the body aligned to the
// parameter vector.
func (r *renderer) renderArity(col int, n *ast.Node) *ast.Node {
	if n.Kind != ast.List {
		return r.render(col, n)
	}
	return r.renderSeq(col, n)
}

func isName(n *ast.Node, anonymous bool) bool {
	switch n.Kind {
	case ast.Atom:
		return !anonymous || !isString(n)
	case ast.Meta:
		return !anonymous
	}
	return false
}

func isString(n *ast.Node) bool {
	return n.Kind == ast.Atom && strings.HasPrefix(n.Text, `"`)
}
