package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// layoutBindings handles let-like forms: a binding vector on the call line,
// then the body at col+2. Without a binding vector the form is laid out as a
// plain call.
func layoutBindings(r *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	j := 0
	for j < len(rest) && rest[j].commentLike() {
		j++
	}
	if j == len(rest) || rest[j].Elem.Kind != ast.Vector {
		return layoutCall(r, b, col, head, rest)
	}

	b.next(head, col+1)
	body := col + 2
	for i, it := range rest {
		switch {
		case i < j:
			b.inline(it, body)
		case i == j:
			b.inlineWith(it, body, r.renderBindings)
		default:
			b.line(it, body)
		}
	}
	return b.finish(ast.List, col+1)
}

// renderBindings lays out a binding vector: one pair per line, the value one
// space after its key. A :let value is itself a binding vector.
func (r *renderer) renderBindings(col int, n *ast.Node) *ast.Node {
	if n.Kind != ast.Vector {
		return r.render(col, n)
	}
	return r.renderPairs(col, n, func(key Item) renderFunc {
		if key.Elem.IsAtom(":let") {
			return r.renderBindings
		}
		return nil
	})
}
