package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// layoutCall is the generic call form: the first argument follows the head,
// the others align under it.
func layoutCall(_ *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	b.next(head, col+1)
	argCol := b.col + 1
	for i, it := range rest {
		if i == 0 {
			b.inline(it, argCol)
			continue
		}
		b.line(it, argCol)
	}
	return b.finish(ast.List, col+1)
}

// layoutHeadline keeps the first n forms on the call line and puts every
// other item on its own line at col+2.
func layoutHeadline(n int) layoutFunc {
	return func(_ *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
		b.next(head, col+1)
		body := col + 2
		placed := 0
		for _, it := range rest {
			if placed < n {
				b.inline(it, body)
				if !it.commentLike() {
					placed++
				}
				continue
			}
			b.line(it, body)
		}
		return b.finish(ast.List, col+1)
	}
}

// layoutBody puts every item after the head on its own line at col+2.
func layoutBody(_ *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	b.next(head, col+1)
	for _, it := range rest {
		b.line(it, col+2)
	}
	return b.finish(ast.List, col+1)
}
