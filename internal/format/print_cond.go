package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// layoutCond handles cond-like forms. The first lead forms stay on the call
// line; the rest is paired, key and value on separate lines at col+2, with a
// blank line between pairs. An unpaired trailing form is the default.
func layoutCond(lead int) layoutFunc {
	return func(_ *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
		b.next(head, col+1)
		body := col + 2
		i, placed := 0, 0
		for ; i < len(rest) && placed < lead; i++ {
			b.inline(rest[i], body)
			if !rest[i].commentLike() {
				placed++
			}
		}

		afterComment := true
		for _, rec := range buildPairs(rest[i:]) {
			count := 2
			if afterComment {
				count = 1
			}
			b.newline(count, body)
			switch rec.kind {
			case recPair:
				b.put(rec.key, body, nil)
				b.line(rec.value, body)
			default:
				b.put(rec.item, body, nil)
			}
			afterComment = rec.kind == recComment
		}
		return b.finish(ast.List, col+1)
	}
}
