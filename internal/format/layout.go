package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

type renderFunc func(col int, n *ast.Node) *ast.Node

// lineBuilder accumulates the rendered children of one collection. It tracks
// the current column and whether the line was closed by a comment, in which
// case nothing more may follow on it.
type lineBuilder struct {
	r      *renderer
	nodes  []*ast.Node
	col    int
	broken bool
}

func (r *renderer) builder(col int) *lineBuilder {
	return &lineBuilder{r: r, col: col}
}

func (b *lineBuilder) empty() bool {
	return len(b.nodes) == 0
}

func (b *lineBuilder) put(it Item, at int, render renderFunc) {
	if render == nil {
		render = b.r.render
	}
	col := at
	if it.Prefix != nil {
		b.nodes = append(b.nodes, ast.NewAtom(it.Prefix.Text), ast.Space(1))
		col += width(it.Prefix.Text) + 1
	}
	n := render(col, it.Elem)
	b.nodes = append(b.nodes, n)
	b.col = b.r.endColumn(col, n)
	b.broken = it.IsComment()
	if it.Trailing != nil {
		b.nodes = append(b.nodes, ast.Space(1), normalizeComment(it.Trailing))
		b.broken = true
	}
}

func (b *lineBuilder) newline(count, at int) {
	b.nodes = append(b.nodes, ast.Break(count))
	if at > 0 {
		b.nodes = append(b.nodes, ast.Space(at))
	}
	b.col = at
	b.broken = false
}

// next places it at the current column when the builder is empty and on a
// new line at col otherwise.
func (b *lineBuilder) next(it Item, col int) {
	if b.empty() {
		b.put(it, b.col, nil)
		return
	}
	b.line(it, col)
}

// inline continues the current line after one space. After a comment, or for
// a standalone comment, it falls back to a new line at fallback.
func (b *lineBuilder) inline(it Item, fallback int) {
	b.inlineWith(it, fallback, nil)
}

func (b *lineBuilder) inlineWith(it Item, fallback int, render renderFunc) {
	switch {
	case b.empty():
		b.put(it, b.col, render)
	case b.broken || it.IsComment():
		b.newline(1, fallback)
		b.put(it, fallback, render)
	default:
		b.nodes = append(b.nodes, ast.Space(1))
		b.put(it, b.col+1, render)
	}
}

func (b *lineBuilder) line(it Item, col int) {
	b.lineWith(it, col, nil)
}

func (b *lineBuilder) lineWith(it Item, col int, render renderFunc) {
	b.newline(1, col)
	b.put(it, col, render)
}

func (b *lineBuilder) blank(it Item, col int) {
	b.newline(2, col)
	b.put(it, col, nil)
}

// pair places a key/value record: the key via next, the value one space after
// it on the same line.
func (b *lineBuilder) pair(rec record, col int, value renderFunc) {
	b.next(rec.key, col)
	b.inlineWith(rec.value, col, value)
}

// finish closes the collection. A line ended by a comment gets the closing
// delimiter on a fresh line at align.
func (b *lineBuilder) finish(kind ast.Kind, align int) *ast.Node {
	if b.broken {
		b.newline(1, align)
	}
	return ast.NewColl(kind, b.nodes...)
}
