package format

import (
	"strings"

	"github.com/7even/clj-sculptor/internal/ast"

	"github.com/mattn/go-runewidth"
)

// width is the display width of s in terminal columns.
func width(s string) int {
	return runewidth.StringWidth(s)
}

// extent describes the printed shape of a rendered node: whether it spans
// several lines and the width of its last line.
type extent struct {
	multi bool
	last  int
}

func (e extent) then(next extent) extent {
	if next.multi {
		return next
	}
	return extent{multi: e.multi, last: e.last + next.last}
}

func textExtent(s string) extent {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return extent{multi: true, last: width(s[i+1:])}
	}
	return extent{last: width(s)}
}

// measure walks n once; results are memoized per node, so measuring a node
// whose children were already placed costs only its own direct children.
func (r *renderer) measure(n *ast.Node) extent {
	if e, ok := r.extents[n]; ok {
		return e
	}
	var e extent
	switch {
	case n.Kind == ast.Forms:
		for _, c := range n.Children {
			e = e.then(r.measure(c))
		}
	case n.Kind.IsCollection():
		open, closing := n.Kind.Delims()
		e = textExtent(open)
		for _, c := range n.Children {
			e = e.then(r.measure(c))
		}
		e = e.then(textExtent(closing))
	case n.Kind.IsWrapper():
		e = textExtent(n.Text)
		for _, c := range n.Children {
			e = e.then(r.measure(c))
		}
	default:
		e = textExtent(n.Text)
	}
	if r.extents == nil {
		r.extents = make(map[*ast.Node]extent)
	}
	r.extents[n] = e
	return e
}

// endColumn returns the column right after n when n starts at col. For a
// multi-line node it is the width of its last line.
func (r *renderer) endColumn(col int, n *ast.Node) int {
	e := r.measure(n)
	if e.multi {
		return e.last
	}
	return col + e.last
}
