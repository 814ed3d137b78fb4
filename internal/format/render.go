package format

import (
	"strings"

	"github.com/7even/clj-sculptor/internal/ast"
)

// render returns a new node laid out so that its first character sits at col.
func (r *renderer) render(col int, n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.Atom:
		return &ast.Node{Kind: ast.Atom, Text: n.Text, Span: n.Span}
	case ast.Comment:
		return normalizeComment(n)
	case ast.List:
		return r.renderList(col, n)
	case ast.Vector, ast.Set:
		return r.renderSeq(col, n)
	case ast.Map:
		return r.renderMap(col, n)
	case ast.Meta:
		return r.renderMeta(col, n)
	case ast.Tagged:
		return r.renderWrapper(col, n, true, r.render)
	case ast.ReaderCond, ast.ReaderCondSplice:
		return r.renderWrapper(col, n, false, r.renderPairList)
	case ast.Quote, ast.SyntaxQuote, ast.Unquote, ast.UnquoteSplicing,
		ast.VarQuote, ast.AnonFn, ast.Uneval, ast.Deref, ast.NamespacedMap:
		return r.renderWrapper(col, n, false, r.render)
	case ast.Whitespace, ast.Newline, ast.Comma:
		return &ast.Node{Kind: n.Kind, Text: n.Text}
	case ast.Forms, ast.KindInvalid:
		panic("format: cannot render " + n.Kind.String() + " as a form")
	}
	panic("format: unknown node kind " + n.Kind.String())
}

// normalizeComment doubles a lone leading ';' and trims trailing blanks.
func normalizeComment(n *ast.Node) *ast.Node {
	text := strings.TrimRight(n.Text, " \t\r\f\v")
	if strings.HasPrefix(text, ";") && !strings.HasPrefix(text, ";;") {
		text = ";" + text
	}
	return &ast.Node{Kind: ast.Comment, Text: text, Span: n.Span}
}

// breakTo returns a newline run followed by indentation to col.
func breakTo(count, col int) []*ast.Node {
	if col == 0 {
		return []*ast.Node{ast.Break(count)}
	}
	return []*ast.Node{ast.Break(count), ast.Space(col)}
}

// renderSeq lays out every item on its own line just inside the opening
// delimiter. It serves vectors, sets and lists without a head.
func (r *renderer) renderSeq(col int, n *ast.Node) *ast.Node {
	open, _ := n.Kind.Delims()
	inner := col + width(open)
	b := r.builder(inner)
	for _, it := range groupItems(n.Children) {
		b.next(it, inner)
	}
	return b.finish(n.Kind, inner)
}

// renderMap lays out key/value pairs one per line.
func (r *renderer) renderMap(col int, n *ast.Node) *ast.Node {
	return r.renderPairs(col, n, nil)
}

// renderPairList lays out a list as key/value pairs, the way reader
// conditionals read: #?(:clj a :cljs b).
func (r *renderer) renderPairList(col int, n *ast.Node) *ast.Node {
	if n.Kind != ast.List {
		return r.render(col, n)
	}
	return r.renderPairs(col, n, nil)
}

func (r *renderer) renderPairs(col int, n *ast.Node, value func(key Item) renderFunc) *ast.Node {
	open, _ := n.Kind.Delims()
	inner := col + width(open)
	b := r.builder(inner)
	for _, rec := range buildPairs(groupItems(n.Children)) {
		if rec.kind != recPair {
			b.next(rec.item, inner)
			continue
		}
		var fn renderFunc
		if value != nil {
			fn = value(rec.key)
		}
		b.pair(rec, inner, fn)
	}
	return b.finish(n.Kind, inner)
}

// renderWrapper renders prefix forms. Comments between the prefix and the
// form stay inside the wrapper, each followed by a line break.
func (r *renderer) renderWrapper(col int, n *ast.Node, spaced bool, inner renderFunc) *ast.Node {
	out := &ast.Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
	childCol := col + width(n.Text)
	if spaced {
		out.Children = append(out.Children, ast.Space(1))
		childCol++
	}
	for _, c := range n.Children {
		if c.Kind == ast.Comment {
			out.Children = append(out.Children, normalizeComment(c))
			out.Children = append(out.Children, breakTo(1, childCol)...)
		}
	}
	if form := n.Form(); form != nil {
		out.Children = append(out.Children, inner(childCol, form))
	}
	return out
}

// renderMeta renders ^meta target with one space between the two forms.
func (r *renderer) renderMeta(col int, n *ast.Node) *ast.Node {
	out := &ast.Node{Kind: ast.Meta, Text: n.Text, Span: n.Span}
	metaCol := col + width(n.Text)
	seenMeta, broken := false, false
	cur := metaCol
	for _, c := range n.Children {
		switch {
		case c.IsNoise():
		case c.Kind == ast.Comment && !seenMeta:
			out.Children = append(out.Children, normalizeComment(c))
			out.Children = append(out.Children, breakTo(1, metaCol)...)
		case c.Kind == ast.Comment:
			if broken {
				out.Children = append(out.Children, breakTo(1, col)...)
			} else {
				out.Children = append(out.Children, ast.Space(1))
			}
			out.Children = append(out.Children, normalizeComment(c))
			broken = true
		case !seenMeta:
			m := r.render(metaCol, c)
			out.Children = append(out.Children, m)
			cur = r.endColumn(metaCol, m)
			seenMeta = true
		default:
			at := cur + 1
			if broken {
				out.Children = append(out.Children, breakTo(1, col)...)
				at = col
			} else {
				out.Children = append(out.Children, ast.Space(1))
			}
			out.Children = append(out.Children, r.render(at, c))
		}
	}
	return out
}

// renderList dispatches on the head symbol. Comments between the opening
// paren and the first argument are hoisted out of the form unless the handler
// keeps its own comments.
func (r *renderer) renderList(col int, n *ast.Node) *ast.Node {
	items := groupItems(n.Children)
	hi := -1
	for i, it := range items {
		if !it.IsComment() {
			hi = i
			break
		}
	}
	if hi < 0 {
		return r.renderSeq(col, n)
	}

	h, special := lookupHandler(items[hi])
	b := r.builder(col + 1)
	head := items[hi]
	rest := items[hi+1:]
	if r.hoist {
		r.hoisted = append(r.hoisted, normalizeAll(items[:hi])...)
		if !special || !h.keepComments {
			head, rest = r.hoistAfterHead(head, rest)
		}
	} else {
		for _, c := range items[:hi] {
			b.next(c, col+1)
		}
	}
	if !special {
		return layoutCall(r, b, col, head, rest)
	}
	return h.layout(r, b, col, head, rest)
}

// hoistAfterHead moves the head's trailing comment and the standalone
// comments before the first argument to the hoist list.
func (r *renderer) hoistAfterHead(head Item, rest []Item) (Item, []Item) {
	if head.Trailing != nil {
		r.hoisted = append(r.hoisted, normalizeComment(head.Trailing))
		head.Trailing = nil
	}
	i := 0
	for i < len(rest) && rest[i].IsComment() {
		r.hoisted = append(r.hoisted, normalizeComment(rest[i].Elem))
		i++
	}
	return head, rest[i:]
}

func normalizeAll(items []Item) []*ast.Node {
	out := make([]*ast.Node, 0, len(items))
	for _, it := range items {
		out = append(out, normalizeComment(it.Elem))
	}
	return out
}
