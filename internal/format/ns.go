package format

import (
	"sort"
	"strings"

	"github.com/7even/clj-sculptor/internal/ast"

	"golang.org/x/text/unicode/norm"
)

type clauseClass uint8

const (
	clauseOther clauseClass = iota
	clauseRequire
	clauseImport
)

var clauseClasses = map[string]clauseClass{
	":require":        clauseRequire,
	":require-macros": clauseRequire,
	":use":            clauseRequire,
	":use-macros":     clauseRequire,
	":import":         clauseImport,
}

// nsUnit is an item together with the standalone comments that preceded it.
type nsUnit struct {
	comments []Item
	item     Item
	clause   *nsClause // nil when item is not a (:keyword ...) clause
}

type nsClause struct {
	class   clauseClass
	head    Item
	entries []nsUnit
	tail    []Item
}

// nsDecl is a normalized ns form: header items (name, docstring, attribute
// map and the comments among them), ordered clauses and trailing comments.
type nsDecl struct {
	header []Item
	units  []nsUnit
	tail   []Item
}

// normalizeNS splits the items after `ns` and orders the clauses: other
// clauses first in source order, then require-like clauses, then :import.
// Entries of require-like and import clauses are reshaped and sorted.
func normalizeNS(rest []Item) nsDecl {
	var decl nsDecl
	i := 0
	for i < len(rest) && rest[i].commentLike() {
		decl.header = append(decl.header, rest[i])
		i++
	}
	if i < len(rest) {
		decl.header = append(decl.header, rest[i])
		i++
	}
	if i < len(rest) && isString(rest[i].Elem) {
		decl.header = append(decl.header, rest[i])
		i++
	}
	if i < len(rest) && rest[i].Elem.Kind == ast.Map {
		decl.header = append(decl.header, rest[i])
		i++
	}

	units, tail := collectUnits(rest[i:])
	for k := range units {
		units[k].clause = parseClause(units[k].item.Elem)
	}
	sort.SliceStable(units, func(a, b int) bool {
		return unitClass(units[a]) < unitClass(units[b])
	})
	decl.units = units
	decl.tail = tail
	return decl
}

// collectUnits attaches every run of comment-like items to the item after it.
func collectUnits(items []Item) ([]nsUnit, []Item) {
	var (
		units   []nsUnit
		pending []Item
	)
	for _, it := range items {
		if it.commentLike() {
			pending = append(pending, it)
			continue
		}
		units = append(units, nsUnit{comments: pending, item: it})
		pending = nil
	}
	return units, pending
}

func unitClass(u nsUnit) clauseClass {
	if u.clause == nil {
		return clauseOther
	}
	return u.clause.class
}

func parseClause(n *ast.Node) *nsClause {
	if n.Kind != ast.List {
		return nil
	}
	items := groupItems(n.Children)
	if len(items) == 0 || items[0].IsComment() || items[0].Elem.Kind != ast.Atom ||
		!strings.HasPrefix(items[0].Elem.Text, ":") {
		return nil
	}
	c := &nsClause{
		class: clauseClasses[items[0].Elem.Text],
		head:  items[0],
	}
	c.entries, c.tail = collectUnits(items[1:])
	if c.class == clauseOther {
		return c
	}
	for k := range c.entries {
		e := &c.entries[k]
		if c.class == clauseImport {
			e.item.Elem = importEntry(e.item.Elem)
		} else {
			e.item.Elem = requireEntry(e.item.Elem)
		}
	}
	sort.SliceStable(c.entries, func(a, b int) bool {
		return sortKey(c.entries[a].item.Elem) < sortKey(c.entries[b].item.Elem)
	})
	return c
}

// requireEntry reshapes a libspec into a vector: a.b -> [a.b],
// (a.b :as c) -> [a.b :as c]. Prefix lists and keyword flags are kept.
func requireEntry(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.Atom:
		if strings.HasPrefix(n.Text, ":") {
			return n
		}
		return &ast.Node{Kind: ast.Vector, Children: []*ast.Node{n}, Span: n.Span}
	case ast.List:
		sig := n.Significant()
		if len(sig) > 1 && !strings.HasPrefix(sig[1].Text, ":") {
			return n
		}
		return &ast.Node{Kind: ast.Vector, Children: n.Children, Span: n.Span}
	}
	return n
}

// importEntry reshapes an import into a list: java.util.Date ->
// (java.util Date), [java.util Date] -> (java.util Date).
func importEntry(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.Atom:
		dot := strings.LastIndexByte(n.Text, '.')
		if dot <= 0 || dot == len(n.Text)-1 {
			return n
		}
		return &ast.Node{Kind: ast.List, Span: n.Span, Children: []*ast.Node{
			ast.NewAtom(n.Text[:dot]), ast.Space(1), ast.NewAtom(n.Text[dot+1:]),
		}}
	case ast.Vector:
		return &ast.Node{Kind: ast.List, Children: n.Children, Span: n.Span}
	}
	return n
}

func sortKey(n *ast.Node) string {
	return norm.NFC.String(ast.Print(flat(n)))
}

// flat renders a comment-free form on a single line.
func flat(n *ast.Node) *ast.Node {
	switch {
	case n.Kind.IsCollection():
		out := &ast.Node{Kind: n.Kind, Span: n.Span}
		for i, c := range n.Significant() {
			if i > 0 {
				out.Children = append(out.Children, ast.Space(1))
			}
			out.Children = append(out.Children, flat(c))
		}
		return out
	case n.Kind == ast.Meta:
		out := &ast.Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
		for i, c := range n.Significant() {
			if i > 0 {
				out.Children = append(out.Children, ast.Space(1))
			}
			out.Children = append(out.Children, flat(c))
		}
		return out
	case n.Kind.IsWrapper():
		out := &ast.Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
		if n.Kind == ast.Tagged {
			out.Children = append(out.Children, ast.Space(1))
		}
		if form := n.Form(); form != nil {
			out.Children = append(out.Children, flat(form))
		}
		return out
	}
	return &ast.Node{Kind: n.Kind, Text: n.Text, Span: n.Span}
}

// layoutNS renders a normalized ns form: the name on the call line, then the
// docstring, attribute map and clauses each on their own line at col+2.
func layoutNS(r *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node {
	decl := normalizeNS(rest)
	b.next(head, col+1)
	body := col + 2

	named := false
	for _, it := range decl.header {
		if !named && !it.commentLike() {
			b.inline(it, body)
			named = true
			continue
		}
		if !named {
			b.inline(it, body)
			continue
		}
		b.line(it, body)
	}
	for _, u := range decl.units {
		for _, c := range u.comments {
			b.line(c, body)
		}
		if u.clause == nil {
			b.line(u.item, body)
			continue
		}
		b.lineWith(u.item, body, r.clauseRenderer(u.clause))
	}
	for _, c := range decl.tail {
		b.line(c, body)
	}
	return b.finish(ast.List, col+1)
}

// clauseRenderer lays out (:keyword entry...): the first entry follows the
// keyword and the others align under it. Entries without comments are flat.
func (r *renderer) clauseRenderer(c *nsClause) renderFunc {
	return func(col int, _ *ast.Node) *ast.Node {
		b := r.builder(col + 1)
		b.put(c.head, col+1, nil)
		entryCol := b.col + 1
		first := true
		place := func(it Item, render renderFunc) {
			if first {
				first = false
				b.inlineWith(it, entryCol, render)
				return
			}
			b.lineWith(it, entryCol, render)
		}
		for _, u := range c.entries {
			for _, cm := range u.comments {
				place(cm, nil)
			}
			place(u.item, r.renderEntry)
		}
		for _, cm := range c.tail {
			place(cm, nil)
		}
		return b.finish(ast.List, col+1)
	}
}

func (r *renderer) renderEntry(col int, n *ast.Node) *ast.Node {
	if len(n.Comments()) == 0 {
		return flat(n)
	}
	return r.render(col, n)
}
