package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// Item is one semantic element of a collection: a form or a standalone
// comment, with an optional variadic marker before it and an optional comment
// trailing it on the same line.
type Item struct {
	Elem     *ast.Node
	Prefix   *ast.Node
	Trailing *ast.Node
}

// IsComment reports whether the item is a standalone comment.
func (it Item) IsComment() bool {
	return it.Elem.Kind == ast.Comment
}

// IsUneval reports whether the item is a #_ form.
func (it Item) IsUneval() bool {
	return it.Elem.Kind == ast.Uneval
}

// commentLike items never take part in pairing.
func (it Item) commentLike() bool {
	return it.IsComment() || it.IsUneval()
}

// groupItems turns raw children into items. Noise is dropped; '&' is held
// and attached to the next form; a comment that follows a form on the same
// line trails it. Stacked #_ markers are flattened into sibling #_ items.
func groupItems(children []*ast.Node) []Item {
	var (
		items    []Item
		amp      *ast.Node
		sameLine bool // nothing but spaces since the last form
		discards int  // forms still owed to stacked #_ markers
	)

	push := func(it Item) {
		if amp != nil && !it.IsComment() {
			it.Prefix = amp
			amp = nil
		}
		items = append(items, it)
		sameLine = !it.IsComment()
	}

	for _, c := range children {
		switch {
		case c.Kind == ast.Newline:
			sameLine = false
		case c.IsNoise():
		case c.Kind == ast.Comment:
			if sameLine && amp != nil {
				items = append(items, Item{Elem: amp, Trailing: c})
				amp = nil
			} else if sameLine && len(items) > 0 && items[len(items)-1].Trailing == nil {
				items[len(items)-1].Trailing = c
			} else {
				items = append(items, Item{Elem: c})
			}
			sameLine = false
		case c.IsAtom("&"):
			if amp != nil {
				pending := amp
				amp = nil
				push(Item{Elem: pending})
			}
			amp = c
			sameLine = true
		case c.Kind == ast.Uneval:
			inner, depth, comments := peelUneval(c)
			for _, cm := range comments {
				items = append(items, Item{Elem: cm})
			}
			push(Item{Elem: inner})
			discards += depth - 1
		case discards > 0:
			push(Item{Elem: ast.NewWrapper(ast.Uneval, c)})
			discards--
		default:
			push(Item{Elem: c})
		}
	}
	if amp != nil {
		items = append(items, Item{Elem: amp})
	}
	return items
}

// peelUneval unwraps #_ #_ ... chains. It returns the innermost #_ node, the
// chain depth and the comments found between the outer markers.
func peelUneval(n *ast.Node) (*ast.Node, int, []*ast.Node) {
	depth := 1
	var comments []*ast.Node
	for {
		form := n.Form()
		if form == nil || form.Kind != ast.Uneval {
			return n, depth, comments
		}
		for _, c := range n.Children {
			if c.Kind == ast.Comment {
				comments = append(comments, c)
			}
		}
		n = form
		depth++
	}
}
