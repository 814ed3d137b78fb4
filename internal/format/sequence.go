package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// entry is one rendered top-level item.
type entry struct {
	nodes   []*ast.Node
	comment bool
}

// sequence joins top-level entries: one newline after a standalone comment,
// a blank line everywhere else.
func sequence(groups [][]entry) *ast.Node {
	root := ast.NewColl(ast.Forms)
	var prev *entry
	for _, group := range groups {
		for i := range group {
			e := &group[i]
			if prev != nil {
				count := 2
				if prev.comment {
					count = 1
				}
				root.Children = append(root.Children, ast.Break(count))
			}
			root.Children = append(root.Children, e.nodes...)
			prev = e
		}
	}
	return root
}
