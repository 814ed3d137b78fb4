package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/source"
)

// CheckSpanInvariants runs span invariants on a parsed file:
// 1) the root is a Forms node whose span lies within the file content
// 2) every child span is contained in its parent's span
// 3) siblings are ordered and do not overlap
// 4) leaf text equals the source bytes under its span
func CheckSpanInvariants(root *ast.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	if root.Kind != ast.Forms {
		return fmt.Errorf("root kind is %s, want Forms", root.Kind)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if root.Span.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", root.Span.File, sf.ID)
	}
	if root.Span.End > lenContent || root.Span.Start > root.Span.End {
		return fmt.Errorf("root span %v outside content of %d bytes", root.Span, lenContent)
	}
	return checkNode(root, sf)
}

func checkNode(n *ast.Node, sf *source.File) error {
	if len(n.Children) == 0 && !n.Kind.IsCollection() && n.Kind != ast.Forms {
		got := string(sf.Content[n.Span.Start:n.Span.End])
		if got != n.Text {
			return fmt.Errorf("%s text %q differs from source %q at %v", n.Kind, n.Text, got, n.Span)
		}
		return nil
	}
	var prev *ast.Node
	for _, c := range n.Children {
		if c.Span.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", c.Kind, c.Span.File, sf.ID)
		}
		if !n.Span.Contains(c.Span) {
			return fmt.Errorf("%s span %v is outside parent %s span %v", c.Kind, c.Span, n.Kind, n.Span)
		}
		if prev != nil && prev.Span.End > c.Span.Start {
			return fmt.Errorf("%s span %v overlaps previous sibling %v", c.Kind, c.Span, prev.Span)
		}
		if err := checkNode(c, sf); err != nil {
			return err
		}
		prev = c
	}
	return nil
}

// CheckRoundTrip verifies that an error-free tree prints back to the exact
// file content.
func CheckRoundTrip(root *ast.Node, sf *source.File) error {
	if got := ast.Print(root); got != string(sf.Content) {
		return fmt.Errorf("printed tree differs from source:\n got: %q\nwant: %q", got, sf.Content)
	}
	return nil
}
