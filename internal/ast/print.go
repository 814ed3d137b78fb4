package ast

import "strings"

// Print serializes n back to source text. Parsing then printing is the
// identity; printing a formatter result yields the formatted text.
func Print(n *Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func (n *Node) String() string {
	return Print(n)
}

func writeNode(sb *strings.Builder, n *Node) {
	switch {
	case n.Kind == Forms:
		for _, c := range n.Children {
			writeNode(sb, c)
		}
	case n.Kind.IsCollection():
		open, closing := n.Kind.Delims()
		sb.WriteString(open)
		for _, c := range n.Children {
			writeNode(sb, c)
		}
		sb.WriteString(closing)
	case n.Kind.IsWrapper():
		sb.WriteString(n.Text)
		for _, c := range n.Children {
			writeNode(sb, c)
		}
	default:
		sb.WriteString(n.Text)
	}
}
