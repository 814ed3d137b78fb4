package ast

import (
	"strings"

	"github.com/7even/clj-sculptor/internal/source"
)

// Node is one element of the comment-preserving syntax tree.
//
// Atoms, comments and noise keep their verbatim text in Text. Collections
// keep every child, noise included, in source order. Wrappers keep their
// prefix in Text and their children (comments, noise and the wrapped form)
// in Children; Meta wraps two forms, the metadata and its target.
//
// The formatter never mutates a Node: it builds new trees.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
	Span     source.Span
}

func NewAtom(text string) *Node {
	return &Node{Kind: Atom, Text: text}
}

func NewComment(text string) *Node {
	return &Node{Kind: Comment, Text: text}
}

// NewColl creates a collection (or Forms) node over children.
func NewColl(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewWrapper creates a wrapper with the kind's fixed prefix.
func NewWrapper(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Text: kind.Prefix(), Children: children}
}

// Space returns a Whitespace node of n spaces.
func Space(n int) *Node {
	return &Node{Kind: Whitespace, Text: strings.Repeat(" ", n)}
}

// Break returns a Newline node holding count line feeds.
func Break(count int) *Node {
	return &Node{Kind: Newline, Text: strings.Repeat("\n", count)}
}

func (n *Node) IsNoise() bool { return n != nil && n.Kind.IsNoise() }

func (n *Node) IsComment() bool { return n != nil && n.Kind == Comment }

// IsAtom reports whether n is an atom spelled exactly text.
func (n *Node) IsAtom(text string) bool {
	return n != nil && n.Kind == Atom && n.Text == text
}

// Significant returns the children that are neither noise nor comments.
func (n *Node) Significant() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.IsNoise() && !c.IsComment() {
			out = append(out, c)
		}
	}
	return out
}

// Form returns the form a wrapper wraps (the target for Meta), or nil.
func (n *Node) Form() *Node {
	if !n.Kind.IsWrapper() {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if !c.IsNoise() && !c.IsComment() {
			return c
		}
	}
	return nil
}

// Head returns the first significant child of a list, or nil.
func (n *Node) Head() *Node {
	for _, c := range n.Children {
		if !c.IsNoise() && !c.IsComment() {
			return c
		}
	}
	return nil
}

// Comments collects every comment in the subtree in source order.
func (n *Node) Comments() []string {
	var out []string
	var walk func(*Node)
	walk = func(x *Node) {
		if x.Kind == Comment {
			out = append(out, x.Text)
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
