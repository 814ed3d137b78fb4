package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type DumpOptions struct {
	// Noise includes whitespace, newline and comma nodes.
	Noise bool
	// Spans prints byte spans next to each node.
	Spans bool
}

// Dump writes an indented outline of the tree, one node per line.
func Dump(w io.Writer, n *Node, opts DumpOptions) error {
	return dumpNode(w, n, 0, opts)
}

func dumpNode(w io.Writer, n *Node, depth int, opts DumpOptions) error {
	if n.IsNoise() && !opts.Noise {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Text))
	}
	if opts.Spans {
		fmt.Fprintf(&sb, " @%d-%d", n.Span.Start, n.Span.End)
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := dumpNode(w, c, depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}
