package format

import (
	"context"
	"errors"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/trace"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Jobs > 1 renders top-level forms in parallel.
	Jobs int
}

// FormatSource formats Clojure source text. It fails only with the reader's
// *parser.SyntaxError. The result carries no trailing newline.
func FormatSource(src string) (string, error) {
	return Format(context.Background(), "<input>", []byte(src), Options{})
}

// Format parses src as the file path and renders it.
func Format(ctx context.Context, path string, src []byte, opts Options) (string, error) {
	root, err := parser.Parse(path, src)
	if err != nil {
		return "", err
	}
	out, err := Render(ctx, root, opts)
	if err != nil {
		return "", err
	}
	return ast.Print(out), nil
}

// Render renders a Forms tree into a new Forms tree in canonical layout.
func Render(ctx context.Context, root *ast.Node, opts Options) (*ast.Node, error) {
	if root == nil || root.Kind != ast.Forms {
		return nil, errors.New("format: root must be a Forms node")
	}
	items := groupItems(root.Children)
	rendered := make([][]entry, len(items))

	if opts.Jobs <= 1 || len(items) < 2 {
		for i, it := range items {
			rendered[i] = renderTopLevel(it)
		}
		return sequence(rendered), nil
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopeForm, "render_form", parent)
			rendered[i] = renderTopLevel(it)
			span.End("")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sequence(rendered), nil
}

// renderer carries the per-top-level-form state: comments hoisted out of
// nested forms land in hoisted and are emitted before the form. extents
// caches the measured shape of rendered nodes.
type renderer struct {
	hoist   bool
	hoisted []*ast.Node
	extents map[*ast.Node]extent
}

// renderTopLevel renders one top-level item and returns it preceded by any
// comments hoisted out of it.
func renderTopLevel(it Item) []entry {
	r := &renderer{hoist: true}
	b := r.builder(0)
	b.put(it, 0, nil)

	out := make([]entry, 0, len(r.hoisted)+1)
	for _, c := range r.hoisted {
		out = append(out, entry{nodes: []*ast.Node{c}, comment: true})
	}
	return append(out, entry{nodes: b.nodes, comment: it.IsComment()})
}
