package format

import (
	"context"
	"strings"
	"testing"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/parser"
)

func printedEnd(col int, n *ast.Node) int {
	text := ast.Print(n)
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return width(text[i+1:])
	}
	return col + width(text)
}

func TestEndColumnMatchesPrint(t *testing.T) {
	for _, src := range corpus {
		root, err := parser.Parse("w.clj", []byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		out, err := Render(context.Background(), root, Options{})
		if err != nil {
			t.Fatalf("render %q: %v", src, err)
		}
		cols := &columns{start: make(map[*ast.Node]int)}
		cols.walk(out)

		r := &renderer{}
		for n, col := range cols.start {
			if got, want := r.endColumn(col, n), printedEnd(col, n); got != want {
				t.Errorf("%q: end of %q at %d = %d, want %d", src, ast.Print(n), col, got, want)
			}
		}
	}
}

func nestedCalls(depth int) string {
	return strings.Repeat("(f a ", depth) + "x" + strings.Repeat(")", depth)
}

func TestDeepNestingMeasuredOnce(t *testing.T) {
	root, err := parser.Parse("deep.clj", []byte(nestedCalls(300)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Render(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	r := &renderer{}
	r.measure(out)
	cols := &columns{start: make(map[*ast.Node]int)}
	cols.walk(out)
	if len(r.extents) != len(cols.start) {
		t.Errorf("measured %d nodes, tree has %d", len(r.extents), len(cols.start))
	}
	once := ast.Print(out)
	if twice := mustFormat(t, once); twice != once {
		t.Error("deeply nested output is not idempotent")
	}
}

func BenchmarkFormatDeepNesting(b *testing.B) {
	src := nestedCalls(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FormatSource(src); err != nil {
			b.Fatal(err)
		}
	}
}
