package testkit

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/source"
)

var samples = []string{
	"",
	"(def x 1)",
	"(ns a.b (:require [c.d :as e]))\n\n;; doc\n(defn f [x] @x)",
	"#{1 2} #(+ % 1) #_ #_ a b ^:private c",
	"#?(:clj 1 :cljs 2) #:person{:name \"x\"} #inst \"2020\"",
	"'(a `b ~c ~@d) #'e #\"re\\\"gex\"",
	"[\\a \\newline \\é] ##Inf, {:k v}",
	"\"multi\nline\" ; trailing\n",
}

func TestSpanInvariantsOnParsedSamples(t *testing.T) {
	for _, src := range samples {
		fs := source.NewFileSet()
		id := fs.AddVirtual("sample.clj", []byte(src))
		root, bag := parser.ParseSource(fs, id, 0)
		if bag.HasErrors() {
			t.Fatalf("%q: unexpected parse errors: %v", src, bag.Items())
		}
		if err := CheckSpanInvariants(root, fs.Get(id)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
		if err := CheckRoundTrip(root, fs.Get(id)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestSpanInvariantsHoldAfterErrors(t *testing.T) {
	for _, src := range []string{"(a", "a)", "(a]", "\"open", "#<x>", "^"} {
		fs := source.NewFileSet()
		id := fs.AddVirtual("broken.clj", []byte(src))
		root, _ := parser.ParseSource(fs, id, 0)
		if err := CheckSpanInvariants(root, fs.Get(id)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestSpanInvariantsDetectViolations(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.clj", []byte("(a b)"))
	root, _ := parser.ParseSource(fs, id, 0)
	list := root.Children[0]
	list.Children[0], list.Children[2] = list.Children[2], list.Children[0]
	if err := CheckSpanInvariants(root, fs.Get(id)); err == nil {
		t.Error("expected sibling order violation")
	}

	bad := ast.NewAtom("zzz")
	bad.Span = source.Span{File: id, Start: 1, End: 2}
	list.Children = []*ast.Node{bad}
	if err := CheckSpanInvariants(root, fs.Get(id)); err == nil {
		t.Error("expected text mismatch")
	}
}
