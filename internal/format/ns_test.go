package format

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/ast"
)

func TestRequireEntryShapes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.b", "[a.b]"},
		{"[a.b :as c]", "[a.b :as c]"},
		{"(a.b :as c)", "[a.b :as c]"},
		{"(a.b)", "[a.b]"},
		{"(clojure [set] [string :as s])", "(clojure [set] [string :as s])"},
		{":reload", ":reload"},
	}
	for _, tt := range tests {
		items := vectorItems(t, "["+tt.in+"]")
		got := ast.Print(flat(requireEntry(items[0].Elem)))
		if got != tt.want {
			t.Errorf("requireEntry(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestImportEntryShapes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"java.util.Date", "(java.util Date)"},
		{"[java.util Date Map]", "(java.util Date Map)"},
		{"(java.io File)", "(java.io File)"},
		{"Foo", "Foo"},
	}
	for _, tt := range tests {
		items := vectorItems(t, "["+tt.in+"]")
		got := ast.Print(flat(importEntry(items[0].Elem)))
		if got != tt.want {
			t.Errorf("importEntry(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNamespaceClauseOrder(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"import before require", "(ns a (:import x.Y) (:require b))",
			"(ns a\n  (:require [b])\n  (:import (x Y)))"},
		{"other clauses first", "(ns a (:require b) (:refer-clojure :exclude [map]) (:gen-class))",
			"(ns a\n  (:refer-clojure :exclude\n                  [map])\n  (:gen-class)\n  (:require [b]))"},
		{"empty clause", "(ns a (:require))", "(ns a\n  (:require))"},
		{"sorted entries", "(ns a (:require [z.z] [b.b] [m.m]))",
			"(ns a\n  (:require [b.b]\n            [m.m]\n            [z.z]))"},
		{"attr map", "(ns a {:author \"me\"} (:use x))",
			"(ns a\n  {:author \"me\"}\n  (:use [x]))"},
		{"comment travels with clause", "(ns a\n ;; imports\n (:import x.Y)\n (:require b))",
			"(ns a\n  (:require [b])\n  ;; imports\n  (:import (x Y)))"},
		{"nfc sort", "(ns a (:require [e\u0301b] [\u00e9a]))",
			"(ns a\n  (:require [\u00e9a]\n            [e\u0301b]))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustFormat(t, tt.in); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}
