package format

import (
	"github.com/7even/clj-sculptor/internal/ast"
)

// layoutFunc lays out a list whose head is a known symbol. b starts just
// inside the opening paren (col+1) and may already hold comments that
// preceded the head.
type layoutFunc func(r *renderer, b *lineBuilder, col int, head Item, rest []Item) *ast.Node

type handler struct {
	layout layoutFunc
	// keepComments handlers place the comments after the head themselves.
	keepComments bool
}

var specialForms map[string]handler

func init() {
	specialForms = make(map[string]handler)
	register := func(h handler, names ...string) {
		for _, name := range names {
			specialForms[name] = h
		}
	}

	register(handler{layout: layoutHeadline(1)},
		"def", "defonce", "defmulti",
		"if", "if-not", "when", "when-not", "while",
		"doto", "locking", "deftest", "testing")
	register(handler{layout: layoutHeadline(2)}, "catch")
	register(handler{layout: layoutDefn}, "defn", "defn-", "defmacro", "fn")
	register(handler{layout: layoutDefmethod}, "defmethod")
	register(handler{layout: layoutBindings},
		"let", "loop", "binding", "with-open", "with-redefs", "with-local-vars",
		"when-let", "if-let", "when-some", "if-some", "when-first",
		"for", "doseq", "dotimes")
	register(handler{layout: layoutCond(0), keepComments: true}, "cond")
	register(handler{layout: layoutCond(1), keepComments: true}, "cond->", "cond->>", "case")
	register(handler{layout: layoutCond(2), keepComments: true}, "condp")
	register(handler{layout: layoutBody}, "try", "finally")
	register(handler{layout: layoutBody, keepComments: true},
		"do", "comment", "dosync", "future", "delay", "lazy-seq", "with-out-str")
	register(handler{layout: layoutNS}, "ns")
}

func lookupHandler(head Item) (handler, bool) {
	if head.Elem.Kind != ast.Atom || head.Prefix != nil {
		return handler{}, false
	}
	h, ok := specialForms[head.Elem.Text]
	return h, ok
}

// IsSpecialForm reports whether lists headed by sym get a dedicated layout.
func IsSpecialForm(sym string) bool {
	_, ok := specialForms[sym]
	return ok
}
