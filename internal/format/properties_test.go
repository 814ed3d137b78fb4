package format

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/parser"
)

var corpus = []string{
	"(def x 1)",
	"(defn f [a b] (+ a b))",
	"[1\n  2\n   3]",
	"(ns e (:import [java.util Date]) (:require [a.b :as c]))",
	"(cond a b c d)",
	"(foo ; about\n bar baz)",
	"(let [a ; c\n 1 b 2 ; two\n] (f a ; x\n b))",
	"{:a ; c\n ;; more\n 1 :b 2}",
	"[a & ; rest\n rest]",
	"[a & & b]",
	"(f & & x)",
	"& & &",
	"(assoc-in m [:a :b] (f x) ; why\n ;; more\n y)",
	"((comp f g) x y z)",
	"#_ #_ a b (c #_ #_ d e f)",
	"(fn ([a] a) ; one\n ([a b] b))",
	"^{:doc \"x\" ; meta\n :k 1} ; target\n y",
	"#?(:clj (do ; jvm\n 1) :cljs 2)",
	"(try ; body\n (f) (catch Exception e ; bound\n (g)) (finally ; done\n (h)))",
	"(do\n;; a\n;; b\n)",
	"(ns ; lead\n foo.bar ; name\n ;; before require\n (:require ; kw\n b.c ; entry\n ;; about a\n [a.b :as ab]) (:import java.util.Date))",
	`(ns my.app.core
  "Core namespace."
  (:require [clojure.string :as str]
            [clojure.set :refer [union]] ; sets
            clojure.walk)
  (:import java.util.Date
           (java.io File)))

;; Entry point
(defn -main
  "Runs the app."
  [& args]
  (let [opts (parse args) ; parsed
        n    (count args)]
    (when (pos? n)
      (println "args:" n))
    (doseq [a args]
      (println a))))

(defn- helper [{:keys [a b] :as m} x]
  (cond
    (nil? a) :none
    (= a b) :same
    :else (merge m {:x x})))

(defmulti area :shape)

(defmethod area :circle [{:keys [r]}] (* Math/PI r r))

#_(comment (area {:shape :circle :r 1}))

(comment
  (-main "a" "b"))
`,
}

func commentTexts(t *testing.T, src string) []string {
	t.Helper()
	root, err := parser.Parse("c.clj", []byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out []string
	for _, c := range root.Comments() {
		out = append(out, normalizeComment(ast.NewComment(c)).Text)
	}
	sort.Strings(out)
	return out
}

func TestIdempotence(t *testing.T) {
	for _, src := range corpus {
		once := mustFormat(t, src)
		twice := mustFormat(t, once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nfirst:\n%s\nsecond:\n%s", src, once, twice)
		}
	}
}

func TestCommentsPreserved(t *testing.T) {
	for _, src := range corpus {
		out := mustFormat(t, src)
		before, after := commentTexts(t, src), commentTexts(t, out)
		if strings.Join(before, "\n") != strings.Join(after, "\n") {
			t.Errorf("comments changed for %q:\nbefore %q\nafter  %q", src, before, after)
		}
	}
}

func TestNoTrailingWhitespace(t *testing.T) {
	for _, src := range corpus {
		for i, line := range strings.Split(mustFormat(t, src), "\n") {
			if strings.TrimRight(line, " \t") != line {
				t.Errorf("%q: line %d has trailing whitespace: %q", src, i+1, line)
			}
		}
	}
}

func TestNoDoubleBlankLines(t *testing.T) {
	for _, src := range corpus {
		out := mustFormat(t, src)
		if strings.Contains(out, "\n\n\n") {
			t.Errorf("%q: output has consecutive blank lines:\n%s", src, out)
		}
		if strings.HasSuffix(out, "\n") {
			t.Errorf("%q: output ends with a newline", src)
		}
	}
}

func TestBindingPairsSingleNewline(t *testing.T) {
	out := mustFormat(t, "(loop [a 1 b 2 c 3] (recur a b c))")
	want := "(loop [a 1\n       b 2\n       c 3]\n  (recur a\n         b\n         c))"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestNamespaceOrdering(t *testing.T) {
	src := `(ns my.app.core
  "Core namespace."
  (:import java.util.Date (java.io File))
  (:gen-class)
  (:require clojure.walk [clojure.string :as str] [clojure.set :refer [union]] ; sets
  ))`
	want := "(ns my.app.core\n" +
		"  \"Core namespace.\"\n" +
		"  (:gen-class)\n" +
		"  (:require [clojure.set :refer [union]] ;; sets\n" +
		"            [clojure.string :as str]\n" +
		"            [clojure.walk])\n" +
		"  (:import (java.io File)\n" +
		"           (java.util Date)))"
	if got := mustFormat(t, src); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// columns records the column each node of a rendered tree starts at.
type columns struct {
	col   int
	start map[*ast.Node]int
}

func (c *columns) advance(text string) {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		c.col = width(text[i+1:])
		return
	}
	c.col += width(text)
}

func (c *columns) walk(n *ast.Node) {
	c.start[n] = c.col
	switch {
	case n.Kind == ast.Forms:
		for _, ch := range n.Children {
			c.walk(ch)
		}
	case n.Kind.IsCollection():
		open, closing := n.Kind.Delims()
		c.advance(open)
		for _, ch := range n.Children {
			c.walk(ch)
		}
		c.advance(closing)
	case n.Kind.IsWrapper():
		c.advance(n.Text)
		for _, ch := range n.Children {
			c.walk(ch)
		}
	default:
		c.advance(n.Text)
	}
}

// genericCalls collects lists headed by a plain symbol that has no dedicated
// layout. Lists under reader conditionals are laid out as pairs and skipped.
func genericCalls(n *ast.Node, inPairs bool, out *[]*ast.Node) {
	if n.Kind == ast.List && !inPairs {
		if head := n.Head(); head != nil && head.Kind == ast.Atom &&
			!strings.HasPrefix(head.Text, ":") && head.Text != "&" && !IsSpecialForm(head.Text) {
			*out = append(*out, n)
		}
	}
	pairs := n.Kind == ast.ReaderCond || n.Kind == ast.ReaderCondSplice
	for _, c := range n.Children {
		genericCalls(c, pairs, out)
	}
}

// argumentStarts returns the columns of the first argument and of every
// later item that begins a line.
func argumentStarts(cols *columns, call *ast.Node) []int {
	var (
		starts    []int
		seenHead  bool
		lineStart bool
	)
	for _, c := range call.Children {
		switch {
		case c.Kind == ast.Newline:
			lineStart = true
		case c.IsNoise():
		case !seenHead:
			seenHead = true
			lineStart = false
		default:
			if len(starts) == 0 || lineStart {
				starts = append(starts, cols.start[c])
			}
			lineStart = false
		}
	}
	return starts
}

func TestCallArgumentsAligned(t *testing.T) {
	for _, src := range corpus {
		root, err := parser.Parse("a.clj", []byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		out, err := Render(context.Background(), root, Options{})
		if err != nil {
			t.Fatalf("render %q: %v", src, err)
		}
		cols := &columns{start: make(map[*ast.Node]int)}
		cols.walk(out)

		var calls []*ast.Node
		genericCalls(out, false, &calls)
		for _, call := range calls {
			starts := argumentStarts(cols, call)
			for i := 1; i < len(starts); i++ {
				if starts[i] != starts[0] {
					t.Errorf("%q: argument %d of %s starts at column %d, first argument at %d",
						src, i+1, ast.Print(call.Head()), starts[i], starts[0])
				}
			}
		}
	}
}
