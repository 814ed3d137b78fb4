package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"",
	"(def x 1)",
	"(defn f [a b] (+ a b))",
	"(ns e (:import [java.util Date]) (:require [a.b :as c]))",
	"(cond a b c d)",
	"(let [a 1 b 2] (f a b))",
	"(foo ; about\n bar baz)",
	"{:a 1 :b 2}",
	"#{1 2 3}",
	"#(+ % %2)",
	"#_ #_ a b (c)",
	"^:private x",
	"^{:doc \"x\"} y",
	"#?(:clj 1 :cljs 2)",
	"#?@(:clj [1 2])",
	"#:person{:name \"a\"}",
	"#inst \"2020-01-01\"",
	"'(a `(b ~c ~@d))",
	"@(deref x)",
	"#'my/var",
	"#\"[a-z]+\"",
	"[\\a \\newline \\space \\u0041]",
	"##Inf ##-Inf ##NaN",
	"(try (f) (catch Exception e (g)) (finally (h)))",
	"(defmethod area :circle [{:keys [r]}] (* r r))",
	"(fn ([a] a) ([a b] b))",
	";; only a comment",
	"#!/usr/bin/env bb\n(println 1)",
	"\"multi\nline\"",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every .clj/.cljs/.cljc/.edn file under testdata/.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".clj", ".cljs", ".cljc", ".edn":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil || len(src) > maxSeedBytes {
			return nil
		}
		f.Add(bytes.Clone(src))
		return nil
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return bytes.Clone(input)
}
