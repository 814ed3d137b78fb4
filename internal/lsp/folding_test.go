package lsp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFoldingRanges(t *testing.T) {
	src := strings.Join([]string{
		";; one",
		";; two",
		"(defn f",
		"  [x]",
		"  {:a 1",
		"   :b 2})",
		"",
	}, "\n")
	got := buildFoldingRanges(analyze("f.clj", src, 1, 10))
	want := []foldingRange{
		{StartLine: 0, EndLine: 1, Kind: "comment"},
		{StartLine: 2, EndLine: 5},
		{StartLine: 4, EndLine: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("folding ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldingRangesSplitCommentRuns(t *testing.T) {
	src := ";; a\n\n;; b\n;; c\n(x)\n;; d\n"
	got := buildFoldingRanges(analyze("f.clj", src, 1, 10))
	want := []foldingRange{{StartLine: 2, EndLine: 3, Kind: "comment"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("folding ranges mismatch (-want +got):\n%s", diff)
	}
}
