package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyChangesIncremental(t *testing.T) {
	text := "(def x 1)\n(def y 2)\n"
	got := applyChanges(text, []textDocumentContentChangeEvent{
		{
			Range: &lspRange{Start: position{Line: 1, Character: 5}, End: position{Line: 1, Character: 6}},
			Text:  "zz",
		},
		{
			Range: &lspRange{Start: position{Line: 0, Character: 0}, End: position{Line: 0, Character: 0}},
			Text:  ";; top\n",
		},
	})
	want := ";; top\n(def x 1)\n(def zz 2)\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("applyChanges mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyChangesFullReplace(t *testing.T) {
	got := applyChanges("old", []textDocumentContentChangeEvent{{Text: "new"}})
	if got != "new" {
		t.Errorf("got %q", got)
	}
}

func TestOffsetForPositionUTF16(t *testing.T) {
	// "🙂" занимает две UTF-16 единицы и четыре байта
	text := "a🙂b\nc"
	cases := []struct {
		pos  position
		want int
	}{
		{position{0, 0}, 0},
		{position{0, 1}, 1},
		{position{0, 2}, 1}, // середина суррогатной пары
		{position{0, 3}, 5},
		{position{0, 99}, 6},
		{position{1, 1}, 8},
		{position{7, 0}, len(text)},
	}
	for _, tc := range cases {
		if got := offsetForPosition(text, tc.pos); got != tc.want {
			t.Errorf("offsetForPosition(%+v) = %d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestEndPosition(t *testing.T) {
	if got := endPosition("(a)\n(b 🙂)"); got != (position{Line: 1, Character: 6}) {
		t.Errorf("endPosition = %+v", got)
	}
	if got := endPosition("x\n"); got != (position{Line: 1, Character: 0}) {
		t.Errorf("endPosition = %+v", got)
	}
}
