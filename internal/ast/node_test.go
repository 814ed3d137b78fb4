package ast

import (
	"strings"
	"testing"
)

func TestPrintShapes(t *testing.T) {
	tree := NewColl(Forms,
		NewColl(List,
			NewAtom("defn"), Space(1), NewAtom("f"), Space(1),
			NewColl(Vector, NewAtom("a")),
			Break(1), Space(2),
			NewWrapper(AnonFn, NewColl(List, NewAtom("inc"), Space(1), NewAtom("%"))),
		),
		Break(2),
		NewColl(Set, NewAtom("1")),
		Space(1),
		&Node{Kind: Tagged, Text: "#inst", Children: []*Node{Space(1), NewAtom(`"2020"`)}},
		Space(1),
		NewWrapper(Meta, NewAtom(":private"), Space(1), NewAtom("x")),
		Space(1),
		&Node{Kind: NamespacedMap, Text: "#:a", Children: []*Node{NewColl(Map)}},
		Space(1),
		NewWrapper(Uneval, NewComment("; c"), Break(1), NewAtom("y")),
	)
	want := "(defn f [a]\n  #(inc %))\n\n#{1} #inst \"2020\" ^:private x #:a{} #_; c\ny"
	if got := Print(tree); got != want {
		t.Errorf("Print:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormAndHead(t *testing.T) {
	meta := NewWrapper(Meta, NewAtom(":dynamic"), Space(1), NewAtom("*x*"))
	if f := meta.Form(); !f.IsAtom("*x*") {
		t.Errorf("Meta.Form = %v", f)
	}
	q := NewWrapper(Quote, NewComment(";; c"), Break(1), NewAtom("a"))
	if f := q.Form(); !f.IsAtom("a") {
		t.Errorf("Quote.Form = %v", f)
	}
	if NewAtom("a").Form() != nil {
		t.Error("atom has no form")
	}
	list := NewColl(List, Space(1), NewComment("; x"), Break(1), NewAtom("foo"), NewAtom("bar"))
	if !list.Head().IsAtom("foo") {
		t.Errorf("Head = %v", list.Head())
	}
	if got := len(list.Significant()); got != 2 {
		t.Errorf("Significant = %d", got)
	}
	if NewColl(List).Head() != nil {
		t.Error("empty list has no head")
	}
}

func TestCommentsWalk(t *testing.T) {
	tree := NewColl(Forms,
		NewComment(";; a"),
		NewColl(List, NewAtom("x"), NewWrapper(Quote, NewComment("; b"), NewAtom("y"))),
		NewComment("; c"),
	)
	got := strings.Join(tree.Comments(), "|")
	if got != ";; a|; b|; c" {
		t.Errorf("Comments = %q", got)
	}
}

func TestDump(t *testing.T) {
	tree := NewColl(Forms, NewColl(Vector, NewAtom("1"), Space(1), NewAtom("2")))
	var sb strings.Builder
	if err := Dump(&sb, tree, DumpOptions{}); err != nil {
		t.Fatal(err)
	}
	want := "Forms\n  Vector\n    Atom \"1\"\n    Atom \"2\"\n"
	if sb.String() != want {
		t.Errorf("Dump:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestKindPredicates(t *testing.T) {
	if !Quote.IsWrapper() || !NamespacedMap.IsWrapper() || List.IsWrapper() || Comma.IsWrapper() {
		t.Error("IsWrapper mismatch")
	}
	if open, closing := Set.Delims(); open != "#{" || closing != "}" {
		t.Errorf("Set delims = %q %q", open, closing)
	}
	if UnquoteSplicing.Prefix() != "~@" || Tagged.Prefix() != "" {
		t.Error("Prefix mismatch")
	}
	if Kind(200).String() != "Kind(?)" {
		t.Error("unknown kind name")
	}
}
