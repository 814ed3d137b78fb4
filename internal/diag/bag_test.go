package diag

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/source"
)

func TestBagCapAndErrors(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevWarning, Code: FmtNotCanonical}) {
		t.Fatal("first add rejected")
	}
	if b.HasErrors() {
		t.Error("warning reported as error")
	}
	b.Add(Diagnostic{Severity: SevError, Code: SynUnclosedDelimiter})
	if b.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedClose}) {
		t.Error("add beyond cap accepted")
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Error("expected errors and warnings")
	}
	first, ok := b.FirstError()
	if !ok || first.Code != SynUnclosedDelimiter {
		t.Errorf("FirstError = %v,%v", first.Code, ok)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Severity: SevError, Code: SynMissingForm, Primary: source.Span{Start: 9, End: 10}})
	b.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedClose, Primary: source.Span{Start: 1, End: 2}})
	b.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedClose, Primary: source.Span{Start: 1, End: 2}})
	b.Sort()
	b.Dedup()

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.Items()[0].Code != SynUnexpectedClose {
		t.Errorf("first = %s", b.Items()[0].Code.ID())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnterminatedString: "LEX1001",
		SynUnclosedDelimiter:  "SYN2002",
		IOLoadFileError:       "IO4001",
		FmtNotCanonical:       "FMT6001",
		Code(9999):            "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Error("unknown code title")
	}
}

func TestFormatShortDiagnosticsNotesFirst(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/a.clj", []byte("(foo\n  [bar"))
	diags := []Diagnostic{{
		Severity: SevError,
		Code:     SynUnclosedDelimiter,
		Message:  "unclosed '['",
		Primary:  source.Span{File: id, Start: 7, End: 8},
		Notes:    []Note{{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "list opened here"}},
	}}

	got := FormatShortDiagnostics(diags, fs, true)
	want := "note SYN2002 src/a.clj:1:1 list opened here\nerror SYN2002 src/a.clj:2:3 unclosed '['"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
