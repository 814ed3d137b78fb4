package lexer

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.clj", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("expected zero bytes past the end")
	}
}

func TestMarkResetAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("#?@x"))
	m := cursor.Mark()
	if cursor.PeekAt(2) != '@' || cursor.PeekAt(9) != 0 {
		t.Error("PeekAt mismatch")
	}
	cursor.Bump()
	if !cursor.Eat('?') || cursor.Eat('x') {
		t.Error("Eat mismatch")
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("span = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Errorf("Reset left Off = %d", cursor.Off)
	}
}
