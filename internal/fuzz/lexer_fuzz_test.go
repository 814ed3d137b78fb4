package fuzztests

import (
	"testing"

	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/lexer"
	"github.com/7even/clj-sculptor/internal/source"
)

// FuzzLexerTokens checks that tokens tile the input without gaps.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.clj", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		var next uint32
		for _, tok := range lx.All() {
			if tok.Span.Start != next {
				t.Fatalf("gap before %s at %v (expected start %d)", tok.Kind, tok.Span, next)
			}
			if tok.Span.End <= tok.Span.Start {
				t.Fatalf("empty %s token at %v", tok.Kind, tok.Span)
			}
			next = tok.Span.End
		}
		if int(next) != len(file.Content) {
			t.Fatalf("tokens end at %d, content has %d bytes", next, len(file.Content))
		}
	})
}
