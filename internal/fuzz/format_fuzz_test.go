package fuzztests

import (
	"errors"
	"strings"
	"testing"

	"github.com/7even/clj-sculptor/internal/format"
	"github.com/7even/clj-sculptor/internal/parser"
)

// FuzzFormatIdempotent formats every readable input twice: the second pass
// must be a no-op and the output must read back without errors.
func FuzzFormatIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		once, err := format.FormatSource(string(input))
		if err != nil {
			var se *parser.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("non-syntax error %T: %v", err, err)
			}
			return
		}
		twice, err := format.FormatSource(once)
		if err != nil {
			t.Fatalf("formatted output does not parse: %v\n%s", err, once)
		}
		if once != twice {
			t.Fatalf("not idempotent:\nfirst:\n%s\nsecond:\n%s", once, twice)
		}
		for i, line := range strings.Split(once, "\n") {
			if strings.TrimRight(line, " \t") != line {
				t.Fatalf("line %d has trailing whitespace: %q", i+1, line)
			}
		}
	})
}
