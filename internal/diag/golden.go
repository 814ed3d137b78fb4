package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/7even/clj-sculptor/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics one per line as
// "<sev> <code> <path>:<line>:<col> <message>", sorted deterministically.
// It is the form used by golden tests and by `--format short`.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		if loc, ok := resolveSpan(fs, d.Primary); ok {
			rendered = append(rendered, goldenDiagnostic{
				Severity: strings.ToLower(d.Severity.String()),
				Code:     d.Code.ID(),
				Path:     loc.Path,
				Line:     loc.Line,
				Column:   loc.Column,
				Message:  sanitizeMessage(d.Message),
			})
		}
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			if loc, ok := resolveSpan(fs, note.Span); ok {
				rendered = append(rendered, goldenDiagnostic{
					Severity: "note",
					Code:     d.Code.ID(),
					Path:     loc.Path,
					Line:     loc.Line,
					Column:   loc.Column,
					Message:  sanitizeMessage(note.Msg),
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return di.Code < dj.Code
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(fs *source.FileSet, span source.Span) (resolvedSpan, bool) {
	if int(span.File) >= fs.Len() {
		return resolvedSpan{}, false
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return resolvedSpan{Path: file.Path, Line: start.Line, Column: start.Col}, true
}

func sanitizeMessage(msg string) string {
	return strings.ReplaceAll(msg, "\n", " ")
}
