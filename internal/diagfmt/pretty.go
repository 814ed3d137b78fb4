package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	loc, gutter     *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		loc:    color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.loc, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(file.Path, opts.PathMode, opts.BaseDir)

	fmt.Fprintf(w, "%s %s %s\n",
		p.loc.Sprintf("%s:%d:%d:", path, start.Line, start.Col),
		p.severity(d.Severity).Sprintf("%s %s:", d.Severity, d.Code.ID()),
		d.Message)

	gutterWidth := len(strconv.FormatUint(uint64(start.Line), 10))
	first := start.Line
	if opts.Context > 0 {
		back := uint32(opts.Context)
		if back >= first {
			first = 1
		} else {
			first -= back
		}
	}
	for line := first; line <= start.Line; line++ {
		text := strings.ReplaceAll(file.GetLine(line), "\t", " ")
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, line), text)
	}

	lineText := strings.ReplaceAll(file.GetLine(start.Line), "\t", " ")
	pad, length := caretExtent(lineText, start, end)
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad),
		p.caret.Sprint("^"+strings.Repeat("~", length-1)))

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nfile := fs.Get(note.Span.File)
		npos, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			p.note.Sprint("note:"),
			formatPath(nfile.Path, opts.PathMode, opts.BaseDir), npos.Line, npos.Col,
			note.Msg)
	}
}

// caretExtent returns the display offset and width of the underline.
// Spans running past the line are cut at its end.
func caretExtent(line string, start, end source.LineCol) (pad, length int) {
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	pad = runewidth.StringWidth(line[:from])
	length = max(runewidth.StringWidth(line[from:max(to, from)]), 1)
	return pad, length
}
