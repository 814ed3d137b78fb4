package lsp

import (
	"strings"
	"unicode/utf8"
)

// applyChanges replays incremental edits. A change without a range
// replaces the whole document.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition maps an LSP position (UTF-16 columns) to a byte offset
// in text, clamping to the line end and the text end.
func offsetForPosition(text string, pos position) int {
	if pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	lineStart := 0
	for line := 0; line < pos.Line; line++ {
		nl := strings.IndexByte(text[lineStart:], '\n')
		if nl < 0 {
			return len(text)
		}
		lineStart += nl + 1
	}
	lineEnd := len(text)
	if nl := strings.IndexByte(text[lineStart:], '\n'); nl >= 0 {
		lineEnd = lineStart + nl
	}
	return lineStart + utf16Prefix(text[lineStart:lineEnd], pos.Character)
}

// utf16Prefix returns the byte length of the longest prefix of line that
// fits into units UTF-16 code units.
func utf16Prefix(line string, units int) int {
	used := 0
	for i, r := range line {
		w := utf16Width(r)
		if used+w > units {
			return i
		}
		used += w
	}
	return len(line)
}

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n += utf16Width(r)
		s = s[size:]
	}
	return n
}

// endPosition is the position just past the last character of text.
func endPosition(text string) position {
	line := strings.Count(text, "\n")
	last := text
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		last = text[i+1:]
	}
	return position{Line: line, Character: utf16Len(last)}
}
