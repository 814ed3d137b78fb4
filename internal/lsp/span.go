package lsp

import (
	"sort"

	"fortio.org/safecast"

	"github.com/7even/clj-sculptor/internal/source"
)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return ^uint32(0)
	}
	return v
}

// positionForOffsetInFile converts a byte offset into an LSP position.
func positionForOffsetInFile(file *source.File, offset uint32) position {
	if file == nil {
		return position{}
	}
	if n := safeUint32(len(file.Content)); offset > n {
		offset = n
	}
	idx := file.LineIdx
	line := sort.Search(len(idx), func(i int) bool { return idx[i] >= offset })
	var lineStart uint32
	if line > 0 {
		lineStart = idx[line-1] + 1
	}
	return position{Line: line, Character: utf16Len(string(file.Content[lineStart:offset]))}
}

func lineForOffset(file *source.File, offset uint32) int {
	return positionForOffsetInFile(file, offset).Line
}

func rangeForSpan(file *source.File, span source.Span) lspRange {
	return lspRange{
		Start: positionForOffsetInFile(file, span.Start),
		End:   positionForOffsetInFile(file, span.End),
	}
}

// spanLastOffset is the offset of the last byte covered by span.
func spanLastOffset(span source.Span) uint32 {
	if span.End > span.Start {
		return span.End - 1
	}
	return span.End
}
