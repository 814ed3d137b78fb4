package lsp

import (
	"encoding/json"
	"sort"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/source"
)

func (s *Server) handleFoldingRange(msg *rpcMessage) error {
	var params foldingRangeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	a := s.analysisFor(canonicalURI(params.TextDocument.URI))
	if a == nil {
		return s.sendResponse(msg.ID, []foldingRange{})
	}
	return s.sendResponse(msg.ID, buildFoldingRanges(a))
}

// buildFoldingRanges folds every collection spanning more than one line and
// every run of comments on consecutive lines.
func buildFoldingRanges(a *analysis) []foldingRange {
	if a == nil || a.root == nil {
		return []foldingRange{}
	}
	ranges := make([]foldingRange, 0, 8)
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n.Kind.IsCollection() {
			start := lineForOffset(a.file, n.Span.Start)
			end := lineForOffset(a.file, spanLastOffset(n.Span))
			if end > start {
				ranges = append(ranges, foldingRange{StartLine: start, EndLine: end})
			}
		}
		ranges = append(ranges, commentRuns(a.file, n.Children)...)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(a.root)

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}

func commentRuns(file *source.File, siblings []*ast.Node) []foldingRange {
	var (
		out        []foldingRange
		start, end = -1, -1
	)
	flush := func() {
		if start >= 0 && end > start {
			out = append(out, foldingRange{StartLine: start, EndLine: end, Kind: "comment"})
		}
		start, end = -1, -1
	}
	for _, n := range siblings {
		switch {
		case n.IsComment():
			line := lineForOffset(file, n.Span.Start)
			if start >= 0 && line == end+1 {
				end = line
				continue
			}
			flush()
			start, end = line, line
		case n.IsNoise():
		default:
			flush()
		}
	}
	flush()
	return out
}
