package lsp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/7even/clj-sculptor/internal/driver"
)

func (s *Server) handleFormatting(msg *rpcMessage) error {
	var params documentFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	uri := canonicalURI(params.TextDocument.URI)

	s.mu.Lock()
	doc, ok := s.docs[uri]
	var name, text string
	if ok {
		name, text = doc.name(), doc.text
	}
	maxDiagnostics := s.maxDiagnostics
	s.mu.Unlock()
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}

	start := time.Now()
	edits, err := formatDocument(s.baseCtx, name, text, maxDiagnostics)
	if s.currentTrace() {
		s.logf("formatting: uri=%s edits=%d elapsed=%s", uri, len(edits), time.Since(start))
	}
	if err != nil {
		return s.sendError(msg.ID, codeRequestFailed, err.Error())
	}
	return s.sendResponse(msg.ID, edits)
}

// formatDocument returns the edits turning text into its canonical layout:
// none when text is already canonical, otherwise one whole-document
// replacement.
func formatDocument(ctx context.Context, name, text string, maxDiagnostics int) ([]textEdit, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res := driver.FormatBytes(ctx, name, []byte(text), driver.FormatOptions{
		Stdout:         true,
		MaxDiagnostics: maxDiagnostics,
	})
	if res.Err != nil {
		return nil, res.Err
	}
	formatted := string(res.Formatted)
	if formatted == text {
		return []textEdit{}, nil
	}
	return []textEdit{{
		Range:   lspRange{End: endPosition(text)},
		NewText: formatted,
	}}, nil
}
