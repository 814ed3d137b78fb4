package lsp

import (
	"time"

	"github.com/7even/clj-sculptor/internal/diag"
)

const diagnosticSource = "sculptor"

// scheduleDiagnostics publishes diagnostics for uri once edits settle.
func (s *Server) scheduleDiagnostics(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return
	}
	if t, ok := s.timers[uri]; ok {
		t.Stop()
	}
	docVersion := doc.version
	s.timers[uri] = time.AfterFunc(s.debounce, func() {
		s.publishDiagnostics(uri, docVersion)
	})
}

// publishDiagnostics sends reader diagnostics for uri unless the buffer has
// moved past docVersion in the meantime.
func (s *Server) publishDiagnostics(uri string, docVersion int) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok || doc.version != docVersion || s.shutdownRequested {
		s.mu.Unlock()
		return
	}
	a := s.analysisLocked(doc)
	delete(s.timers, uri)
	_, hadDiagnostics := s.published[uri]
	s.mu.Unlock()

	start := time.Now()
	list := buildDiagnostics(a, uri)
	if len(list) == 0 && !hadDiagnostics {
		return
	}
	if err := s.sendPublish(uri, &docVersion, list); err != nil {
		s.logf("failed to publish diagnostics: %v", err)
		return
	}
	s.mu.Lock()
	if len(list) > 0 {
		s.published[uri] = struct{}{}
	} else {
		delete(s.published, uri)
	}
	s.mu.Unlock()
	if s.currentTrace() {
		s.logf("diagnostics: uri=%s version=%d count=%d elapsed=%s", uri, docVersion, len(list), time.Since(start))
	}
}

func buildDiagnostics(a *analysis, uri string) []lspDiagnostic {
	if a == nil || a.bag == nil {
		return nil
	}
	items := a.bag.Items()
	out := make([]lspDiagnostic, 0, len(items))
	for i := range items {
		d := &items[i]
		ld := lspDiagnostic{
			Range:    rangeForSpan(a.file, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   diagnosticSource,
			Message:  d.Message,
		}
		for _, note := range d.Notes {
			ld.RelatedInformation = append(ld.RelatedInformation, diagnosticRelatedInformation{
				Location: location{URI: uri, Range: rangeForSpan(a.file, note.Span)},
				Message:  note.Msg,
			})
		}
		out = append(out, ld)
	}
	return out
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.published))
	for uri := range s.published {
		uris = append(uris, uri)
	}
	s.published = make(map[string]struct{})
	s.mu.Unlock()
	for _, uri := range uris {
		if err := s.sendPublish(uri, nil, nil); err != nil {
			s.logf("failed to clear diagnostics: %v", err)
		}
	}
}
