package lsp

import "encoding/json"

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	s.applySettings(params.Settings)
	return nil
}

// applySettings accepts {"sculptor": {...}} from workspace configuration or
// initializationOptions.
func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.Sculptor.Trace != nil {
		s.traceLSP = *settings.Sculptor.Trace
	}
	if n := settings.Sculptor.MaxDiagnostics; n != nil && *n > 0 && *n != s.maxDiagnostics {
		s.maxDiagnostics = *n
		for _, doc := range s.docs {
			doc.analysis = nil
		}
	}
}

func (s *Server) currentTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceLSP
}
