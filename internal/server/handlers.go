package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hakosalo/browserscan/internal/browserscan"
)

// summaryPayload is the terminal event on a scan stream.
type summaryPayload struct {
	Kind    string               `json:"kind"`
	Summary *browserscan.Summary `json:"summary"`
}

// errorPayload reports a failed scan on a scan stream.
type errorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// newScanner builds a fresh scanner per request: concurrent scans must
// not share state.
func (s *Server) newScanner(delayed bool) *browserscan.Scanner {
	cfg := browserscan.Config{
		Targets: s.cfg.Targets,
		Log:     s.log,
	}
	if delayed {
		cfg.Delay = s.cfg.Delay
	}

	return browserscan.NewScanner(cfg)
}

// handleScan runs a full scan and responds with the JSON summary.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	summary, err := s.newScanner(false).Scan(r.Context(), nil)
	if err != nil {
		s.log.Error("scan failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// handleTargets responds with the configured category table.
func (s *Server) handleTargets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Targets)
}

// handleScanEvents runs a scan while streaming every progress event over
// Server-Sent-Events, ending with a summary payload. Client disconnect
// cancels the scan via the request context.
func (s *Server) handleScanEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sink := func(ev browserscan.Event) {
		writeSSE(w, flusher, ev)
	}

	summary, err := s.newScanner(true).Scan(r.Context(), sink)
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away; nobody is listening anymore.
			return
		}

		s.log.Error("scan failed", "error", err)
		writeSSE(w, flusher, errorPayload{Kind: "error", Message: err.Error()})

		return
	}

	writeSSE(w, flusher, summaryPayload{Kind: "summary", Summary: summary})
}

// writeSSE marshals v and writes it as one SSE data frame.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // Nothing useful to do once the status line is out
	json.NewEncoder(w).Encode(v)
}

// writeJSONError writes an error response body in JSON form.
func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
