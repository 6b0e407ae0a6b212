// Package server exposes scans over HTTP, including a live
// Server-Sent-Events progress stream.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hakosalo/browserscan/internal/browserscan"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address (host:port).
	Addr string
	// Targets is the ordered category table served to every scan request.
	Targets []browserscan.Target
	// Delay is the inter-category pacing delay applied to event streams.
	Delay time.Duration
	// StaticDir is a directory of static assets to serve at /; ignored
	// when it does not exist.
	StaticDir string
	// Log receives request and scan diagnostics.
	Log *slog.Logger
}

// Server serves scan results over HTTP.
type Server struct {
	cfg Config
	log *slog.Logger
}

// New creates a Server for the given configuration.
func New(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	return &Server{cfg: cfg, log: log}
}

// Handler returns the server's routing handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scan", s.handleScan)
	mux.HandleFunc("GET /api/scan/events", s.handleScanEvents)
	mux.HandleFunc("GET /api/targets", s.handleTargets)

	if info, err := os.Stat(s.cfg.StaticDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
		s.log.Debug("serving static assets", "dir", s.cfg.StaticDir)
	}

	return withCORS(mux)
}

// ListenAndServe starts the server and blocks until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// No write timeout: the event stream stays open for the length
		// of a scan.
	}

	s.log.Info("listening", "addr", s.cfg.Addr)

	return srv.ListenAndServe()
}

// withCORS adds permissive CORS headers and short-circuits preflight
// requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
