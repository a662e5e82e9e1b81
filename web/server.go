package web

import (
	"log"
	"net/http"

	"f0oster/typowatch/snapshot"
)

// Server exposes the stored snapshot and the last summary as read-only JSON.
type Server struct {
	store       snapshot.Store
	summaryPath string
	mux         *http.ServeMux
	addr        string
}

// NewServer creates a new web server instance.
func NewServer(store snapshot.Store, summaryPath string, addr string) *Server {
	s := &Server{
		store:       store,
		summaryPath: summaryPath,
		mux:         http.NewServeMux(),
		addr:        addr,
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/snapshot", s.handleGetSnapshot)
	s.mux.HandleFunc("GET /api/snapshot/{seed}", s.handleGetSeed)
	s.mux.HandleFunc("GET /api/live", s.handleListLive)
	s.mux.HandleFunc("GET /api/summary", s.handleGetSummary)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.addr)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler returns the HTTP handler for use with custom servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}
