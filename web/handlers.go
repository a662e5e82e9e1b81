package web

import (
	"encoding/json"
	"log"
	"net/http"

	"f0oster/typowatch/diff"
	"f0oster/typowatch/report"
	"f0oster/typowatch/snapshot"
)

// Response types for JSON serialization

type SeedResponse struct {
	Seed    string            `json:"seed"`
	Records []snapshot.Record `json:"records"`
	Live    int               `json:"live"`
}

type LiveResponse struct {
	Domains []string `json:"domains"`
	Total   int      `json:"total"`
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// loadSnapshot writes the error response itself and returns ok=false when the
// snapshot is unavailable.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) (snapshot.Snapshot, bool) {
	res, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("Failed to load snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return nil, false
	}
	if !res.Present {
		writeError(w, http.StatusNotFound, "No snapshot stored yet")
		return nil, false
	}
	return res.Snapshot, true
}

// Handlers

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGetSeed(w http.ResponseWriter, r *http.Request) {
	seed := r.PathValue("seed")

	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	records, found := snap[seed]
	if !found {
		writeError(w, http.StatusNotFound, "Seed not found")
		return
	}
	if records == nil {
		records = []snapshot.Record{}
	}

	live := 0
	for _, rec := range records {
		if rec.Live() {
			live++
		}
	}

	writeJSON(w, http.StatusOK, SeedResponse{Seed: seed, Records: records, Live: live})
}

func (s *Server) handleListLive(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	domains := diff.LiveDomains(snap).Sorted()
	writeJSON(w, http.StatusOK, LiveResponse{Domains: domains, Total: len(domains)})
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, found, err := report.ReadSummary(s.summaryPath)
	if err != nil {
		log.Printf("Failed to read summary: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to read summary")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "No summary written yet")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
