package monitor

import (
	"github.com/google/uuid"

	"f0oster/typowatch/snapshot"
)

// Result is the outcome of one scan run, before anything is persisted.
type Result struct {
	RunID uuid.UUID

	// Previous is the snapshot that was stored when the run started.
	Previous snapshot.LoadResult

	// Current replaces Previous when NewDomains is non-empty.
	Current snapshot.Snapshot

	// NewDomains are live in Current but not in Previous, sorted.
	NewDomains []string

	// Failed lists the seeds whose scan failed and are empty in Current.
	Failed []string
}

func (r *Result) Detected() bool {
	return len(r.NewDomains) > 0
}
