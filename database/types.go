package database

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotRow represents a row in the seed_snapshots table: the latest
// records for one seed domain.
type SnapshotRow struct {
	SeedDomain string
	Records    []byte // JSON array of permutation records
	RunID      uuid.UUID
	UpdatedAt  time.Time
}
