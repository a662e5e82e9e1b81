package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"f0oster/typowatch/snapshot"
)

// Store keeps the latest snapshot in Postgres, one row per seed domain.
// It satisfies snapshot.Store.
type Store struct {
	client *DBClient
	now    func() time.Time
}

func NewStore(client *DBClient) *Store {
	return &Store{client: client, now: time.Now}
}

// Load returns the stored snapshot. An empty table is reported as absent.
func (s *Store) Load(ctx context.Context) (snapshot.LoadResult, error) {
	rows, err := s.client.ListSnapshotRows(ctx)
	if err != nil {
		return snapshot.LoadResult{}, err
	}
	if len(rows) == 0 {
		return snapshot.LoadResult{Snapshot: snapshot.Snapshot{}}, nil
	}

	snap, err := decodeRows(rows)
	if err != nil {
		return snapshot.LoadResult{}, err
	}
	return snapshot.LoadResult{Snapshot: snap, Present: true}, nil
}

// Save replaces every stored row with snap in a single transaction.
func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	rows, err := encodeRows(snap, uuid.New(), s.now())
	if err != nil {
		return err
	}

	tx, err := s.client.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer s.client.RollbackTx(ctx, tx) // No-op if already committed

	if err := s.client.DeleteSnapshotRows(ctx, tx); err != nil {
		return err
	}
	for _, row := range rows {
		if err := s.client.InsertSnapshotRow(ctx, tx, row); err != nil {
			return err
		}
	}

	if err := s.client.CommitTx(ctx, tx); err != nil {
		return err
	}

	if len(rows) > 0 {
		log.Printf("Stored snapshot for %d seeds (run %s)", len(rows), rows[0].RunID)
	}
	return nil
}

func decodeRows(rows []SnapshotRow) (snapshot.Snapshot, error) {
	snap := make(snapshot.Snapshot, len(rows))
	for _, row := range rows {
		var records []snapshot.Record
		if err := json.Unmarshal(row.Records, &records); err != nil {
			return nil, fmt.Errorf("failed to decode records for %s: %w", row.SeedDomain, err)
		}
		if records == nil {
			records = []snapshot.Record{}
		}
		snap[row.SeedDomain] = records
	}
	return snap, nil
}

// encodeRows renders snap as rows ordered by seed domain.
func encodeRows(snap snapshot.Snapshot, runID uuid.UUID, now time.Time) ([]SnapshotRow, error) {
	seeds := make([]string, 0, len(snap))
	for seed := range snap {
		seeds = append(seeds, seed)
	}
	slices.Sort(seeds)

	rows := make([]SnapshotRow, 0, len(seeds))
	for _, seed := range seeds {
		records := snap[seed]
		if records == nil {
			records = []snapshot.Record{}
		}
		data, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode records for %s: %w", seed, err)
		}
		rows = append(rows, SnapshotRow{
			SeedDomain: seed,
			Records:    data,
			RunID:      runID,
			UpdatedAt:  now.UTC(),
		})
	}
	return rows, nil
}
