package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DBClient struct {
	pool *pgxpool.Pool
}

func NewDBClient(pool *pgxpool.Pool) *DBClient {
	return &DBClient{pool: pool}
}

func (r *DBClient) ListSnapshotRows(ctx context.Context) ([]SnapshotRow, error) {
	rows, err := r.pool.Query(ctx, ListSnapshotRows)
	if err != nil {
		return nil, fmt.Errorf("list snapshot rows query failed: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var (
			row       SnapshotRow
			runID     pgtype.UUID
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&row.SeedDomain, &row.Records, &runID, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row failed: %w", err)
		}
		row.RunID = pgtypeToUUID(runID)
		row.UpdatedAt = updatedAt.Time
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows failed: %w", err)
	}
	return out, nil
}

func (r *DBClient) DeleteSnapshotRows(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, DeleteSnapshotRows); err != nil {
		return fmt.Errorf("delete snapshot rows query failed: %w", err)
	}
	return nil
}

func (r *DBClient) InsertSnapshotRow(ctx context.Context, tx pgx.Tx, row SnapshotRow) error {
	_, err := tx.Exec(ctx, InsertSnapshotRow,
		row.SeedDomain,
		row.Records,
		uuidToPgtype(row.RunID),
		pgtype.Timestamptz{Time: row.UpdatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("insert snapshot row for %s failed: %w", row.SeedDomain, err)
	}
	return nil
}

func (r *DBClient) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction failed: %w", err)
	}
	return tx, nil
}

func (r *DBClient) CommitTx(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction failed: %w", err)
	}
	return nil
}

func (r *DBClient) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	// Rollback returns an error if transaction is already committed/rolled back
	return tx.Rollback(ctx)
}
