package database

const (
	ListSnapshotRows = `
		SELECT seed_domain, records, run_id, updated_at
		FROM seed_snapshots
		ORDER BY seed_domain`

	DeleteSnapshotRows = `DELETE FROM seed_snapshots`

	InsertSnapshotRow = `
		INSERT INTO seed_snapshots (seed_domain, records, run_id, updated_at)
		VALUES ($1, $2, $3, $4)`
)
