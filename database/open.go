package database

import (
	"context"
	"fmt"

	"f0oster/typowatch/config"
	"f0oster/typowatch/snapshot"
)

// OpenSnapshotStore returns the store selected by cfg.SnapshotBackend and a
// function releasing any connection it holds.
func OpenSnapshotStore(ctx context.Context, cfg config.TypowatchConfiguration) (snapshot.Store, func(), error) {
	if cfg.SnapshotBackend != config.BackendPostgres {
		return snapshot.NewFileStore(cfg.ResultsFile), func() {}, nil
	}

	db := NewDatabase(cfg.DatabaseURL)
	if err := db.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewStore(NewDBClient(db.Pool())), db.Close, nil
}
