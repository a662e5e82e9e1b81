package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FileStore keeps the snapshot as an indented JSON document on disk.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot file. A missing file yields an empty, not-present
// result; malformed JSON is an error.
func (f *FileStore) Load(_ context.Context) (LoadResult, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return LoadResult{Snapshot: Snapshot{}}, nil
	}
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read snapshot %s: %w", f.Path, err)
	}

	snap, err := Decode(data)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse snapshot %s: %w", f.Path, err)
	}
	return LoadResult{Snapshot: snap, Present: true}, nil
}

// Save overwrites the snapshot file with snap.
func (f *FileStore) Save(_ context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", f.Path, err)
	}
	return nil
}

// Encode renders snap as two-space indented JSON. Nil record lists are written
// as [] so a failed seed stays visible in the file.
func Encode(snap Snapshot) ([]byte, error) {
	out := make(Snapshot, len(snap))
	for seed, recs := range snap {
		if recs == nil {
			recs = []Record{}
		}
		out[seed] = recs
	}
	return json.MarshalIndent(out, "", "  ")
}

// Decode parses a JSON object of seed -> records. A JSON null decodes to an
// empty snapshot.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}
