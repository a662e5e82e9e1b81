package scanner

import (
	"context"
	"fmt"
	"io"
	"log"

	"f0oster/typowatch/snapshot"
)

// Scanner returns the resolving permutations of a single seed domain.
type Scanner interface {
	Scan(ctx context.Context, domain string) ([]snapshot.Record, error)
}

// Collect scans seeds one at a time and assembles the current snapshot.
// A seed whose scan fails is logged, recorded with an empty list and
// returned in failed; the remaining seeds are still scanned.
func Collect(ctx context.Context, s Scanner, seeds []string, out io.Writer) (snapshot.Snapshot, []string) {
	snap := make(snapshot.Snapshot, len(seeds))
	var failed []string

	for _, seed := range seeds {
		fmt.Fprintf(out, "Scanning %s...\n", seed)

		records, err := s.Scan(ctx, seed)
		if err != nil {
			log.Printf("Error scanning %s: %v", seed, err)
			failed = append(failed, seed)
			records = nil
		}
		if records == nil {
			records = []snapshot.Record{}
		}
		snap[seed] = records
	}

	return snap, failed
}
