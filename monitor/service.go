package monitor

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"f0oster/typowatch/diff"
	"f0oster/typowatch/report"
	"f0oster/typowatch/scanner"
	"f0oster/typowatch/snapshot"
)

// Service runs a scan of every seed and compares it with the stored
// snapshot. It holds no state between runs beyond what the store keeps.
type Service struct {
	store       snapshot.Store
	scanner     scanner.Scanner
	summaryPath string
	out         io.Writer
}

func NewService(store snapshot.Store, s scanner.Scanner, summaryPath string, out io.Writer) *Service {
	return &Service{
		store:       store,
		scanner:     s,
		summaryPath: summaryPath,
		out:         out,
	}
}

// Run loads the previous snapshot, scans every seed and computes the newly
// live domains. Nothing is written. A store that cannot be read aborts the
// run before any scanning; a failing seed does not.
func (s *Service) Run(ctx context.Context, seeds []string) (*Result, error) {
	runID := uuid.New()

	previous, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous snapshot: %w", err)
	}
	if !previous.Present {
		log.Printf("Run %s: no previous snapshot, treating as first run", runID)
	}

	current, failed := scanner.Collect(ctx, s.scanner, seeds, s.out)

	newDomains := diff.NewLiveDomains(previous.Snapshot, current).Sorted()

	_, records := current.Counts()
	log.Printf("Run %s: scanned %d seeds (%d failed), %d records, %d new live domains",
		runID, len(seeds), len(failed), records, len(newDomains))

	return &Result{
		RunID:      runID,
		Previous:   previous,
		Current:    current,
		NewDomains: newDomains,
		Failed:     failed,
	}, nil
}

// Persist replaces the stored snapshot and writes the summary when the run
// detected new domains. Otherwise it leaves both untouched.
func (s *Service) Persist(ctx context.Context, res *Result, now time.Time) error {
	if !res.Detected() {
		return nil
	}

	if err := s.store.Save(ctx, res.Current); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	if err := report.WriteSummary(s.summaryPath, report.NewSummary(res.NewDomains, now)); err != nil {
		return err
	}

	log.Printf("Run %s: snapshot replaced, summary written to %s", res.RunID, s.summaryPath)
	return nil
}
