package snapshot

import "context"

const (
	// DomainField holds the permuted candidate domain.
	DomainField = "domain"

	// ARecordField is dnstwist's A-record indicator. A truthy value means the
	// candidate currently resolves.
	ARecordField = "dns_a"
)

// Record is a single permutation as emitted by the scanner. Only DomainField
// and ARecordField are interpreted; everything else is passed through.
type Record map[string]any

// Snapshot maps each seed domain to the permutation records observed for it.
type Snapshot map[string][]Record

// LoadResult separates an absent store (first run) from a present one.
// A store that exists but cannot be decoded is reported as an error instead.
type LoadResult struct {
	Snapshot Snapshot
	Present  bool
}

// Store persists the latest snapshot. Save replaces whatever was stored before.
type Store interface {
	Load(ctx context.Context) (LoadResult, error)
	Save(ctx context.Context, snap Snapshot) error
}
