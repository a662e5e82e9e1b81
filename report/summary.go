package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"
)

// Summary is the detection report written next to the snapshot.
type Summary struct {
	LastUpdated time.Time `json:"last_updated"`
	NewDomains  []string  `json:"new_domains"`
}

// NewSummary builds a summary stamped with now in UTC. The domains are copied
// and sorted.
func NewSummary(newDomains []string, now time.Time) Summary {
	domains := slices.Clone(newDomains)
	if domains == nil {
		domains = []string{}
	}
	slices.Sort(domains)
	return Summary{LastUpdated: now.UTC(), NewDomains: domains}
}

// WriteSummary overwrites path with s as indented JSON.
func WriteSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}

// ReadSummary loads a previously written summary. found is false when the
// file does not exist.
func ReadSummary(path string) (s Summary, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Summary{}, false, nil
	}
	if err != nil {
		return Summary{}, false, fmt.Errorf("failed to read summary %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, false, fmt.Errorf("failed to parse summary %s: %w", path, err)
	}
	return s, true, nil
}
