package diff

import (
	"slices"

	"github.com/samber/lo"
)

// Set is a set of live candidate domains.
type Set map[string]struct{}

func (s Set) Contains(domain string) bool {
	_, ok := s[domain]
	return ok
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	keys := lo.Keys(s)
	slices.Sort(keys)
	return keys
}
