package diff

import (
	"github.com/samber/lo"

	"f0oster/typowatch/snapshot"
)

// NewLiveDomains returns the domains live in curr but not in prev.
func NewLiveDomains(prev, curr snapshot.Snapshot) Set {
	before := LiveDomains(prev)
	added := lo.OmitBy(LiveDomains(curr), func(domain string, _ struct{}) bool {
		return before.Contains(domain)
	})
	return Set(added)
}
