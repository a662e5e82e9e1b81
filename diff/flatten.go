package diff

import "f0oster/typowatch/snapshot"

// LiveDomains flattens snap into the set of candidate domains whose records
// carry a truthy A record. Seed keys play no part.
func LiveDomains(snap snapshot.Snapshot) Set {
	live := make(Set)
	for _, records := range snap {
		for _, rec := range records {
			if !rec.Live() {
				continue
			}
			if domain := rec.Domain(); domain != "" {
				live[domain] = struct{}{}
			}
		}
	}
	return live
}
