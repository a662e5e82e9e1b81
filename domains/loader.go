package domains

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Load returns the non-blank lines of path, whitespace-trimmed, in file order.
// A missing file is returned as an error wrapping os.ErrNotExist.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open domain list: %w", err)
	}
	defer file.Close()

	var seeds []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if registrable, ok := IsRegistrable(line); !ok {
			log.Printf("Warning: seed %s is not a registrable domain (eTLD+1 is %q)", line, registrable)
		}
		seeds = append(seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read domain list %s: %w", path, err)
	}

	return seeds, nil
}

// IsRegistrable reports whether seed is its own eTLD+1, returning the
// registrable domain it resolved to.
func IsRegistrable(seed string) (string, bool) {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(strings.TrimSuffix(seed, ".")))
	if err != nil {
		return "", false
	}
	return registrable, strings.EqualFold(registrable, strings.TrimSuffix(seed, "."))
}
