package report

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// ExitNoNewDomains is the status for a run that found nothing new.
const ExitNoNewDomains = 0

// ALookup resolves the current A records of a domain.
type ALookup interface {
	LookupA(ctx context.Context, domain string) ([]string, error)
}

// Console prints run results for a human reader.
type Console struct {
	Out io.Writer
	// Confirm, when set, annotates each new domain with its current A records.
	Confirm ALookup
}

func NewConsole(out io.Writer, confirm ALookup) *Console {
	return &Console{Out: out, Confirm: confirm}
}

// Print writes one line per new domain in the order given, or a single
// "nothing new" line.
func (c *Console) Print(ctx context.Context, newDomains []string) {
	if len(newDomains) == 0 {
		fmt.Fprintln(c.Out, "No new domains found.")
		return
	}

	fmt.Fprintf(c.Out, "New domains detected (%d):\n", len(newDomains))
	for _, domain := range newDomains {
		fmt.Fprintf(c.Out, "  %s%s\n", domain, c.annotate(ctx, domain))
	}
}

func (c *Console) annotate(ctx context.Context, domain string) string {
	if c.Confirm == nil {
		return ""
	}
	addrs, err := c.Confirm.LookupA(ctx, domain)
	if err != nil {
		log.Printf("Warning: could not confirm %s: %v", domain, err)
		return " (unconfirmed)"
	}
	if len(addrs) == 0 {
		return " (no A record now)"
	}
	return " [" + strings.Join(addrs, ", ") + "]"
}

// ExitCode maps the run outcome onto the process status. newDomainsCode is
// used when anything new was found.
func ExitCode(newDomains []string, newDomainsCode int) int {
	if len(newDomains) == 0 {
		return ExitNoNewDomains
	}
	return newDomainsCode
}
