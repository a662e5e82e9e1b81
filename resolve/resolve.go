package resolve

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// Confirmer re-queries A records for freshly reported domains against a
// single nameserver.
type Confirmer struct {
	Nameserver string
	client     *dns.Client
}

// NewConfirmer returns a Confirmer for nameserver ("host" or "host:port").
func NewConfirmer(nameserver string, timeout time.Duration) *Confirmer {
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		nameserver = net.JoinHostPort(nameserver, "53")
	}
	return &Confirmer{
		Nameserver: nameserver,
		client:     &dns.Client{Timeout: timeout},
	}
}

// LookupA returns the IPv4 addresses currently published for domain. NXDOMAIN
// yields no addresses and no error.
func (c *Confirmer) LookupA(ctx context.Context, domain string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	msg.RecursionDesired = true

	r, _, err := c.client.ExchangeContext(ctx, msg, c.Nameserver)
	if err != nil {
		return nil, fmt.Errorf("query %s via %s: %w", domain, c.Nameserver, err)
	}

	switch r.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, nil
	default:
		return nil, fmt.Errorf("query %s via %s: %s", domain, c.Nameserver, dns.RcodeToString[r.Rcode])
	}

	var addrs []string
	for _, rr := range r.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	return addrs, nil
}
