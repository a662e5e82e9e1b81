package scanner_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"f0oster/typowatch/scanner"
	"f0oster/typowatch/snapshot"
)

type stubScanner map[string][]snapshot.Record

func (s stubScanner) Scan(_ context.Context, domain string) ([]snapshot.Record, error) {
	recs, ok := s[domain]
	if !ok {
		return nil, errors.New("scanner exploded")
	}
	return recs, nil
}

func TestCollect_FailureDoesNotAbort(t *testing.T) {
	good := []snapshot.Record{{"domain": "g00d.com", "dns_a": "1.2.3.4"}}
	s := stubScanner{"good.com": good, "quiet.com": nil}

	var out bytes.Buffer
	snap, failed := scanner.Collect(context.Background(), s, []string{"bad.com", "good.com", "quiet.com"}, &out)

	if !reflect.DeepEqual(failed, []string{"bad.com"}) {
		t.Errorf("failed = %q, want [bad.com]", failed)
	}
	bad, ok := snap["bad.com"]
	if !ok || bad == nil || len(bad) != 0 {
		t.Errorf("bad.com entry = %#v, want empty non-nil list", bad)
	}
	if !reflect.DeepEqual(snap["good.com"], good) {
		t.Errorf("good.com entry = %#v, want %#v", snap["good.com"], good)
	}
	if quiet := snap["quiet.com"]; quiet == nil || len(quiet) != 0 {
		t.Errorf("quiet.com entry = %#v, want empty non-nil list", quiet)
	}

	for _, seed := range []string{"bad.com", "good.com", "quiet.com"} {
		if !strings.Contains(out.String(), "Scanning "+seed+"...") {
			t.Errorf("missing progress line for %s in %q", seed, out.String())
		}
	}
}

func TestCollect_ScansInOrder(t *testing.T) {
	var order []string
	s := scannerFunc(func(_ context.Context, domain string) ([]snapshot.Record, error) {
		order = append(order, domain)
		return nil, nil
	})

	seeds := []string{"c.com", "a.com", "b.com"}
	scanner.Collect(context.Background(), s, seeds, &bytes.Buffer{})

	if !reflect.DeepEqual(order, seeds) {
		t.Errorf("scan order = %q, want %q", order, seeds)
	}
}

func TestCollect_NoSeeds(t *testing.T) {
	snap, failed := scanner.Collect(context.Background(), stubScanner{}, nil, &bytes.Buffer{})
	if len(snap) != 0 || len(failed) != 0 {
		t.Errorf("expected empty results, got %#v / %q", snap, failed)
	}
}

type scannerFunc func(ctx context.Context, domain string) ([]snapshot.Record, error)

func (f scannerFunc) Scan(ctx context.Context, domain string) ([]snapshot.Record, error) {
	return f(ctx, domain)
}
