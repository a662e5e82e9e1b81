package diff_test

import (
	"reflect"
	"testing"

	"f0oster/typowatch/diff"
	"f0oster/typowatch/snapshot"
)

func live(domain, ip string) snapshot.Record {
	return snapshot.Record{"domain": domain, "dns_a": []any{ip}}
}

func TestNewLiveDomains(t *testing.T) {
	tests := []struct {
		name string
		prev snapshot.Snapshot
		curr snapshot.Snapshot
		want []string
	}{
		{
			name: "first run",
			prev: snapshot.Snapshot{},
			curr: snapshot.Snapshot{"example.com": {{"domain": "examp1e.com", "dns_a": "1.2.3.4"}}},
			want: []string{"examp1e.com"},
		},
		{
			name: "identical snapshots",
			prev: snapshot.Snapshot{"example.com": {{"domain": "examp1e.com", "dns_a": "1.2.3.4"}}},
			curr: snapshot.Snapshot{"example.com": {{"domain": "examp1e.com", "dns_a": "1.2.3.4"}}},
			want: []string{},
		},
		{
			name: "unresolved records ignored on both sides",
			prev: snapshot.Snapshot{"a.com": {{"domain": "a1.com", "dns_a": nil}}},
			curr: snapshot.Snapshot{"a.com": {{"domain": "a1.com", "dns_a": nil}}},
			want: []string{},
		},
		{
			name: "unresolved record in new snapshot only",
			prev: snapshot.Snapshot{},
			curr: snapshot.Snapshot{"a.com": {{"domain": "a1.com"}, {"domain": "a2.com", "dns_a": []any{}}}},
			want: []string{},
		},
		{
			name: "previously unresolved domain starts resolving",
			prev: snapshot.Snapshot{"a.com": {{"domain": "a1.com", "dns_a": nil}}},
			curr: snapshot.Snapshot{"a.com": {live("a1.com", "5.6.7.8")}},
			want: []string{"a1.com"},
		},
		{
			name: "domain that stopped resolving is not reported",
			prev: snapshot.Snapshot{"a.com": {live("a1.com", "5.6.7.8")}},
			curr: snapshot.Snapshot{"a.com": {}},
			want: []string{},
		},
		{
			name: "seed keys are ignored",
			prev: snapshot.Snapshot{"a.com": {live("shared.com", "1.1.1.1")}},
			curr: snapshot.Snapshot{"b.com": {live("shared.com", "1.1.1.1")}},
			want: []string{},
		},
		{
			name: "changed address is not new",
			prev: snapshot.Snapshot{"a.com": {live("a1.com", "1.1.1.1")}},
			curr: snapshot.Snapshot{"a.com": {live("a1.com", "2.2.2.2")}},
			want: []string{},
		},
		{
			name: "multiple seeds sorted output",
			prev: snapshot.Snapshot{"a.com": {live("a1.com", "1.1.1.1")}},
			curr: snapshot.Snapshot{
				"a.com": {live("a1.com", "1.1.1.1"), live("aa.com", "1.1.1.2")},
				"b.com": {live("b1.com", "1.1.1.3"), live("8.com", "1.1.1.4")},
			},
			want: []string{"8.com", "aa.com", "b1.com"},
		},
		{
			name: "records without a domain are skipped",
			prev: snapshot.Snapshot{},
			curr: snapshot.Snapshot{"a.com": {{"dns_a": "1.2.3.4"}, {"domain": "", "dns_a": "1.2.3.4"}}},
			want: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := diff.NewLiveDomains(test.prev, test.curr).Sorted()
			if len(got) == 0 && len(test.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("NewLiveDomains() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestNewLiveDomains_SameSnapshotIsEmpty(t *testing.T) {
	snaps := []snapshot.Snapshot{
		{},
		{"a.com": {}},
		{"a.com": {live("a1.com", "1.1.1.1"), {"domain": "a2.com"}}},
		{"a.com": {live("x.com", "1.1.1.1")}, "b.com": {live("x.com", "1.1.1.1")}},
	}
	for i, snap := range snaps {
		if got := diff.NewLiveDomains(snap, snap); len(got) != 0 {
			t.Errorf("case %d: NewLiveDomains(S, S) = %v, want empty", i, got.Sorted())
		}
	}
}

func TestNewLiveDomains_OrderIndependent(t *testing.T) {
	a := snapshot.Snapshot{"a.com": {live("x1.com", "1.1.1.1"), live("x2.com", "1.1.1.2"), live("x3.com", "1.1.1.3")}}
	b := snapshot.Snapshot{"a.com": {live("x3.com", "1.1.1.3"), live("x1.com", "1.1.1.1"), live("x2.com", "1.1.1.2")}}

	if got := diff.NewLiveDomains(snapshot.Snapshot{}, a).Sorted(); !reflect.DeepEqual(got, diff.NewLiveDomains(snapshot.Snapshot{}, b).Sorted()) {
		t.Errorf("record order changed the result: %q", got)
	}
	if got := diff.NewLiveDomains(a, b); len(got) != 0 {
		t.Errorf("reordered snapshot produced new domains: %v", got.Sorted())
	}
}

func TestLiveDomains(t *testing.T) {
	snap := snapshot.Snapshot{
		"a.com": {live("a1.com", "1.1.1.1"), {"domain": "a2.com", "dns_a": nil}},
		"b.com": {live("a1.com", "1.1.1.1"), live("b1.com", "1.1.1.2")},
		"c.com": nil,
	}
	got := diff.LiveDomains(snap)
	if !got.Contains("a1.com") || !got.Contains("b1.com") || got.Contains("a2.com") {
		t.Errorf("unexpected live set: %v", got.Sorted())
	}
	if len(got) != 2 {
		t.Errorf("expected 2 live domains, got %d", len(got))
	}
}

func TestSet_Sorted(t *testing.T) {
	s := diff.Set{"b.com": {}, "a.com": {}, "c.com": {}}
	if got, want := s.Sorted(), []string{"a.com", "b.com", "c.com"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %q, want %q", got, want)
	}
}
