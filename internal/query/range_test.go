package query

import (
	"errors"
	"testing"
	"time"

	"telemetry/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2026-01-01T00:00:00Z", "2026-01-31T23:59:59Z")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Start == nil || !r.Start.Equal(ts("2026-01-01T00:00:00Z")) {
		t.Fatalf("unexpected start: %v", r.Start)
	}
	if r.End == nil || !r.End.Equal(ts("2026-01-31T23:59:59Z")) {
		t.Fatalf("unexpected end: %v", r.End)
	}

	r, err = ParseRange("", "")
	if err != nil {
		t.Fatalf("ParseRange with empty bounds: %v", err)
	}
	if r.Start != nil || r.End != nil {
		t.Fatalf("expected unconstrained range, got %+v", r)
	}
}

func TestParseRangeRejectsBadInput(t *testing.T) {
	for _, tc := range []struct{ start, end string }{
		{"2026-01-01", ""},
		{"", "not-a-date"},
		{"2026-01-01T00:00:00", ""},
		{"1735689600", ""},
	} {
		if _, err := ParseRange(tc.start, tc.end); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ParseRange(%q, %q): want validation error, got %v", tc.start, tc.end, err)
		}
	}
}

func TestRangeContains(t *testing.T) {
	start := ts("2026-01-01T00:00:00Z")
	end := ts("2026-01-31T23:59:59Z")

	cases := []struct {
		name string
		r    Range
		at   time.Time
		want bool
	}{
		{"unconstrained", Range{}, ts("1970-01-01T00:00:00Z"), true},
		{"only start, after", Range{Start: &start}, ts("2026-06-01T00:00:00Z"), true},
		{"only start, before", Range{Start: &start}, ts("2025-12-31T23:59:59Z"), false},
		{"only end, before", Range{End: &end}, ts("2025-01-01T00:00:00Z"), true},
		{"only end, after", Range{End: &end}, ts("2026-02-01T00:00:00Z"), false},
		{"window, inside", Range{Start: &start, End: &end}, ts("2026-01-15T12:00:00Z"), true},
		{"window, on start", Range{Start: &start, End: &end}, start, true},
		{"window, on end", Range{Start: &start, End: &end}, end, true},
		{"window, just before", Range{Start: &start, End: &end}, start.Add(-time.Second), false},
		{"window, just after", Range{Start: &start, End: &end}, end.Add(time.Second), false},
	}
	for _, tc := range cases {
		if got := tc.r.Contains(tc.at); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.at, got, tc.want)
		}
	}
}
