package repository

import (
	"testing"
	"time"
)

// created_at strings are compared lexicographically inside DynamoDB filter
// expressions, so the stored layout must sort the same way the instants do.
func TestCreatedAtLayout_LexicographicOrder(t *testing.T) {
	base := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	times := []time.Time{
		base.Add(500 * time.Millisecond), // ...00.5  trims shorter than ...00.52
		base.Add(520 * time.Millisecond),
		base,
		base.Add(time.Nanosecond),
		base.Add(time.Second),
	}

	for i := 0; i < len(times); i++ {
		for j := 0; j < len(times); j++ {
			si := times[i].Format(createdAtLayout)
			sj := times[j].Format(createdAtLayout)
			if times[i].Before(times[j]) != (si < sj) {
				t.Fatalf("string order disagrees with time order: %s vs %s", si, sj)
			}
		}
	}
}

func TestCreatedAtLayout_RoundTrip(t *testing.T) {
	orig := time.Date(2026, 8, 24, 10, 30, 0, 500000000, time.UTC)
	s := orig.Format(createdAtLayout)
	if len(s) != len("2026-01-02T15:04:05.000000000Z") {
		t.Fatalf("expected fixed-width timestamp, got %q", s)
	}

	// Rows are read back with the permissive nano layout, which also still
	// accepts values written before the fraction was padded.
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !parsed.Equal(orig) {
		t.Fatalf("round trip changed instant: %v vs %v", parsed, orig)
	}
}
