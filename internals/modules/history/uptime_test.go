package history

import (
	"testing"
	"time"

	"canary/internals/modules/probe"
)

func TestUptimeWindowed(t *testing.T) {
	now := time.Now()

	result := func(success bool) probe.Result {
		return probe.Result{Name: "A", Success: success}
	}

	var entries []Entry
	// 3 in-window results for A: 2 successes, 1 failure
	entries = append(entries,
		entryAt(now.Add(-1*time.Hour), result(true)),
		entryAt(now.Add(-2*time.Hour), result(true)),
		entryAt(now.Add(-3*time.Hour), result(false)),
	)
	// 5 out-of-window results
	for i := 0; i < 5; i++ {
		entries = append(entries, entryAt(now.Add(-time.Duration(30+i)*time.Hour), result(false)))
	}

	stats := Uptime(entries, 24*time.Hour)
	if got := stats["A"]; got != 66.67 {
		t.Fatalf("expected 66.67, got %g", got)
	}
}

func TestUptimeSkipsUnparsableTimestamps(t *testing.T) {
	now := time.Now()

	entries := []Entry{
		entryAt(now, probe.Result{Name: "A", Success: true}),
		{Timestamp: "not-a-timestamp", Results: []probe.Result{{Name: "A", Success: false}}},
	}

	stats := Uptime(entries, 24*time.Hour)
	if got := stats["A"]; got != 100 {
		t.Fatalf("expected 100 with the malformed entry skipped, got %g", got)
	}
}

func TestUptimeAcceptsLegacyTimestamps(t *testing.T) {
	// zone-less ISO-8601 as written by the Python implementation
	entries := []Entry{{
		Timestamp: time.Now().Format("2006-01-02T15:04:05.999999"),
		Results:   []probe.Result{{Name: "A", Success: true}},
	}}

	stats := Uptime(entries, 24*time.Hour)
	if got := stats["A"]; got != 100 {
		t.Fatalf("expected legacy timestamp to count, got %g", got)
	}
}

func TestUptimeEmptyLog(t *testing.T) {
	if stats := Uptime(nil, 24*time.Hour); len(stats) != 0 {
		t.Fatalf("expected no stats, got %v", stats)
	}
}
