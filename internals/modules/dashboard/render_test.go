package dashboard

import (
	"strings"
	"testing"

	"canary/internals/modules/history"
	"canary/internals/modules/status"
)

func TestRenderEmbedsViewModel(t *testing.T) {
	vm := Build(sampleEntries())
	snapshot := &status.Snapshot{Summary: history.Summary{FailedSites: 0}}

	page, err := Render(vm, snapshot)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"<title>🐤 Canary Dashboard</title>",
		"const dashboardData = ",
		`"uptime_stats"`,
		`"response_times"`,
		"https://a.example",
		"All websites are operational",
		"Total historical entries: 3",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderAlertBanner(t *testing.T) {
	vm := Build(sampleEntries())
	snapshot := &status.Snapshot{Summary: history.Summary{FailedSites: 2}}

	page, err := Render(vm, snapshot)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(page, "2 website(s) are currently down!") {
		t.Error("expected the danger banner")
	}
}

func TestRenderWithoutSnapshot(t *testing.T) {
	page, err := Render(Build(sampleEntries()), nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(page, "alert-success") || strings.Contains(page, "alert-danger") {
		t.Error("no banner expected without a snapshot")
	}
}

func TestRenderPlaceholder(t *testing.T) {
	page := RenderPlaceholder()
	if !strings.Contains(page, "No monitoring data available yet.") {
		t.Fatalf("unexpected placeholder:\n%s", page)
	}
}

func TestRecentAverageMs(t *testing.T) {
	var timeline []TimelinePoint
	// older points outside the trailing-10 window
	for i := 0; i < 5; i++ {
		timeline = append(timeline, TimelinePoint{AverageResponseTime: 99})
	}
	// trailing 10: five zeros (skipped) and five 0.2s
	for i := 0; i < 5; i++ {
		timeline = append(timeline, TimelinePoint{AverageResponseTime: 0})
	}
	for i := 0; i < 5; i++ {
		timeline = append(timeline, TimelinePoint{AverageResponseTime: 0.2})
	}

	if got := recentAverageMs(timeline); got != 200 {
		t.Fatalf("expected 200ms, got %d", got)
	}

	if got := recentAverageMs(nil); got != 0 {
		t.Fatalf("expected 0 for empty timeline, got %d", got)
	}
}
