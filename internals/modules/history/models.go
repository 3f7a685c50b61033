package history

import (
	"time"

	"canary/internals/modules/probe"
)

type Summary struct {
	TotalSites          int     `json:"total_sites"`
	SuccessfulSites     int     `json:"successful_sites"`
	FailedSites         int     `json:"failed_sites"`
	AverageResponseTime float64 `json:"average_response_time"`
}

type Metadata struct {
	RunID     string `json:"run_id"`
	RunNumber string `json:"run_number"`
	Workflow  string `json:"workflow"`
}

// Entry is one monitoring run. The timestamp stays a string so that a
// malformed value in a persisted file degrades to a skipped entry instead
// of failing the whole load.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Summary   Summary        `json:"summary"`
	Results   []probe.Result `json:"results"`
	Metadata  Metadata       `json:"metadata"`
}

// NewEntry builds the entry for a completed run.
func NewEntry(results []probe.Result, meta Metadata) Entry {
	var successful int
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	return Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: Summary{
			TotalSites:          len(results),
			SuccessfulSites:     successful,
			FailedSites:         len(results) - successful,
			AverageResponseTime: probe.AverageResponseTime(results),
		},
		Results:  results,
		Metadata: meta,
	}
}
