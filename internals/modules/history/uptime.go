package history

import (
	"time"

	"canary/pkg/timeutil"
)

type counter struct {
	total      int
	successful int
}

// Uptime computes per-site uptime percentages over the trailing window.
// Entries with unparsable timestamps are skipped. Percentages are rounded
// to two decimals.
func Uptime(entries []Entry, window time.Duration) map[string]float64 {
	cutoff := time.Now().Add(-window)

	stats := make(map[string]*counter)
	for _, entry := range entries {
		ts, err := timeutil.Parse(entry.Timestamp)
		if err != nil || ts.Before(cutoff) {
			continue
		}

		for _, result := range entry.Results {
			c, ok := stats[result.Name]
			if !ok {
				c = &counter{}
				stats[result.Name] = c
			}
			c.total++
			if result.Success {
				c.successful++
			}
		}
	}

	percentages := make(map[string]float64, len(stats))
	for name, c := range stats {
		if c.total == 0 {
			percentages[name] = 0
			continue
		}
		percentages[name] = timeutil.Round2(float64(c.successful) / float64(c.total) * 100)
	}
	return percentages
}
