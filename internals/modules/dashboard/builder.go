package dashboard

import (
	"sort"
	"time"

	"canary/internals/modules/history"
	"canary/pkg/timeutil"
)

type Check struct {
	Timestamp    string   `json:"timestamp"`
	Success      bool     `json:"success"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	StatusCode   *int     `json:"status_code,omitempty"`
	Error        string   `json:"error,omitempty"`
}

type Website struct {
	Name             string   `json:"name"`
	URL              string   `json:"url"`
	Checks           []Check  `json:"checks"`
	UptimePercentage float64  `json:"uptime_percentage"`
	CurrentStatus    string   `json:"current_status"`
	LastResponseTime *float64 `json:"last_response_time"`
}

type TimelinePoint struct {
	Timestamp           string  `json:"timestamp"`
	TotalSites          int     `json:"total_sites"`
	SuccessfulSites     int     `json:"successful_sites"`
	FailedSites         int     `json:"failed_sites"`
	AverageResponseTime float64 `json:"average_response_time"`
}

type ResponseTimePoint struct {
	Timestamp    string  `json:"timestamp"`
	ResponseTime float64 `json:"response_time"`
}

type UptimeCount struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
}

type ViewModel struct {
	Websites      map[string]*Website            `json:"websites"`
	Timeline      []TimelinePoint                `json:"timeline"`
	UptimeStats   map[string]UptimeCount         `json:"uptime_stats"`
	ResponseTimes map[string][]ResponseTimePoint `json:"response_times"`
	LastUpdated   string                         `json:"last_updated"`
}

// Build transforms the historical log into the dashboard view model.
// Entries are processed in chronological order so that per-site current
// status and last response time come from the newest entry. The input is
// never mutated.
func Build(entries []history.Entry) *ViewModel {
	vm := &ViewModel{
		Websites:      make(map[string]*Website),
		UptimeStats:   make(map[string]UptimeCount),
		ResponseTimes: make(map[string][]ResponseTimePoint),
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}

	ordered := make([]history.Entry, len(entries))
	copy(ordered, entries)
	// RFC3339 strings in the same zone sort chronologically
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	counts := make(map[string]*UptimeCount)

	for _, entry := range ordered {
		vm.Timeline = append(vm.Timeline, TimelinePoint{
			Timestamp:           entry.Timestamp,
			TotalSites:          entry.Summary.TotalSites,
			SuccessfulSites:     entry.Summary.SuccessfulSites,
			FailedSites:         entry.Summary.FailedSites,
			AverageResponseTime: entry.Summary.AverageResponseTime,
		})

		for _, result := range entry.Results {
			site, ok := vm.Websites[result.Name]
			if !ok {
				site = &Website{
					Name:          result.Name,
					URL:           result.URL,
					CurrentStatus: "unknown",
				}
				vm.Websites[result.Name] = site
			}

			site.Checks = append(site.Checks, Check{
				Timestamp:    entry.Timestamp,
				Success:      result.Success,
				ResponseTime: result.ResponseTime,
				StatusCode:   result.StatusCode,
				Error:        result.Error,
			})

			// last chronological entry wins
			if result.Success {
				site.CurrentStatus = "up"
			} else {
				site.CurrentStatus = "down"
			}
			site.LastResponseTime = result.ResponseTime

			c, ok := counts[result.Name]
			if !ok {
				c = &UptimeCount{}
				counts[result.Name] = c
			}
			c.Total++
			if result.Success {
				c.Successful++
			}

			if result.Success && result.ResponseTime != nil {
				vm.ResponseTimes[result.Name] = append(vm.ResponseTimes[result.Name], ResponseTimePoint{
					Timestamp:    entry.Timestamp,
					ResponseTime: *result.ResponseTime,
				})
			}
		}
	}

	for name, c := range counts {
		vm.UptimeStats[name] = *c
		if c.Total > 0 {
			vm.Websites[name].UptimePercentage = timeutil.Round2(float64(c.Successful) / float64(c.Total) * 100)
		}
	}

	return vm
}
