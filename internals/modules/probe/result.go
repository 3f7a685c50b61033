package probe

import "canary/pkg/timeutil"

// Result is the collapsed outcome of checking one site, after retries.
// StatusCode and ResponseTime stay nil when the failure happened before a
// response arrived (timeout, connection error).
type Result struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Timestamp    string   `json:"timestamp"`
	Success      bool     `json:"success"`
	StatusCode   *int     `json:"status_code,omitempty"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// AverageResponseTime is the mean response time over successful results
// that carry a measurement, rounded to two decimals. 0 when none qualify.
func AverageResponseTime(results []Result) float64 {
	var sum float64
	var n int
	for _, r := range results {
		if r.Success && r.ResponseTime != nil {
			sum += *r.ResponseTime
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return timeutil.Round2(sum / float64(n))
}
