package dashboard

import (
	"bytes"
	"encoding/json"
	"html/template"
	"math"
	"sort"
	"time"

	"canary/internals/modules/status"
)

type websiteRow struct {
	Name             string
	URL              string
	ItemClass        string
	Uptime           float64
	UptimeClass      string
	LastResponseTime *float64
}

type pageData struct {
	LastUpdated        string
	HasStatus          bool
	FailedSites        int
	TotalWebsites      int
	OverallUptime      float64
	OverallStatusClass string
	AvgResponseTimeMs  int
	TotalChecks        int
	TotalEntries       int
	Websites           []websiteRow
	Data               template.JS
}

// Render emits the self-contained dashboard page. The view model is
// embedded as JSON so charts and filters run entirely in the browser.
func Render(vm *ViewModel, snapshot *status.Snapshot) (string, error) {
	data := pageData{
		LastUpdated:   time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
		TotalWebsites: len(vm.Websites),
		TotalEntries:  len(vm.Timeline),
	}

	if snapshot != nil {
		data.HasStatus = true
		data.FailedSites = snapshot.Summary.FailedSites
	}

	if data.TotalWebsites > 0 {
		var sum float64
		for _, site := range vm.Websites {
			sum += site.UptimePercentage
		}
		overall := sum / float64(data.TotalWebsites)
		data.OverallUptime = math.Round(overall*10) / 10
		data.OverallStatusClass = statusClass(overall)
	} else {
		data.OverallStatusClass = "danger"
	}

	data.AvgResponseTimeMs = recentAverageMs(vm.Timeline)

	names := make([]string, 0, len(vm.Websites))
	for name := range vm.Websites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		site := vm.Websites[name]
		data.TotalChecks += len(site.Checks)

		row := websiteRow{
			Name:             site.Name,
			URL:              site.URL,
			Uptime:           site.UptimePercentage,
			UptimeClass:      uptimeClass(site.UptimePercentage),
			LastResponseTime: site.LastResponseTime,
		}
		if site.CurrentStatus != "up" {
			row.ItemClass = "down"
		}
		data.Websites = append(data.Websites, row)
	}

	embedded, err := json.Marshal(vm)
	if err != nil {
		return "", err
	}
	data.Data = template.JS(embedded)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPlaceholder is emitted when no history exists yet.
func RenderPlaceholder() string {
	return placeholderPage
}

// recentAverageMs averages the trailing 10 timeline entries that carry a
// positive average response time, in milliseconds.
func recentAverageMs(timeline []TimelinePoint) int {
	recent := timeline
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	var sum float64
	var n int
	for _, point := range recent {
		if point.AverageResponseTime > 0 {
			sum += point.AverageResponseTime
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n) * 1000))
}

func statusClass(uptime float64) string {
	switch {
	case uptime >= 99:
		return "success"
	case uptime >= 95:
		return "warning"
	default:
		return "danger"
	}
}

func uptimeClass(uptime float64) string {
	switch {
	case uptime >= 99:
		return "uptime-excellent"
	case uptime >= 95:
		return "uptime-good"
	default:
		return "uptime-poor"
	}
}
