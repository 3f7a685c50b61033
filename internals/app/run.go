package app

import (
	"time"

	"canary/internals/modules/history"
	"canary/internals/modules/probe"
	"canary/pkg/runmeta"
)

// uptimeWindow is the trailing span used for the per-run uptime report.
const uptimeWindow = 24 * time.Hour

// RunChecks performs one monitoring run: probe every configured site in
// order, persist history and status, then alert and report on failures.
// Site failures never fail the run; only the caller's config load can.
func (c *Container) RunChecks() history.Entry {

	c.Log.Info().Int("sites", len(c.Cfg.Websites)).Msg("starting website monitoring")

	var results []probe.Result
	var failed []probe.Result

	for _, site := range c.Cfg.Websites {
		c.Log.Info().Str("site", site.Name).Str("url", site.URL).Msg("checking")

		result := c.Prober.RetryCheck(site)
		results = append(results, result)

		if result.Success {
			c.Log.Info().Str("site", site.Name).Msg("check ok")
		} else {
			c.Log.Warn().Str("site", site.Name).Str("error", result.Error).Msg("check failed")
			failed = append(failed, result)
		}
	}

	meta := runmeta.Collect()
	entry := history.NewEntry(results, history.Metadata{
		RunID:     meta.RunID,
		RunNumber: meta.RunNumber,
		Workflow:  meta.Workflow,
	})

	entries := c.History.Append(c.History.Load(), entry)
	if err := c.History.Save(entries); err != nil {
		c.Log.Warn().Err(err).Msg("could not save historical data")
	}

	if err := c.Status.Save(results); err != nil {
		c.Log.Warn().Err(err).Msg("could not save current status")
	}

	c.Log.Info().
		Int("total", entry.Summary.TotalSites).
		Int("successful", entry.Summary.SuccessfulSites).
		Int("failed", entry.Summary.FailedSites).
		Int("historical_entries", len(entries)).
		Msg("run summary")

	for site, pct := range history.Uptime(entries, uptimeWindow) {
		c.Log.Info().Str("site", site).Float64("uptime_pct", pct).Msg("24h uptime")
	}

	if len(failed) > 0 {
		c.Log.Warn().Int("failed", len(failed)).Msg("sending alert for failed sites")
		if err := c.Notifier.Send(failed, c.Cfg.Notification); err != nil {
			c.Log.Error().Err(err).Msg("failed to send email alert")
		}
	}

	c.Reporter.WriteSummary(results, failed)

	return entry
}
