// Package report appends the run report to the CI step summary file.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"canary/internals/modules/probe"

	"github.com/rs/zerolog"
)

type Reporter struct {
	// Path is the summary destination, normally $GITHUB_STEP_SUMMARY.
	// Empty means no summary is configured and writes are skipped.
	Path string

	log *zerolog.Logger
}

func NewReporter(log *zerolog.Logger) *Reporter {
	return &Reporter{
		Path: os.Getenv("GITHUB_STEP_SUMMARY"),
		log:  log,
	}
}

// WriteSummary appends a markdown report. Silently skipped when no summary
// destination is configured; a write failure is only a warning.
func (r *Reporter) WriteSummary(results, failed []probe.Result) {
	if r.Path == "" {
		return
	}

	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.log.Warn().Err(err).Msg("could not write step summary")
		return
	}
	defer f.Close()

	var sb strings.Builder
	sb.WriteString("# 🔍 Website Monitoring Report\n\n")

	if len(failed) > 0 {
		plural := ""
		if len(failed) > 1 {
			plural = "s"
		}
		fmt.Fprintf(&sb, "## ⚠️ Status: %d site%s down\n\n", len(failed), plural)
	} else {
		sb.WriteString("## ✅ Status: All systems operational\n\n")
	}

	sb.WriteString("| Website | Link | Status | Response Time | Error |\n")
	sb.WriteString("|---------|------|--------|---------------|-------|\n")

	for _, result := range results {
		icon := "✅"
		if !result.Success {
			icon = "❌"
		}

		responseTime := "N/A"
		if result.ResponseTime != nil {
			responseTime = fmt.Sprintf("%gs", *result.ResponseTime)
		}

		errText := "None"
		if result.Error != "" {
			errText = strings.ReplaceAll(result.Error, "|", "\\|")
		}

		fmt.Fprintf(&sb, "| %s | [%s](%s) | %s | %s | %s |\n",
			result.Name, result.URL, result.URL, icon, responseTime, errText)
	}

	fmt.Fprintf(&sb, "\n📅 Last check: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05 UTC"))

	if _, err := f.WriteString(sb.String()); err != nil {
		r.log.Warn().Err(err).Msg("could not write step summary")
	}
}
