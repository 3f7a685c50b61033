// Package status maintains the current-status snapshot: the most recent
// run's per-site state, overwritten wholesale on every run.
package status

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"canary/internals/modules/history"
	"canary/internals/modules/probe"

	"github.com/rs/zerolog"
)

const fileName = "current_status.json"

type SiteStatus struct {
	Status       string   `json:"status"`
	ResponseTime *float64 `json:"response_time"`
	StatusCode   *int     `json:"status_code"`
	Error        string   `json:"error,omitempty"`
	URL          string   `json:"url"`
}

type Snapshot struct {
	Timestamp string                `json:"timestamp"`
	LastCheck string                `json:"last_check"`
	Summary   history.Summary       `json:"summary"`
	Sites     map[string]SiteStatus `json:"sites"`
}

type Writer struct {
	path string
	log  *zerolog.Logger
}

func NewWriter(cacheDir string, log *zerolog.Logger) *Writer {
	return &Writer{
		path: filepath.Join(cacheDir, fileName),
		log:  log,
	}
}

// BuildSnapshot derives the snapshot from the latest results only.
func BuildSnapshot(results []probe.Result) Snapshot {
	now := time.Now().UTC()

	var successful int
	sites := make(map[string]SiteStatus, len(results))
	for _, r := range results {
		state := "down"
		if r.Success {
			state = "up"
			successful++
		}
		sites[r.Name] = SiteStatus{
			Status:       state,
			ResponseTime: r.ResponseTime,
			StatusCode:   r.StatusCode,
			Error:        r.Error,
			URL:          r.URL,
		}
	}

	return Snapshot{
		Timestamp: now.Format(time.RFC3339),
		LastCheck: now.Format("2006-01-02 15:04:05 UTC"),
		Summary: history.Summary{
			TotalSites:          len(results),
			SuccessfulSites:     successful,
			FailedSites:         len(results) - successful,
			AverageResponseTime: probe.AverageResponseTime(results),
		},
		Sites: sites,
	}
}

// Save overwrites the snapshot file with the latest results.
func (w *Writer) Save(results []probe.Result) error {
	snapshot := BuildSnapshot(results)

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return err
	}

	w.log.Info().Msg("saved current status to cache")
	return nil
}

// Load reads the snapshot back, for dashboard generation. Missing or
// corrupt files yield nil.
func (w *Writer) Load() *Snapshot {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.log.Warn().Err(err).Msg("could not read current status")
		}
		return nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		w.log.Warn().Err(err).Msg("could not parse current status")
		return nil
	}
	return &snapshot
}
