package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// MaxEntries bounds the persisted log; older entries are dropped first.
const MaxEntries = 500

const fileName = "monitoring_history.json"

// Store persists the monitoring log as a single JSON array, rewritten
// whole on every save. Read and write failures degrade, they never abort
// a run.
type Store struct {
	path string
	log  *zerolog.Logger
}

func NewStore(cacheDir string, log *zerolog.Logger) *Store {
	return &Store{
		path: filepath.Join(cacheDir, fileName),
		log:  log,
	}
}

// Load reads the persisted log. A missing file means a fresh start; a
// corrupt file is logged and treated as empty.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info().Msg("no historical data found in cache, starting fresh")
			return nil
		}
		s.log.Warn().Err(err).Str("path", s.path).Msg("could not read historical data")
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("could not parse historical data")
		return nil
	}

	s.log.Info().Int("entries", len(entries)).Msg("loaded historical entries from cache")
	return entries
}

// Append adds the entry and trims the log to the newest MaxEntries.
func (s *Store) Append(entries []Entry, entry Entry) []Entry {
	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
		s.log.Info().Int("entries", len(entries)).Msg("trimmed historical data")
	}
	return entries
}

// Save rewrites the whole log file.
func (s *Store) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}

	s.log.Info().Int("entries", len(entries)).Msg("saved historical data to cache")
	return nil
}
