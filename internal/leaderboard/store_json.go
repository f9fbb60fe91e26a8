package leaderboard

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// JSONStore persists entries as a single JSON file. Saves go through a temp
// file and rename so a crash mid-write never leaves a truncated board.
type JSONStore struct {
	path string
}

// NewJSONStore builds a store writing to path, creating parent directories.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create leaderboard directory: %w", err)
		}
	}
	return &JSONStore{path: path}, nil
}

// Load reads the persisted entries. A missing or corrupt file yields an
// empty board rather than an error; losing a hackathon leaderboard to a bad
// byte is worse than starting fresh.
func (s *JSONStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Leaderboard file is corrupt, starting fresh", "path", s.path, "error", err)
		return nil, nil
	}
	return entries, nil
}

// Save writes the full entry list atomically.
func (s *JSONStore) Save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write leaderboard file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace leaderboard file: %w", err)
	}
	return nil
}
