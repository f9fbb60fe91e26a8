// Package database provides the sqlite connection used by the leaderboard's
// sqlite store backend.
package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sql connection with hackjudge's schema management.
type DB struct {
	*sql.DB
}

// New opens (creating if needed) the database under dataDir and runs
// migrations.
func New(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "hackjudge.db")
	connStr := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(1) // single writer; the board serializes mutations anyway
	db.SetConnMaxLifetime(5 * time.Minute)

	d := &DB{DB: db}
	if err := d.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database initialized", "path", dbPath)
	return d, nil
}

func (d *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS leaderboard_entries (
			id TEXT PRIMARY KEY,
			project_title TEXT NOT NULL,
			final_score REAL NOT NULL,
			raw_score REAL NOT NULL,
			innovation_score REAL NOT NULL,
			technical_depth_score REAL NOT NULL,
			problem_relevance_score REAL NOT NULL,
			feasibility_score REAL NOT NULL,
			scalability_score REAL NOT NULL,
			ui_ux_score REAL NOT NULL,
			real_world_impact_score REAL NOT NULL,
			total_penalty REAL NOT NULL,
			verdict TEXT NOT NULL,
			verdict_emoji TEXT NOT NULL,
			submitted_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_score ON leaderboard_entries(final_score DESC, raw_score DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_submitted ON leaderboard_entries(submitted_at)`,
	}

	for _, query := range queries {
		if _, err := d.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}
