package leaderboard

import (
	"fmt"

	"github.com/judgekit/hackjudge/internal/database"
)

// SQLiteStore persists entries in the leaderboard_entries table. Save
// rewrites the whole table in one transaction; the board is small (hundreds
// of rows at most) and this keeps the store interface identical to the JSON
// backend.
type SQLiteStore struct {
	db *database.DB
}

// NewSQLiteStore wraps an opened database.
func NewSQLiteStore(db *database.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads all persisted entries in insertion order.
func (s *SQLiteStore) Load() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, project_title, final_score, raw_score,
			innovation_score, technical_depth_score, problem_relevance_score,
			feasibility_score, scalability_score, ui_ux_score, real_world_impact_score,
			total_penalty, verdict, verdict_emoji, submitted_at
		FROM leaderboard_entries
		ORDER BY submitted_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.ProjectTitle, &e.FinalScore, &e.RawScore,
			&e.InnovationScore, &e.TechnicalDepthScore, &e.ProblemRelevanceScore,
			&e.FeasibilityScore, &e.ScalabilityScore, &e.UIUXScore, &e.RealWorldImpactScore,
			&e.TotalPenalty, &e.Verdict, &e.VerdictEmoji, &e.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}
	return entries, nil
}

// Save replaces the persisted board with entries.
func (s *SQLiteStore) Save(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM leaderboard_entries`); err != nil {
		return fmt.Errorf("failed to clear leaderboard entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO leaderboard_entries (
			id, project_title, final_score, raw_score,
			innovation_score, technical_depth_score, problem_relevance_score,
			feasibility_score, scalability_score, ui_ux_score, real_world_impact_score,
			total_penalty, verdict, verdict_emoji, submitted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(
			e.ID, e.ProjectTitle, e.FinalScore, e.RawScore,
			e.InnovationScore, e.TechnicalDepthScore, e.ProblemRelevanceScore,
			e.FeasibilityScore, e.ScalabilityScore, e.UIUXScore, e.RealWorldImpactScore,
			e.TotalPenalty, e.Verdict, e.VerdictEmoji, e.SubmittedAt,
		); err != nil {
			return fmt.Errorf("failed to insert leaderboard entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit leaderboard save: %w", err)
	}
	return nil
}
