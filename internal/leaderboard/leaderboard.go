// Package leaderboard ranks finalized project scores and persists them
// through a pluggable store. The board owns the only mutable shared state in
// the service; every mutation is serialized under one lock and written
// through to the store synchronously.
package leaderboard

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/types"
)

// Entry is a flattened snapshot of a finalized score. Entries are owned by
// the board and never mutated after insertion. Titles are not unique; a
// resubmission is a separate row.
type Entry struct {
	ID                    string    `json:"id"`
	ProjectTitle          string    `json:"project_title"`
	FinalScore            float64   `json:"final_score"`
	RawScore              float64   `json:"raw_score"`
	InnovationScore       float64   `json:"innovation_score"`
	TechnicalDepthScore   float64   `json:"technical_depth_score"`
	ProblemRelevanceScore float64   `json:"problem_relevance_score"`
	FeasibilityScore      float64   `json:"feasibility_score"`
	ScalabilityScore      float64   `json:"scalability_score"`
	UIUXScore             float64   `json:"ui_ux_score"`
	RealWorldImpactScore  float64   `json:"real_world_impact_score"`
	TotalPenalty          float64   `json:"total_penalty"`
	Verdict               string    `json:"verdict"`
	VerdictEmoji          string    `json:"verdict_emoji"`
	SubmittedAt           time.Time `json:"submitted_at"`
}

// criterionScore returns the flattened score for a criterion key.
func (e Entry) criterionScore(key string) float64 {
	switch key {
	case config.CriterionInnovation:
		return e.InnovationScore
	case config.CriterionTechnicalDepth:
		return e.TechnicalDepthScore
	case config.CriterionRelevance:
		return e.ProblemRelevanceScore
	case config.CriterionFeasibility:
		return e.FeasibilityScore
	case config.CriterionScalability:
		return e.ScalabilityScore
	case config.CriterionUIUX:
		return e.UIUXScore
	case config.CriterionRealWorldImpact:
		return e.RealWorldImpactScore
	default:
		return 0
	}
}

// RankedEntry annotates an entry with its 1-based position.
type RankedEntry struct {
	Entry
	Rank   int  `json:"rank"`
	IsTop3 bool `json:"is_top_3"`
}

// Statistics summarizes the board, computed on demand.
type Statistics struct {
	TotalProjects int            `json:"total_projects"`
	AverageScore  float64        `json:"average_score"`
	HighestScore  float64        `json:"highest_score"`
	LowestScore   float64        `json:"lowest_score"`
	ScoreRange    float64        `json:"score_range"`
	VerdictCounts map[string]int `json:"verdict_counts"`
}

// Comparison is a head-to-head between two entries.
type Comparison struct {
	Project1        string                       `json:"project1"`
	Project2        string                       `json:"project2"`
	ScoreDifference float64                      `json:"score_difference"`
	Winner          string                       `json:"winner"`
	Criteria        map[string]CriterionContrast `json:"criteria_comparison"`
}

// CriterionContrast holds both sides of one criterion.
type CriterionContrast struct {
	Project1   float64 `json:"project1"`
	Project2   float64 `json:"project2"`
	Difference float64 `json:"difference"`
}

// Store persists the full flattened entry list. Save is called after every
// mutation; Load once at startup.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is the append-only ranked collection of scored projects.
//
// Entries are kept in insertion order; ranking is a derived view sorted by
// final score descending, ties broken by raw score descending, then by
// insertion order (stable sort over the insertion-ordered slice).
type Board struct {
	mu      sync.Mutex
	entries []Entry
	store   Store
}

// New builds a board backed by store, loading any persisted entries.
func New(store Store) (*Board, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return &Board{entries: entries, store: store}, nil
}

// Add snapshots a finalized score onto the board, persists, and returns the
// 1-based rank of the first occurrence of its title in the new ordering.
func (b *Board) Add(score *types.Score) (int, error) {
	entry := Entry{
		ID:                    uuid.New().String(),
		ProjectTitle:          score.ProjectTitle,
		FinalScore:            score.FinalScore,
		RawScore:              score.RawScore,
		InnovationScore:       score.CriterionScore(config.CriterionInnovation).Score,
		TechnicalDepthScore:   score.CriterionScore(config.CriterionTechnicalDepth).Score,
		ProblemRelevanceScore: score.CriterionScore(config.CriterionRelevance).Score,
		FeasibilityScore:      score.CriterionScore(config.CriterionFeasibility).Score,
		ScalabilityScore:      score.CriterionScore(config.CriterionScalability).Score,
		UIUXScore:             score.CriterionScore(config.CriterionUIUX).Score,
		RealWorldImpactScore:  score.CriterionScore(config.CriterionRealWorldImpact).Score,
		TotalPenalty:          score.TotalPenalty,
		Verdict:               score.Verdict,
		VerdictEmoji:          score.VerdictEmoji,
		SubmittedAt:           time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	if err := b.store.Save(b.entries); err != nil {
		// Roll back the append so memory and store stay consistent.
		b.entries = b.entries[:len(b.entries)-1]
		return 0, fmt.Errorf("failed to persist leaderboard: %w", err)
	}

	for i, e := range b.sortedLocked() {
		if e.ProjectTitle == entry.ProjectTitle {
			return i + 1, nil
		}
	}
	return len(b.entries), nil
}

// Rankings returns the sorted view with ranks. limit <= 0 returns everything.
func (b *Board) Rankings(limit int) []RankedEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	sorted := b.sortedLocked()
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	ranked := make([]RankedEntry, len(sorted))
	for i, e := range sorted {
		ranked[i] = RankedEntry{Entry: e, Rank: i + 1, IsTop3: i < 3}
	}
	return ranked
}

// ExplainWinner narrates why the current #1 leads, with gap intensity and up
// to three criterion advantages over #2.
func (b *Board) ExplainWinner() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	sorted := b.sortedLocked()
	if len(sorted) == 0 {
		return "No projects submitted yet."
	}

	winner := sorted[0]
	if len(sorted) == 1 {
		return fmt.Sprintf("**%s** is the only submission with a score of %.1f/100 (%s).",
			winner.ProjectTitle, winner.FinalScore, winner.Verdict)
	}

	runnerUp := sorted[1]
	scoreDiff := winner.FinalScore - runnerUp.FinalScore

	var intensity string
	switch {
	case scoreDiff >= 20:
		intensity = "dominating"
	case scoreDiff >= 10:
		intensity = "convincing"
	case scoreDiff >= 5:
		intensity = "solid"
	default:
		intensity = "narrow"
	}

	type advantage struct {
		name  string
		delta float64
	}
	var advantages []advantage
	for _, key := range config.CriterionOrder {
		if delta := winner.criterionScore(key) - runnerUp.criterionScore(key); delta > 0 {
			advantages = append(advantages, advantage{name: config.CriterionNames[key], delta: delta})
		}
	}
	sort.SliceStable(advantages, func(i, j int) bool { return advantages[i].delta > advantages[j].delta })

	explanation := fmt.Sprintf("🏆 **%s** takes the top spot with a %s %.1f-point lead over %s.",
		winner.ProjectTitle, intensity, scoreDiff, runnerUp.ProjectTitle)

	if len(advantages) > 0 {
		if len(advantages) > 3 {
			advantages = advantages[:3]
		}
		names := make([]string, len(advantages))
		for i, a := range advantages {
			names[i] = a.name
		}
		explanation += fmt.Sprintf(" Key advantages: strong performance in %s.", strings.Join(names, ", "))
	}

	if winner.TotalPenalty < runnerUp.TotalPenalty {
		explanation += " The winner also had fewer deductions for buzzwords or vague claims."
	}

	return explanation
}

// Compare returns a head-to-head between two titles (case-insensitive,
// first occurrence each).
func (b *Board) Compare(title1, title2 string) (*Comparison, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p1 := b.findLocked(title1)
	p2 := b.findLocked(title2)
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("one or both projects not found")
	}

	winner := "Tie"
	if p1.FinalScore > p2.FinalScore {
		winner = p1.ProjectTitle
	} else if p2.FinalScore > p1.FinalScore {
		winner = p2.ProjectTitle
	}

	criteria := make(map[string]CriterionContrast, len(config.CriterionOrder))
	for _, key := range config.CriterionOrder {
		s1 := p1.criterionScore(key)
		s2 := p2.criterionScore(key)
		criteria[config.CriterionNames[key]] = CriterionContrast{
			Project1:   s1,
			Project2:   s2,
			Difference: s1 - s2,
		}
	}

	return &Comparison{
		Project1:        p1.ProjectTitle,
		Project2:        p2.ProjectTitle,
		ScoreDifference: p1.FinalScore - p2.FinalScore,
		Winner:          winner,
		Criteria:        criteria,
	}, nil
}

// Statistics computes board aggregates on demand.
func (b *Board) Statistics() Statistics {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := Statistics{VerdictCounts: make(map[string]int)}
	if len(b.entries) == 0 {
		return stats
	}

	stats.TotalProjects = len(b.entries)
	stats.HighestScore = b.entries[0].FinalScore
	stats.LowestScore = b.entries[0].FinalScore

	sum := 0.0
	for _, e := range b.entries {
		sum += e.FinalScore
		if e.FinalScore > stats.HighestScore {
			stats.HighestScore = e.FinalScore
		}
		if e.FinalScore < stats.LowestScore {
			stats.LowestScore = e.FinalScore
		}
		stats.VerdictCounts[config.VerdictFor(e.FinalScore).Key]++
	}

	stats.AverageScore = round1(sum / float64(len(b.entries)))
	stats.ScoreRange = stats.HighestScore - stats.LowestScore
	return stats
}

// Remove drops the first entry matching title (case-insensitive) and
// persists. Returns false when no entry matched.
func (b *Board) Remove(title string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.entries {
		if strings.EqualFold(e.ProjectTitle, title) {
			removed := e
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			if err := b.store.Save(b.entries); err != nil {
				// Restore on persist failure.
				b.entries = append(b.entries[:i], append([]Entry{removed}, b.entries[i:]...)...)
				return false, fmt.Errorf("failed to persist leaderboard: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}

// Clear drops everything and persists the empty board.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.entries
	b.entries = nil
	if err := b.store.Save(b.entries); err != nil {
		b.entries = old
		return fmt.Errorf("failed to persist leaderboard: %w", err)
	}
	slog.Info("Leaderboard cleared", "removed", len(old))
	return nil
}

// Size returns the number of entries.
func (b *Board) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// sortedLocked returns a copy ordered by (final desc, raw desc, insertion).
// Callers must hold b.mu.
func (b *Board) sortedLocked() []Entry {
	sorted := make([]Entry, len(b.entries))
	copy(sorted, b.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FinalScore != sorted[j].FinalScore {
			return sorted[i].FinalScore > sorted[j].FinalScore
		}
		return sorted[i].RawScore > sorted[j].RawScore
	})
	return sorted
}

// findLocked returns the first entry whose title matches, or nil.
func (b *Board) findLocked(title string) *Entry {
	for i := range b.entries {
		if strings.EqualFold(b.entries[i].ProjectTitle, title) {
			return &b.entries[i]
		}
	}
	return nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
