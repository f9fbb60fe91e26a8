package leaderboard

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/types"
)

// memStore is an in-memory Store for board tests.
type memStore struct {
	entries []Entry
	failing bool
	saves   int
}

func (m *memStore) Load() ([]Entry, error) {
	return m.entries, nil
}

func (m *memStore) Save(entries []Entry) error {
	if m.failing {
		return fmt.Errorf("store unavailable")
	}
	m.entries = append([]Entry(nil), entries...)
	m.saves++
	return nil
}

func newTestBoard(t *testing.T) (*Board, *memStore) {
	t.Helper()
	store := &memStore{}
	board, err := New(store)
	require.NoError(t, err)
	return board, store
}

// testScore builds a finalized score with uniform criterion values.
func testScore(title string, criterionValue, finalScore float64) *types.Score {
	criteria := make(map[string]types.CriterionScore, len(config.CriterionOrder))
	for _, key := range config.CriterionOrder {
		criteria[key] = types.CriterionScore{Score: criterionValue, Explanation: "steady"}
	}
	tier := config.VerdictFor(finalScore)
	return &types.Score{
		ProjectTitle: title,
		Criteria:     criteria,
		RawScore:     finalScore,
		FinalScore:   finalScore,
		Verdict:      tier.Verdict,
		VerdictEmoji: tier.Emoji,
	}
}

func TestAddReturnsRank(t *testing.T) {
	board, store := newTestBoard(t)

	rank, err := board.Add(testScore("First", 70, 72))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = board.Add(testScore("Better", 85, 88))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = board.Add(testScore("Worse", 40, 45))
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	assert.Equal(t, 3, board.Size())
	assert.Equal(t, 3, store.saves)
}

func TestAddRollsBackOnStoreFailure(t *testing.T) {
	board, store := newTestBoard(t)
	store.failing = true

	_, err := board.Add(testScore("Doomed", 70, 72))
	assert.Error(t, err)
	assert.Zero(t, board.Size())
}

func TestRankingsOrdering(t *testing.T) {
	board, _ := newTestBoard(t)

	_, err := board.Add(testScore("Middling", 60, 60))
	require.NoError(t, err)
	_, err = board.Add(testScore("Top", 90, 90))
	require.NoError(t, err)
	_, err = board.Add(testScore("Bottom", 30, 30))
	require.NoError(t, err)

	ranked := board.Rankings(0)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Top", ranked[0].ProjectTitle)
	assert.Equal(t, "Middling", ranked[1].ProjectTitle)
	assert.Equal(t, "Bottom", ranked[2].ProjectTitle)

	for i, e := range ranked {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, i < 3, e.IsTop3)
	}
}

func TestRankingsTieBreaks(t *testing.T) {
	board, _ := newTestBoard(t)

	// Same final score, higher raw wins.
	higherRaw := testScore("Higher Raw", 70, 70)
	higherRaw.RawScore = 75
	lowerRaw := testScore("Lower Raw", 70, 70)
	lowerRaw.RawScore = 72

	_, err := board.Add(lowerRaw)
	require.NoError(t, err)
	_, err = board.Add(higherRaw)
	require.NoError(t, err)

	// Fully tied entries keep insertion order.
	_, err = board.Add(testScore("Tied First", 50, 50))
	require.NoError(t, err)
	_, err = board.Add(testScore("Tied Second", 50, 50))
	require.NoError(t, err)

	ranked := board.Rankings(0)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Higher Raw", ranked[0].ProjectTitle)
	assert.Equal(t, "Lower Raw", ranked[1].ProjectTitle)
	assert.Equal(t, "Tied First", ranked[2].ProjectTitle)
	assert.Equal(t, "Tied Second", ranked[3].ProjectTitle)
}

func TestRankingsLimit(t *testing.T) {
	board, _ := newTestBoard(t)
	for i := 0; i < 5; i++ {
		_, err := board.Add(testScore(fmt.Sprintf("Project %d", i), 50, float64(50+i)))
		require.NoError(t, err)
	}

	assert.Len(t, board.Rankings(2), 2)
	assert.Len(t, board.Rankings(0), 5)
	assert.Len(t, board.Rankings(10), 5)
}

func TestExplainWinner(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		board, _ := newTestBoard(t)
		assert.Equal(t, "No projects submitted yet.", board.ExplainWinner())
	})

	t.Run("single entry", func(t *testing.T) {
		board, _ := newTestBoard(t)
		_, err := board.Add(testScore("Solo", 70, 72))
		require.NoError(t, err)

		explanation := board.ExplainWinner()
		assert.Contains(t, explanation, "Solo")
		assert.Contains(t, explanation, "only submission")
	})

	t.Run("dominating lead", func(t *testing.T) {
		board, _ := newTestBoard(t)
		_, err := board.Add(testScore("Champion", 90, 88))
		require.NoError(t, err)
		_, err = board.Add(testScore("Distant Second", 55, 60))
		require.NoError(t, err)

		explanation := board.ExplainWinner()
		assert.Contains(t, explanation, "Champion")
		assert.Contains(t, explanation, "dominating")
		assert.Contains(t, explanation, "Key advantages")
	})

	t.Run("narrow lead", func(t *testing.T) {
		board, _ := newTestBoard(t)
		_, err := board.Add(testScore("Leader", 72, 71))
		require.NoError(t, err)
		_, err = board.Add(testScore("Chaser", 70, 69))
		require.NoError(t, err)

		assert.Contains(t, board.ExplainWinner(), "narrow")
	})

	t.Run("cleaner submission noted", func(t *testing.T) {
		board, _ := newTestBoard(t)

		clean := testScore("Clean", 80, 78)
		clean.TotalPenalty = 0
		_, err := board.Add(clean)
		require.NoError(t, err)

		penalized := testScore("Penalized", 75, 65)
		penalized.TotalPenalty = 12
		_, err = board.Add(penalized)
		require.NoError(t, err)

		assert.Contains(t, board.ExplainWinner(), "fewer deductions")
	})
}

func TestCompare(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.Add(testScore("Alpha", 80, 82))
	require.NoError(t, err)
	_, err = board.Add(testScore("Beta", 60, 61))
	require.NoError(t, err)

	t.Run("head to head", func(t *testing.T) {
		comparison, err := board.Compare("alpha", "BETA")
		require.NoError(t, err)

		assert.Equal(t, "Alpha", comparison.Winner)
		assert.InDelta(t, 21.0, comparison.ScoreDifference, 1e-9)
		assert.Len(t, comparison.Criteria, len(config.CriterionOrder))

		contrast := comparison.Criteria[config.CriterionNames[config.CriterionInnovation]]
		assert.Equal(t, 80.0, contrast.Project1)
		assert.Equal(t, 60.0, contrast.Project2)
		assert.Equal(t, 20.0, contrast.Difference)
	})

	t.Run("unknown title", func(t *testing.T) {
		_, err := board.Compare("Alpha", "Ghost")
		assert.Error(t, err)
	})
}

func TestStatistics(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		board, _ := newTestBoard(t)
		stats := board.Statistics()

		assert.Zero(t, stats.TotalProjects)
		assert.Empty(t, stats.VerdictCounts)
	})

	t.Run("aggregates", func(t *testing.T) {
		board, _ := newTestBoard(t)
		for _, s := range []struct {
			title string
			final float64
		}{
			{"Winner", 90},
			{"Strong", 75},
			{"Mid", 55},
			{"Low", 30},
		} {
			_, err := board.Add(testScore(s.title, s.final, s.final))
			require.NoError(t, err)
		}

		stats := board.Statistics()
		assert.Equal(t, 4, stats.TotalProjects)
		assert.Equal(t, 90.0, stats.HighestScore)
		assert.Equal(t, 30.0, stats.LowestScore)
		assert.Equal(t, 60.0, stats.ScoreRange)
		assert.Equal(t, 62.5, stats.AverageScore)
		assert.Equal(t, 1, stats.VerdictCounts["winner"])
		assert.Equal(t, 1, stats.VerdictCounts["strong"])
		assert.Equal(t, 1, stats.VerdictCounts["average"])
		assert.Equal(t, 1, stats.VerdictCounts["not_ready"])
	})
}

func TestRemoveAndClear(t *testing.T) {
	board, _ := newTestBoard(t)
	_, err := board.Add(testScore("Keeper", 70, 72))
	require.NoError(t, err)
	_, err = board.Add(testScore("Goner", 50, 52))
	require.NoError(t, err)

	removed, err := board.Remove("goner")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, board.Size())

	removed, err = board.Remove("Ghost")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, board.Clear())
	assert.Zero(t, board.Size())
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leaderboard.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	board, err := New(store)
	require.NoError(t, err)
	_, err = board.Add(testScore("Persisted", 80, 82))
	require.NoError(t, err)
	_, err = board.Add(testScore("Also Persisted", 60, 61))
	require.NoError(t, err)

	// A fresh store against the same file sees the same entries.
	reloadedStore, err := NewJSONStore(path)
	require.NoError(t, err)
	reloaded, err := New(reloadedStore)
	require.NoError(t, err)

	assert.Equal(t, 2, reloaded.Size())
	ranked := reloaded.Rankings(0)
	assert.Equal(t, "Persisted", ranked[0].ProjectTitle)
	assert.Equal(t, 82.0, ranked[0].FinalScore)
	assert.NotEmpty(t, ranked[0].ID)
	assert.False(t, ranked[0].SubmittedAt.IsZero())
}

func TestJSONStoreMissingFile(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
