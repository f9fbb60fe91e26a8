package scoring

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/types"
)

func seededGenerator(seed int64) *FeedbackGenerator {
	return NewFeedbackGenerator(config.DefaultTemplates(), rand.New(rand.NewSource(seed)))
}

// scoreWith builds a Score with every criterion at value and the rest of the
// numeric fields set explicitly.
func scoreWith(title string, criterionValue, finalScore float64) *types.Score {
	criteria := make(map[string]types.CriterionScore, len(config.CriterionOrder))
	for _, key := range config.CriterionOrder {
		criteria[key] = types.CriterionScore{
			Score:       criterionValue,
			Explanation: "Steady performance across the reviewed signals",
		}
	}
	return &types.Score{
		ProjectTitle: title,
		Criteria:     criteria,
		RawScore:     finalScore,
		FinalScore:   finalScore,
	}
}

func TestGenerateIsDeterministicWithSeed(t *testing.T) {
	p := baseProject()
	engine := newTestEngine()

	first := engine.Evaluate(p)
	seededGenerator(42).Generate(p, &first)

	second := engine.Evaluate(p)
	seededGenerator(42).Generate(p, &second)

	assert.Equal(t, first, second)
}

func TestGenerateVerdictTiers(t *testing.T) {
	tests := []struct {
		name       string
		finalScore float64
		verdict    string
		emoji      string
	}{
		{"winner at 85", 85, "Winner Material", "🏆"},
		{"winner above 85", 92.3, "Winner Material", "🏆"},
		{"strong at 70", 70, "Strong Contender", "✅"},
		{"strong below 85", 84.9, "Strong Contender", "✅"},
		{"average at 50", 50, "Average", "⚠️"},
		{"not ready below 50", 49.9, "Not Hackathon Ready", "❌"},
		{"not ready at zero", 0, "Not Hackathon Ready", "❌"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scoreWith("Tier Probe", 75, tt.finalScore)
			seededGenerator(1).Generate(baseProject(), score)

			assert.Equal(t, tt.verdict, score.Verdict)
			assert.Equal(t, tt.emoji, score.VerdictEmoji)
			assert.NotEmpty(t, score.VerdictExplanation)
		})
	}
}

func TestStrengths(t *testing.T) {
	t.Run("high criteria become strength lines", func(t *testing.T) {
		score := scoreWith("Strong Project", 90, 88)
		seededGenerator(1).Generate(baseProject(), score)

		require.NotEmpty(t, score.Strengths)
		assert.Contains(t, score.Strengths[0], "Outstanding")
		assert.LessOrEqual(t, len(score.Strengths), maxFeedbackItems)
	})

	t.Run("clean submission is acknowledged", func(t *testing.T) {
		score := scoreWith("Clean Project", 75, 72)
		score.TotalPenalty = 0
		seededGenerator(1).Generate(baseProject(), score)

		assert.True(t, containsSubstring(score.Strengths, "Clean Submission"))
	})

	t.Run("demo link is acknowledged", func(t *testing.T) {
		p := baseProject()
		p.DemoLink = "https://demo.example.org"

		score := scoreWith("Demo Project", 75, 72)
		seededGenerator(1).Generate(p, score)

		assert.True(t, containsSubstring(score.Strengths, "Working Demo Available"))
	})

	t.Run("weak submission still gets its best criterion", func(t *testing.T) {
		score := scoreWith("Weak Project", 30, 25)
		score.TotalPenalty = 12
		seededGenerator(1).Generate(baseProject(), score)

		require.Len(t, score.Strengths, 1)
		assert.Contains(t, score.Strengths[0], "📌")
	})
}

func TestWeaknesses(t *testing.T) {
	t.Run("low criteria become weakness lines", func(t *testing.T) {
		score := scoreWith("Weak Project", 35, 30)
		seededGenerator(1).Generate(baseProject(), score)

		require.NotEmpty(t, score.Weaknesses)
		assert.Contains(t, score.Weaknesses[0], "Critical Gap")
		assert.LessOrEqual(t, len(score.Weaknesses), maxFeedbackItems)
	})

	t.Run("borderline criteria get the softer label", func(t *testing.T) {
		score := scoreWith("Borderline Project", 55, 52)
		seededGenerator(1).Generate(baseProject(), score)

		require.NotEmpty(t, score.Weaknesses)
		assert.Contains(t, score.Weaknesses[0], "Needs Work")
	})

	t.Run("penalties surface as weaknesses", func(t *testing.T) {
		score := scoreWith("Penalized Project", 80, 62)
		score.BuzzwordPenalty = 8
		score.VaguenessPenalty = 4
		score.OverclaimPenalty = 6
		score.AIGeneratedPenalty = 5
		score.TotalPenalty = 23
		seededGenerator(1).Generate(baseProject(), score)

		assert.True(t, containsSubstring(score.Weaknesses, "Buzzword Overload"))
		assert.True(t, containsSubstring(score.Weaknesses, "Vague Descriptions"))
		assert.True(t, containsSubstring(score.Weaknesses, "Overclaiming"))
		assert.True(t, containsSubstring(score.Weaknesses, "Generic Writing Style"))
	})

	t.Run("missing demo is flagged below eighty", func(t *testing.T) {
		score := scoreWith("No Demo Project", 75, 72)
		seededGenerator(1).Generate(baseProject(), score)

		assert.True(t, containsSubstring(score.Weaknesses, "No Demo"))
	})
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		finalScore float64
		expect     string
	}{
		{"low scores get fundamentals", 40, "Focus on One Thing"},
		{"mid scores get evidence advice", 60, "Add Evidence"},
		{"high scores get polish advice", 75, "Go Deep on Uniqueness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scoreWith("Suggestion Probe", 65, tt.finalScore)
			seededGenerator(1).Generate(baseProject(), score)

			assert.True(t, containsSubstring(score.Suggestions, tt.expect))
			assert.LessOrEqual(t, len(score.Suggestions), maxFeedbackItems)
		})
	}
}

func TestCompare(t *testing.T) {
	gen := seededGenerator(1)

	t.Run("commanding lead", func(t *testing.T) {
		winner := scoreWith("Alpha", 90, 88)
		runnerUp := scoreWith("Beta", 60, 58)

		result := gen.Compare(winner, runnerUp)
		assert.Contains(t, result, "Alpha")
		assert.Contains(t, result, "commanding")
	})

	t.Run("solid win", func(t *testing.T) {
		winner := scoreWith("Alpha", 80, 72)
		runnerUp := scoreWith("Beta", 70, 62)

		result := gen.Compare(winner, runnerUp)
		assert.Contains(t, result, "secures the win")
	})

	t.Run("close race", func(t *testing.T) {
		winner := scoreWith("Alpha", 78, 71)
		runnerUp := scoreWith("Beta", 70, 68)

		result := gen.Compare(winner, runnerUp)
		assert.Contains(t, result, "close race")
	})

	t.Run("no standout criterion", func(t *testing.T) {
		winner := scoreWith("Alpha", 72, 71)
		runnerUp := scoreWith("Beta", 70, 69)

		result := gen.Compare(winner, runnerUp)
		assert.Contains(t, result, "consistent performance")
	})
}

func containsSubstring(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
