package textstats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "lowercases and strips punctuation",
			input:    "The API-driven System uses Caching!",
			expected: []string{"api", "driven", "system", "uses", "caching"},
		},
		{
			name:     "drops stop words and short tokens",
			input:    "it is an ML ops job",
			expected: []string{"ops", "job"},
		},
		{
			name:     "keeps digits and underscores",
			input:    "phase_1 supports utf8 output",
			expected: []string{"phase_1", "supports", "utf8", "output"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := a.Tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestSplitSentences(t *testing.T) {
	a := NewAnalyzer()

	sentences := a.SplitSentences("First one. Second one! Third one? ")
	assert.Equal(t, []string{"First one", "Second one", "Third one"}, sentences)

	assert.Empty(t, a.SplitSentences("..."))
	assert.Empty(t, a.SplitSentences(""))
}

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer()

	t.Run("empty text uses neutral readability", func(t *testing.T) {
		stats := a.Analyze("")

		assert.Zero(t, stats.WordCount)
		assert.Zero(t, stats.SentenceCount)
		assert.Equal(t, 50.0, stats.ReadabilityScore)
		assert.Empty(t, stats.KeyConcepts)
	})

	t.Run("technical text scores higher substance than filler", func(t *testing.T) {
		technical := strings.Repeat("The backend service exposes a rest api with caching and database indexing for performance. ", 12)
		filler := strings.Repeat("Nice thing. Good thing. Fine thing. ", 12)

		techStats := a.Analyze(technical)
		fillerStats := a.Analyze(filler)

		assert.Greater(t, techStats.SubstanceScore, fillerStats.SubstanceScore)
		assert.Greater(t, techStats.TechnicalRatio, fillerStats.TechnicalRatio)
	})

	t.Run("bounds hold for arbitrary text", func(t *testing.T) {
		stats := a.Analyze("One short line without anything special going on today.")

		assert.GreaterOrEqual(t, stats.SubstanceScore, 0.0)
		assert.LessOrEqual(t, stats.SubstanceScore, 100.0)
		assert.GreaterOrEqual(t, stats.ReadabilityScore, 0.0)
		assert.LessOrEqual(t, stats.ReadabilityScore, 100.0)
		assert.GreaterOrEqual(t, stats.VocabularyRichness, 0.0)
		assert.LessOrEqual(t, stats.VocabularyRichness, 1.0)
	})
}

func TestKeyConcepts(t *testing.T) {
	a := NewAnalyzer()

	t.Run("repeated and technical terms qualify", func(t *testing.T) {
		stats := a.Analyze("The scheduler assigns rooms. The scheduler checks the database once.")

		// "scheduler" repeats, "database" is technical, "rooms"/"assigns"/
		// "checks"/"once" appear once and are not technical.
		require.Len(t, stats.KeyConcepts, 2)
		assert.Equal(t, "scheduler", stats.KeyConcepts[0])
		assert.Equal(t, "database", stats.KeyConcepts[1])
	})

	t.Run("ordered by frequency then first appearance", func(t *testing.T) {
		stats := a.Analyze("alpha beta alpha beta alpha gamma gamma")

		assert.Equal(t, []string{"alpha", "beta", "gamma"}, stats.KeyConcepts)
	})

	t.Run("capped at ten", func(t *testing.T) {
		var b strings.Builder
		for _, w := range []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg", "hhh", "iii", "jjj", "kkk", "lll"} {
			b.WriteString(w + " " + w + " ")
		}

		stats := a.Analyze(b.String())
		assert.Len(t, stats.KeyConcepts, 10)
	})
}

func TestCheckCoherence(t *testing.T) {
	a := NewAnalyzer()

	t.Run("identical sections are fully coherent", func(t *testing.T) {
		text := "parking drivers spots downtown congestion"
		c := a.CheckCoherence(text, text, text)

		assert.Equal(t, 100.0, c.ProblemSolution)
		assert.Equal(t, 100.0, c.SolutionInnovation)
		assert.Equal(t, 100.0, c.Overall)
		assert.True(t, c.IsCoherent)
		assert.Equal(t, []string{"congestion", "downtown", "drivers", "parking", "spots"}, c.SharedConcepts)
	})

	t.Run("disjoint sections are incoherent", func(t *testing.T) {
		c := a.CheckCoherence(
			"parking drivers spots",
			"recipes cooking dinner",
			"gardening flowers soil",
		)

		assert.Zero(t, c.Overall)
		assert.False(t, c.IsCoherent)
		assert.Empty(t, c.SharedConcepts)
	})

	t.Run("empty sections yield zero without error", func(t *testing.T) {
		c := a.CheckCoherence("", "", "")

		assert.Zero(t, c.Overall)
		assert.False(t, c.IsCoherent)
	})

	t.Run("shared concepts are capped at five and sorted", func(t *testing.T) {
		text := "zebra yak wolf viper toad snake rabbit"
		c := a.CheckCoherence(text, text, text)

		assert.Equal(t, []string{"rabbit", "snake", "toad", "viper", "wolf"}, c.SharedConcepts)
	})
}

func TestDetectCopyPaste(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name             string
		input            string
		placeholders     int
		templates        int
		score            int
		isLikelyTemplate bool
	}{
		{
			name:  "clean text",
			input: "A scheduling tool for campus rooms built during the event.",
		},
		{
			name:             "placeholders weigh heavily",
			input:            "[Insert description] TODO finish this section, see example.com",
			placeholders:     3,
			score:            60,
			isLikelyTemplate: true,
		},
		{
			name:      "template marketing copy",
			input:     "Our innovative solution uses cutting-edge technology to revolutionize the industry.",
			templates: 3,
			score:     30,
		},
		{
			name:             "score caps at one hundred",
			input:            "[insert [your [project name] lorem ipsum xxx todo tbd placeholder",
			placeholders:     8,
			score:            100,
			isLikelyTemplate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.DetectCopyPaste(tt.input)

			assert.Equal(t, tt.placeholders, result.PlaceholderCount)
			assert.Equal(t, tt.templates, result.TemplatePhraseCount)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.isLikelyTemplate, result.IsLikelyTemplate)
		})
	}
}

func TestAnalyzeTechStack(t *testing.T) {
	a := NewAnalyzer()

	t.Run("full stack with database and ml", func(t *testing.T) {
		result := a.AnalyzeTechStack("React, FastAPI, PostgreSQL, PyTorch, AWS")

		assert.True(t, result.IsFullStack)
		assert.True(t, result.HasDatabase)
		assert.True(t, result.HasML)
		assert.Equal(t, 5, result.CategoryCount)
		assert.Equal(t, 5, result.TotalCount)
		assert.Equal(t, 100, result.DepthScore)
	})

	t.Run("narrow stack", func(t *testing.T) {
		result := a.AnalyzeTechStack("Flask")

		assert.False(t, result.IsFullStack)
		assert.False(t, result.HasDatabase)
		assert.Equal(t, 1, result.CategoryCount)
		assert.Equal(t, 25, result.DepthScore)
	})

	t.Run("unknown stack detects nothing", func(t *testing.T) {
		result := a.AnalyzeTechStack("COBOL, Fortran")

		assert.Zero(t, result.TotalCount)
		assert.Zero(t, result.DepthScore)
		assert.Empty(t, result.Detected)
	})
}

func TestStatistics(t *testing.T) {
	stats := Statistics("Two sentences here. Short ones!")

	assert.Equal(t, 5, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.Equal(t, 1, stats.ParagraphCount)
	assert.Positive(t, stats.AvgWordLength)
}
