// Package config defines service configuration: runtime knobs for the HTTP
// server and leaderboard store, plus the static scoring tables (criterion
// weights, penalty constants, verdict thresholds, complexity tiers) and the
// lexicon lists consumed by the scoring engine and text analyzer.
//
// Everything here is loaded once at startup and treated as immutable
// afterwards; components receive it by value or pointer at construction.
package config

import (
	"fmt"
)

// Store backends for the leaderboard.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is where the sqlite database lives.
	DataDir string `koanf:"data_dir"`

	// StoreBackend selects leaderboard persistence: "json" or "sqlite".
	StoreBackend string `koanf:"store_backend"`

	// LeaderboardPath is the JSON store file (json backend only).
	LeaderboardPath string `koanf:"leaderboard_path"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// IPLimitPerMin is the per-IP request budget per minute.
	IPLimitPerMin int `koanf:"ip_limit_per_min"`

	// BurstMultiplier scales rate limiter burst capacity.
	BurstMultiplier int `koanf:"burst_multiplier"`

	// RandomSeed pins verdict/detail template selection when non-zero.
	RandomSeed int64 `koanf:"random_seed"`

	// Scoring holds the weighted-criteria configuration.
	Scoring Scoring `koanf:"scoring"`
}

// Scoring holds the numeric scoring configuration. The weights must cover
// every criterion and sum to exactly 100; Validate enforces this once at
// load so the engine never re-checks per call.
type Scoring struct {
	// Weights maps criterion key to integer percentage.
	Weights map[string]int `koanf:"weights"`

	// MaxBuzzwordDensity is allowed buzzwords per 100 words before penalty.
	MaxBuzzwordDensity float64 `koanf:"max_buzzword_density"`

	// BuzzwordPenaltyRate is points per excess density unit.
	BuzzwordPenaltyRate float64 `koanf:"buzzword_penalty_rate"`

	// VaguenessPenaltyRate is points per vague phrase beyond the free allowance.
	VaguenessPenaltyRate float64 `koanf:"vagueness_penalty_rate"`

	// OverclaimPenaltyRate is points per overclaim phrase.
	OverclaimPenaltyRate float64 `koanf:"overclaim_penalty_rate"`

	// AIGeneratedPenalty is the flat deduction for templated writing.
	AIGeneratedPenalty float64 `koanf:"ai_generated_penalty"`

	// MaxTotalPenalty caps the summed deductions.
	MaxTotalPenalty float64 `koanf:"max_total_penalty"`
}

// Criterion keys, in display order.
const (
	CriterionInnovation      = "innovation"
	CriterionTechnicalDepth  = "technical_depth"
	CriterionRelevance       = "problem_relevance"
	CriterionFeasibility     = "feasibility"
	CriterionScalability     = "scalability"
	CriterionUIUX            = "ui_ux"
	CriterionRealWorldImpact = "real_world_impact"
)

// CriterionOrder is the canonical ordering used in reports and comparisons.
var CriterionOrder = []string{
	CriterionInnovation,
	CriterionTechnicalDepth,
	CriterionRelevance,
	CriterionFeasibility,
	CriterionScalability,
	CriterionUIUX,
	CriterionRealWorldImpact,
}

// CriterionNames maps criterion keys to judge-facing display names.
var CriterionNames = map[string]string{
	CriterionInnovation:      "Innovation & Originality",
	CriterionTechnicalDepth:  "Technical Depth",
	CriterionRelevance:       "Problem Relevance",
	CriterionFeasibility:     "Feasibility",
	CriterionScalability:     "Scalability",
	CriterionUIUX:            "UI/UX & Presentation",
	CriterionRealWorldImpact: "Real-World Impact",
}

// CriterionIcons maps criterion keys to their report glyphs.
var CriterionIcons = map[string]string{
	CriterionInnovation:      "💡",
	CriterionTechnicalDepth:  "⚙️",
	CriterionRelevance:       "🎯",
	CriterionFeasibility:     "🔧",
	CriterionScalability:     "📈",
	CriterionUIUX:            "🎨",
	CriterionRealWorldImpact: "🌍",
}

// Complexity tiers and their score multipliers. Beginners get a slight
// boost; advanced teams carry slightly higher expectations.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// ComplexityMultipliers maps tier to final-score multiplier.
var ComplexityMultipliers = map[string]float64{
	ComplexityBeginner:     1.10,
	ComplexityIntermediate: 1.00,
	ComplexityAdvanced:     0.95,
}

// Verdict tiers, highest first. MinScore is inclusive.
type VerdictTier struct {
	Key      string
	MinScore float64
	Verdict  string
	Emoji    string
}

// VerdictTiers holds the four verdict bands in descending score order.
var VerdictTiers = []VerdictTier{
	{Key: "winner", MinScore: 85, Verdict: "Winner Material", Emoji: "🏆"},
	{Key: "strong", MinScore: 70, Verdict: "Strong Contender", Emoji: "✅"},
	{Key: "average", MinScore: 50, Verdict: "Average", Emoji: "⚠️"},
	{Key: "not_ready", MinScore: 0, Verdict: "Not Hackathon Ready", Emoji: "❌"},
}

// VerdictFor returns the tier matching a final score.
func VerdictFor(finalScore float64) VerdictTier {
	for _, tier := range VerdictTiers {
		if finalScore >= tier.MinScore {
			return tier
		}
	}
	return VerdictTiers[len(VerdictTiers)-1]
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		DataDir:             "./data",
		StoreBackend:        StoreJSON,
		LeaderboardPath:     "./data/leaderboard.json",
		MaxLeaderboardLimit: 100,
		IPLimitPerMin:       60,
		BurstMultiplier:     2,
		Scoring:             DefaultScoring(),
	}
}

// DefaultScoring returns the reference scoring configuration.
func DefaultScoring() Scoring {
	return Scoring{
		Weights: map[string]int{
			CriterionInnovation:      25,
			CriterionTechnicalDepth:  20,
			CriterionRelevance:       15,
			CriterionFeasibility:     15,
			CriterionScalability:     10,
			CriterionUIUX:            10,
			CriterionRealWorldImpact: 5,
		},
		MaxBuzzwordDensity:   5.0,
		BuzzwordPenaltyRate:  2.0,
		VaguenessPenaltyRate: 1.5,
		OverclaimPenaltyRate: 3.0,
		AIGeneratedPenalty:   5.0,
		MaxTotalPenalty:      30,
	}
}

// Validate checks invariants that must hold before the engine is built.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.StoreBackend != StoreJSON && c.StoreBackend != StoreSQLite {
		return fmt.Errorf("store_backend must be %q or %q, got %q", StoreJSON, StoreSQLite, c.StoreBackend)
	}
	return c.Scoring.Validate()
}

// Validate checks that the weight table covers all criteria and sums to 100.
func (s Scoring) Validate() error {
	sum := 0
	for _, key := range CriterionOrder {
		w, ok := s.Weights[key]
		if !ok {
			return fmt.Errorf("missing weight for criterion %q", key)
		}
		if w < 0 {
			return fmt.Errorf("negative weight for criterion %q", key)
		}
		sum += w
	}
	if len(s.Weights) != len(CriterionOrder) {
		return fmt.Errorf("weights must contain exactly %d criteria, got %d", len(CriterionOrder), len(s.Weights))
	}
	if sum != 100 {
		return fmt.Errorf("criterion weights must sum to 100, got %d", sum)
	}
	if s.MaxTotalPenalty <= 0 {
		return fmt.Errorf("max_total_penalty must be positive")
	}
	return nil
}
