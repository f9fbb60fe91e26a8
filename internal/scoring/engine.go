// Package scoring implements the judging pipeline: the weighted-criteria
// scoring engine and the judge-style feedback generator that runs on its
// output.
//
// The engine is a pure function of the project record and the configuration
// it was built with. All phrase matching is case-insensitive substring
// containment against the lexicon lists, not word-boundary matching; a short
// phrase embedded inside a longer word still counts. That is a known
// precision trade-off kept for parity with the scoring corpus.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/types"
)

// Per-penalty caps. The summed total is further capped by
// Scoring.MaxTotalPenalty.
const (
	maxBuzzwordPenalty  = 15.0
	maxVaguenessPenalty = 10.0
	maxOverclaimPenalty = 15.0

	// vaguenessFreeAllowance is how many vague phrases go unpunished.
	vaguenessFreeAllowance = 3

	// aiPatternThreshold is deliberately high to avoid false positives.
	aiPatternThreshold = 5
)

var (
	statisticsPattern = regexp.MustCompile(`\d+%|\d+ million|\d+ billion|\d+ users`)
	quantifiedPattern = regexp.MustCompile(`\d+%\s*(faster|better|cheaper|reduction|improvement)`)
)

// Engine scores hackathon projects across seven weighted criteria with
// penalties for buzzword stuffing, vagueness, overclaiming, and templated
// writing. Safe for concurrent use.
type Engine struct {
	cfg config.Scoring
	lex *config.Lexicon
}

// NewEngine builds an engine. The weight table is assumed validated
// (config.Scoring.Validate) before construction.
func NewEngine(cfg config.Scoring, lex *config.Lexicon) *Engine {
	return &Engine{cfg: cfg, lex: lex}
}

// Evaluate scores a validated project. It never fails: every computation is
// clamped and every denominator floored, so any well-formed record produces
// a result. Feedback fields are left empty for the generator to fill.
func (e *Engine) Evaluate(p types.Project) types.Score {
	fullText := strings.ToLower(p.AllText())
	wordCount := p.WordCount()

	criteria := map[string]types.CriterionScore{
		config.CriterionInnovation:      e.scoreInnovation(p, fullText),
		config.CriterionTechnicalDepth:  e.scoreTechnicalDepth(p, fullText),
		config.CriterionRelevance:       e.scoreProblemRelevance(p, fullText),
		config.CriterionFeasibility:     e.scoreFeasibility(p, fullText),
		config.CriterionScalability:     e.scoreScalability(p),
		config.CriterionUIUX:            e.scoreUIUX(p, fullText),
		config.CriterionRealWorldImpact: e.scoreRealWorldImpact(p, fullText),
	}

	buzzword := e.buzzwordPenalty(fullText, wordCount)
	vagueness := e.vaguenessPenalty(fullText)
	overclaim := e.overclaimPenalty(fullText)
	aiGenerated := e.aiGeneratedPenalty(fullText)
	totalPenalty := math.Min(e.cfg.MaxTotalPenalty, buzzword+vagueness+overclaim+aiGenerated)

	raw := 0.0
	for key, cs := range criteria {
		raw += cs.Score * float64(e.cfg.Weights[key]) / 100
	}

	tier := e.complexityTier(p)
	final := clamp(raw*config.ComplexityMultipliers[tier]-totalPenalty, 0, 100)

	return types.Score{
		ProjectTitle:       p.Title,
		Criteria:           criteria,
		BuzzwordPenalty:    buzzword,
		VaguenessPenalty:   vagueness,
		OverclaimPenalty:   overclaim,
		AIGeneratedPenalty: aiGenerated,
		TotalPenalty:       totalPenalty,
		ComplexityTier:     tier,
		RawScore:           round1(raw),
		FinalScore:         round1(final),
	}
}

// complexityTier classifies by team size and tech-stack breadth. Tech items
// are comma-separated; a single unseparated stack counts as one item.
func (e *Engine) complexityTier(p types.Project) string {
	techCount := len(strings.Split(p.TechStack, ","))

	switch {
	case p.TeamSize <= 2 && techCount <= 3:
		return config.ComplexityBeginner
	case p.TeamSize >= 4 || techCount >= 6:
		return config.ComplexityAdvanced
	default:
		return config.ComplexityIntermediate
	}
}

func (e *Engine) scoreInnovation(p types.Project, fullText string) types.CriterionScore {
	score := 50.0
	var reasons []string

	switch n := countMatches(fullText, e.lex.InnovationSignals); {
	case n >= 3:
		score += 25
		reasons = append(reasons, "Strong innovation signals detected")
	case n >= 1:
		score += 15
		reasons = append(reasons, "Some innovative elements present")
	}

	innovation := strings.ToLower(p.InnovationDescription)
	if len(strings.Fields(innovation)) >= 50 {
		score += 10
		reasons = append(reasons, "Detailed innovation explanation")
	}

	if countMatches(innovation, e.lex.Differentiators) >= 2 {
		score += 10
		reasons = append(reasons, "Clear differentiation from existing solutions")
	}

	if countMatches(innovation, e.lex.GenericInnovation) >= 2 {
		score -= 15
		reasons = append(reasons, "Innovation description is too generic")
	}

	return finish(score, reasons, "Average innovation level")
}

func (e *Engine) scoreTechnicalDepth(p types.Project, fullText string) types.CriterionScore {
	score := 40.0
	var reasons []string

	switch n := countMatches(fullText, e.lex.TechnicalSignals); {
	case n >= 10:
		score += 35
		reasons = append(reasons, "Excellent technical depth with specific implementation details")
	case n >= 5:
		score += 25
		reasons = append(reasons, "Good technical vocabulary and understanding")
	case n >= 2:
		score += 10
		reasons = append(reasons, "Basic technical concepts mentioned")
	default:
		reasons = append(reasons, "Lacks technical specificity")
	}

	techStack := strings.ToLower(p.TechStack)
	categories := 0
	for _, techs := range e.lex.TechCategories {
		if countMatches(techStack, techs) > 0 {
			categories++
		}
	}
	switch {
	case categories >= 4:
		score += 15
		reasons = append(reasons, "Well-rounded tech stack covering multiple domains")
	case categories >= 2:
		score += 8
		reasons = append(reasons, "Reasonable tech stack variety")
	}

	solution := strings.ToLower(p.SolutionDescription)
	if strings.Contains(solution, "architecture") || strings.Contains(solution, "system design") {
		score += 5
		reasons = append(reasons, "Discusses system architecture")
	}
	if strings.Contains(solution, "api") || strings.Contains(solution, "database") {
		score += 5
		reasons = append(reasons, "Mentions data/API layer")
	}

	return finish(score, reasons, "Limited technical depth")
}

func (e *Engine) scoreProblemRelevance(p types.Project, fullText string) types.CriterionScore {
	score := 50.0
	var reasons []string

	problem := strings.ToLower(p.ProblemStatement)
	target := strings.ToLower(p.TargetUsers)

	switch n := len(strings.Fields(problem)); {
	case n >= 75:
		score += 15
		reasons = append(reasons, "Thorough problem description")
	case n >= 40:
		score += 8
		reasons = append(reasons, "Adequate problem description")
	}

	switch n := countMatches(problem, e.lex.PainIndicators); {
	case n >= 3:
		score += 15
		reasons = append(reasons, "Clear articulation of pain points")
	case n >= 1:
		score += 8
		reasons = append(reasons, "Some pain points identified")
	}

	switch n := countMatches(target, e.lex.AudienceIndicators); {
	case n >= 2:
		score += 10
		reasons = append(reasons, "Well-defined target audience")
	case n >= 1:
		score += 5
		reasons = append(reasons, "Target audience mentioned")
	}

	if statisticsPattern.MatchString(fullText) {
		score += 10
		reasons = append(reasons, "Includes supporting data/statistics")
	}

	return finish(score, reasons, "Problem relevance unclear")
}

func (e *Engine) scoreFeasibility(p types.Project, fullText string) types.CriterionScore {
	score := 45.0
	var reasons []string

	switch n := countMatches(fullText, e.lex.FeasibilitySignals); {
	case n >= 5:
		score += 30
		reasons = append(reasons, "Strong evidence of practical implementation")
	case n >= 2:
		score += 15
		reasons = append(reasons, "Some practical considerations mentioned")
	}

	if p.DemoLink != "" {
		score += 20
		reasons = append(reasons, "Working demo available")
	}

	if strings.Contains(fullText, "readme") || strings.Contains(fullText, "documentation") {
		score += 5
		reasons = append(reasons, "Documentation mentioned")
	}

	solution := strings.ToLower(p.SolutionDescription)
	if countMatches(solution, e.lex.ScopeIndicators) > 0 {
		score += 10
		reasons = append(reasons, "Realistic scope with phased approach")
	}

	if countMatches(solution, e.lex.AmbitiousPhrases) > 0 && p.DemoLink == "" {
		score -= 10
		reasons = append(reasons, "Ambitious scope without demo evidence")
	}

	return finish(score, reasons, "Feasibility not clearly demonstrated")
}

func (e *Engine) scoreScalability(p types.Project) types.CriterionScore {
	score := 45.0
	var reasons []string

	future := strings.ToLower(p.FutureScope)
	solution := strings.ToLower(p.SolutionDescription)
	combined := future + " " + solution

	switch n := countMatches(combined, e.lex.ScaleKeywords); {
	case n >= 4:
		score += 30
		reasons = append(reasons, "Excellent scalability architecture")
	case n >= 2:
		score += 15
		reasons = append(reasons, "Some scalability considerations")
	}

	if len(strings.Fields(future)) >= 60 {
		score += 10
		reasons = append(reasons, "Detailed future roadmap")
	}

	if countMatches(combined, e.lex.ExtendKeywords) >= 2 {
		score += 10
		reasons = append(reasons, "Good extensibility considerations")
	}

	if countMatches(combined, e.lex.SustainKeywords) > 0 {
		score += 5
		reasons = append(reasons, "Business sustainability considered")
	}

	return finish(score, reasons, "Scalability plan not evident")
}

func (e *Engine) scoreUIUX(p types.Project, fullText string) types.CriterionScore {
	score := 50.0
	var reasons []string

	switch n := countMatches(fullText, e.lex.UXKeywords); {
	case n >= 5:
		score += 25
		reasons = append(reasons, "Strong UX focus with user-centric approach")
	case n >= 2:
		score += 12
		reasons = append(reasons, "Some UX considerations mentioned")
	}

	if p.DemoLink != "" {
		score += 15
		reasons = append(reasons, "Demo available for visual assessment")
	}

	if countMatches(strings.ToLower(p.TechStack), e.lex.FrontendTechs) > 0 {
		score += 10
		reasons = append(reasons, "Modern frontend technology stack")
	}

	if strings.Contains(fullText, "accessib") || strings.Contains(fullText, "wcag") || strings.Contains(fullText, "a11y") {
		score += 10
		reasons = append(reasons, "Accessibility considered")
	}

	return finish(score, reasons, "UI/UX details not provided")
}

func (e *Engine) scoreRealWorldImpact(p types.Project, fullText string) types.CriterionScore {
	score := 50.0
	var reasons []string

	switch n := countMatches(fullText, e.lex.ImpactKeywords); {
	case n >= 6:
		score += 25
		reasons = append(reasons, "Clear articulation of real-world benefits")
	case n >= 3:
		score += 12
		reasons = append(reasons, "Some impact considerations")
	}

	if quantifiedPattern.MatchString(fullText) {
		score += 15
		reasons = append(reasons, "Quantified impact metrics")
	}

	if len(strings.Fields(strings.ToLower(p.TargetUsers))) >= 30 {
		score += 10
		reasons = append(reasons, "Well-defined beneficiary group")
	}

	return finish(score, reasons, "Real-world impact not clearly defined")
}

// buzzwordPenalty kicks in when buzzword density (hits per 100 words)
// exceeds the configured maximum. Unlike the other penalties this counts
// every occurrence, so repeating the same buzzword keeps raising density.
func (e *Engine) buzzwordPenalty(fullText string, wordCount int) float64 {
	hits := countOccurrences(fullText, e.lex.Buzzwords)
	density := float64(hits) / math.Max(1, float64(wordCount)) * 100

	if density > e.cfg.MaxBuzzwordDensity {
		return math.Min(maxBuzzwordPenalty, (density-e.cfg.MaxBuzzwordDensity)*e.cfg.BuzzwordPenaltyRate)
	}
	return 0
}

func (e *Engine) vaguenessPenalty(fullText string) float64 {
	hits := countMatches(fullText, e.lex.VaguePhrases)
	if hits > vaguenessFreeAllowance {
		return math.Min(maxVaguenessPenalty, float64(hits-vaguenessFreeAllowance)*e.cfg.VaguenessPenaltyRate)
	}
	return 0
}

func (e *Engine) overclaimPenalty(fullText string) float64 {
	hits := countMatches(fullText, e.lex.OverclaimPhrases)
	if hits > 0 {
		return math.Min(maxOverclaimPenalty, float64(hits)*e.cfg.OverclaimPenaltyRate)
	}
	return 0
}

func (e *Engine) aiGeneratedPenalty(fullText string) float64 {
	if countMatches(fullText, e.lex.AIPatterns) >= aiPatternThreshold {
		return e.cfg.AIGeneratedPenalty
	}
	return 0
}

// countOccurrences counts every non-overlapping occurrence of each phrase.
func countOccurrences(text string, phrases []string) int {
	n := 0
	for _, phrase := range phrases {
		n += strings.Count(text, phrase)
	}
	return n
}

// countMatches counts how many phrases appear in text as substrings. Each
// phrase counts at most once regardless of repetition.
func countMatches(text string, phrases []string) int {
	n := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			n++
		}
	}
	return n
}

func finish(score float64, reasons []string, fallback string) types.CriterionScore {
	explanation := fallback
	if len(reasons) > 0 {
		explanation = strings.Join(reasons, "; ")
	}
	return types.CriterionScore{
		Score:       clamp(score, 0, 100),
		Explanation: explanation,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
