package scoring

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/types"
)

const maxFeedbackItems = 5

// FeedbackGenerator turns a scored project into judge-style feedback:
// strengths, weaknesses, suggestions, and a verdict. It fills the feedback
// fields of a Score exactly once and never touches the numeric fields.
//
// Template selection uses the injected random source; pass a seeded
// rand.Rand to pin output in tests. Randomness only affects wording, never
// numbers.
type FeedbackGenerator struct {
	templates *config.Templates
	rng       *rand.Rand
}

// NewFeedbackGenerator builds a generator. A nil rng gets a time-seeded one.
func NewFeedbackGenerator(templates *config.Templates, rng *rand.Rand) *FeedbackGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FeedbackGenerator{templates: templates, rng: rng}
}

type rankedCriterion struct {
	key         string
	score       float64
	explanation string
}

// ranked returns criteria ordered by score. Ties keep the canonical
// criterion order.
func ranked(score *types.Score, descending bool) []rankedCriterion {
	out := make([]rankedCriterion, 0, len(config.CriterionOrder))
	for _, key := range config.CriterionOrder {
		cs := score.CriterionScore(key)
		out = append(out, rankedCriterion{key: key, score: cs.Score, explanation: cs.Explanation})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].score > out[j].score
		}
		return out[i].score < out[j].score
	})
	return out
}

// Generate fills the feedback and verdict fields of score in place.
func (g *FeedbackGenerator) Generate(p types.Project, score *types.Score) {
	score.Strengths = g.strengths(p, score)
	score.Weaknesses = g.weaknesses(p, score)
	score.Suggestions = g.suggestions(p, score)

	tier := config.VerdictFor(score.FinalScore)
	score.Verdict = tier.Verdict
	score.VerdictEmoji = tier.Emoji
	score.VerdictExplanation = g.pick(g.templates.VerdictTemplates(tier.Key))
}

func (g *FeedbackGenerator) strengths(p types.Project, score *types.Score) []string {
	var strengths []string

	byScore := ranked(score, true)
	for _, c := range byScore[:4] {
		if c.score < 70 {
			continue
		}
		label := "Strong"
		if c.score >= 85 {
			label = "Outstanding"
		}
		strengths = append(strengths, fmt.Sprintf("%s **%s %s**: %s",
			config.CriterionIcons[c.key], label, config.CriterionNames[c.key], c.explanation))
	}

	if p.DemoLink != "" {
		strengths = append(strengths, "🎬 **Working Demo Available**: Having a live demo significantly strengthens your submission.")
	}
	if score.TotalPenalty == 0 {
		strengths = append(strengths, "✨ **Clean Submission**: No buzzword stuffing or vague claims detected. Clear, honest communication.")
	}
	if p.WordCount() >= 400 {
		strengths = append(strengths, "📝 **Comprehensive Documentation**: Thorough explanation of the project across all sections.")
	}

	// Every submission gets at least its best criterion acknowledged.
	if len(strengths) == 0 {
		best := byScore[0]
		strengths = append(strengths, fmt.Sprintf("📌 **%s**: %s", config.CriterionNames[best.key], best.explanation))
	}

	return truncate(strengths)
}

func (g *FeedbackGenerator) weaknesses(p types.Project, score *types.Score) []string {
	var weaknesses []string

	byScore := ranked(score, false)
	for _, c := range byScore[:4] {
		if c.score >= 60 {
			continue
		}
		name := config.CriterionNames[c.key]
		prefix := fmt.Sprintf("%s **Needs Work: %s**", config.CriterionIcons[c.key], name)
		if c.score < 40 {
			prefix = fmt.Sprintf("%s **Critical Gap in %s**", config.CriterionIcons[c.key], name)
		}
		weaknesses = append(weaknesses, prefix+": "+g.weaknessDetail(c.key, c.explanation))
	}

	if score.BuzzwordPenalty > 5 {
		weaknesses = append(weaknesses, "🚨 **Buzzword Overload**: Too many marketing terms without substance. Let your work speak for itself.")
	}
	if score.VaguenessPenalty > 3 {
		weaknesses = append(weaknesses, "😶‍🌫️ **Vague Descriptions**: Replace generic phrases with specific details about your implementation.")
	}
	if score.OverclaimPenalty > 5 {
		weaknesses = append(weaknesses, "⚠️ **Overclaiming**: Bold claims require bold evidence. Back up statements with data or demos.")
	}
	if score.AIGeneratedPenalty > 0 {
		weaknesses = append(weaknesses, "🤖 **Generic Writing Style**: The submission reads like templated or AI-generated content. Add your authentic voice.")
	}
	if p.DemoLink == "" && score.FinalScore < 80 {
		weaknesses = append(weaknesses, "📵 **No Demo**: A working prototype would significantly strengthen this submission.")
	}

	return truncate(weaknesses)
}

// weaknessDetail quotes the scorer's own explanation when it says something,
// otherwise falls back to a canned detail for that criterion.
func (g *FeedbackGenerator) weaknessDetail(key, explanation string) string {
	if len(explanation) > 20 {
		return explanation
	}
	details := g.templates.WeaknessDetails[key]
	if len(details) == 0 {
		return "Needs improvement in this area."
	}
	return details[g.rng.Intn(len(details))]
}

func (g *FeedbackGenerator) suggestions(p types.Project, score *types.Score) []string {
	var suggestions []string

	switch {
	case score.FinalScore < 50:
		suggestions = append(suggestions,
			"🎯 **Focus on One Thing**: Pick your strongest feature and polish it. A great MVP beats a mediocre complete product.",
			"🔨 **Build First, Describe Later**: Get a working prototype before spending time on elaborate descriptions.")
	case score.FinalScore < 70:
		suggestions = append(suggestions,
			"📊 **Add Evidence**: Include metrics, user feedback, or comparison data to support your claims.",
			"🎥 **Record a Demo**: A 2-minute video walkthrough can dramatically improve your presentation.")
	default:
		suggestions = append(suggestions,
			"🚀 **Go Deep on Uniqueness**: Clearly articulate what makes this different from alternatives.",
			"📈 **Show Growth Potential**: How does this become a sustainable project or business?")
	}

	if p.DemoLink == "" {
		suggestions = append(suggestions, "🌐 **Deploy a Demo**: Even a basic Streamlit or Vercel deployment shows execution ability.")
	}
	if score.CriterionScore(config.CriterionInnovation).Score < 60 {
		suggestions = append(suggestions, "💡 **Clarify Innovation**: What specific novel approach does this take? Compare directly to existing solutions.")
	}
	if score.CriterionScore(config.CriterionTechnicalDepth).Score < 60 {
		suggestions = append(suggestions, "⚙️ **Technical Documentation**: Add architecture diagrams, API documentation, or code walkthroughs.")
	}
	if score.CriterionScore(config.CriterionRelevance).Score < 60 {
		suggestions = append(suggestions, "📋 **User Research**: Interview potential users. Real quotes and pain points are compelling.")
	}
	if p.WordCount() < 200 {
		suggestions = append(suggestions, "📝 **Expand Details**: Add more context to your problem statement and solution description.")
	}
	if score.FinalScore >= 70 {
		suggestions = append(suggestions, "🏆 **Polish for Finals**: Small improvements in presentation and documentation could push this into winner territory.")
	}

	return truncate(suggestions)
}

// Compare explains why the winner beat the runner-up, naming up to three
// criteria where the winner leads by more than five points.
func (g *FeedbackGenerator) Compare(winner, runnerUp *types.Score) string {
	scoreDiff := winner.FinalScore - runnerUp.FinalScore

	type diff struct {
		name  string
		delta float64
	}
	diffs := make([]diff, 0, len(config.CriterionOrder))
	for _, key := range config.CriterionOrder {
		diffs = append(diffs, diff{
			name:  config.CriterionNames[key],
			delta: winner.CriterionScore(key).Score - runnerUp.CriterionScore(key).Score,
		})
	}
	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i].delta > diffs[j].delta })

	var advantages []string
	for _, d := range diffs[:3] {
		if d.delta > 5 {
			advantages = append(advantages, d.name)
		}
	}

	if len(advantages) == 0 {
		return fmt.Sprintf("**%s** edges out with a %.1f point lead through consistent performance across all criteria.",
			winner.ProjectTitle, scoreDiff)
	}

	joined := strings.Join(advantages, ", ")
	switch {
	case scoreDiff > 15:
		return fmt.Sprintf("**%s** takes the top spot with a commanding %.1f point lead, particularly excelling in %s.",
			winner.ProjectTitle, scoreDiff, joined)
	case scoreDiff > 5:
		return fmt.Sprintf("**%s** secures the win with a %.1f point advantage, driven by stronger %s.",
			winner.ProjectTitle, scoreDiff, joined)
	default:
		return fmt.Sprintf("In a close race, **%s** wins by %.1f points with slight edges in %s.",
			winner.ProjectTitle, scoreDiff, joined)
	}
}

func (g *FeedbackGenerator) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[g.rng.Intn(len(options))]
}

func truncate(items []string) []string {
	if len(items) > maxFeedbackItems {
		return items[:maxFeedbackItems]
	}
	return items
}
