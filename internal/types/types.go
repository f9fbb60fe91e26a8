// Package types holds the data shapes exchanged between the validator, the
// scoring engine, the feedback generator, and the leaderboard.
package types

import "strings"

// Project is a validated hackathon submission. It is constructed by the
// validation layer and never mutated afterwards; the scoring path treats
// its field invariants (required-ness, length bounds, URL syntax) as
// already established.
type Project struct {
	Title                 string `json:"project_title" validate:"required,min=3,max=100"`
	TeamSize              int    `json:"team_size" validate:"required,gte=1,lte=10"`
	ProblemStatement      string `json:"problem_statement" validate:"required,min=50,max=2000"`
	SolutionDescription   string `json:"solution_description" validate:"required,min=100,max=3000"`
	TechStack             string `json:"tech_stack" validate:"required,min=10,max=500"`
	InnovationDescription string `json:"innovation_description" validate:"required,min=50,max=1500"`
	GitHubLink            string `json:"github_link" validate:"required,github_repo"`
	DemoLink              string `json:"demo_link,omitempty" validate:"omitempty,demo_url"`
	TargetUsers           string `json:"target_users" validate:"required,min=20,max=500"`
	FutureScope           string `json:"future_scope" validate:"required,min=50,max=1000"`
}

// AllText joins every descriptive field for whole-submission analysis.
// Case is preserved; callers lowercase as needed.
func (p Project) AllText() string {
	return strings.Join([]string{
		p.Title,
		p.ProblemStatement,
		p.SolutionDescription,
		p.TechStack,
		p.InnovationDescription,
		p.TargetUsers,
		p.FutureScope,
	}, " ")
}

// WordCount is the total whitespace-separated word count of the submission.
func (p Project) WordCount() int {
	return len(strings.Fields(p.AllText()))
}

// CriterionScore pairs a clamped 0-100 score with the rationale of which
// rules fired.
type CriterionScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Score is the full evaluation of one project. The engine fills the numeric
// fields; the feedback generator fills the feedback and verdict fields
// exactly once. After leaderboard insertion it is never mutated.
type Score struct {
	ProjectTitle string `json:"project_title"`

	// Criteria is keyed by config criterion key.
	Criteria map[string]CriterionScore `json:"criteria"`

	BuzzwordPenalty    float64 `json:"buzzword_penalty"`
	VaguenessPenalty   float64 `json:"vagueness_penalty"`
	OverclaimPenalty   float64 `json:"overclaim_penalty"`
	AIGeneratedPenalty float64 `json:"ai_generated_penalty"`
	TotalPenalty       float64 `json:"total_penalty"`

	ComplexityTier string  `json:"complexity_tier"`
	RawScore       float64 `json:"raw_score"`
	FinalScore     float64 `json:"final_score"`

	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Suggestions        []string `json:"suggestions"`
	Verdict            string   `json:"verdict"`
	VerdictEmoji       string   `json:"verdict_emoji"`
	VerdictExplanation string   `json:"verdict_explanation"`
}

// CriterionScore returns the stored score for a criterion key, zero-valued
// when absent.
func (s *Score) CriterionScore(key string) CriterionScore {
	return s.Criteria[key]
}
