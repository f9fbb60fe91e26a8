package config

// Templates holds the fixed feedback strings the generator picks from.
// Verdict explanations and weakness details are chosen pseudo-randomly; the
// selection source is injected into the generator so tests can pin output.
type Templates struct {
	WinnerVerdicts   []string
	StrongVerdicts   []string
	AverageVerdicts  []string
	NotReadyVerdicts []string

	// WeaknessDetails provides fallback detail text per criterion when a
	// scorer produced no explanation worth quoting.
	WeaknessDetails map[string][]string
}

// DefaultTemplates returns the reference feedback template set.
func DefaultTemplates() *Templates {
	return &Templates{
		WinnerVerdicts: []string{
			"This is genuinely impressive work. The team has demonstrated real engineering depth and a clear understanding of the problem space.",
			"A standout submission that showcases both innovation and execution. This is what hackathon winners look like.",
			"Exceptional work. This project demonstrates the rare combination of creativity, technical skill, and real-world applicability.",
		},
		StrongVerdicts: []string{
			"Solid work overall. With some refinement, this could be a serious contender.",
			"This project has real potential. The foundation is strong, and the team clearly knows what they're doing.",
			"Good execution on an interesting problem. A few improvements could push this into winner territory.",
		},
		AverageVerdicts: []string{
			"This project has promise but needs significant work before it's ready for primetime.",
			"The idea is there, but the execution doesn't quite match the ambition.",
			"More substance and less fluff would help this project stand out.",
		},
		NotReadyVerdicts: []string{
			"This submission needs fundamental rethinking. The current approach has too many gaps.",
			"Back to the drawing board. The project lacks the depth and clarity expected at this level.",
			"Not ready for competition. Focus on building a working prototype before presenting.",
		},
		WeaknessDetails: map[string][]string{
			CriterionInnovation: {
				"The solution doesn't clearly differentiate from existing approaches.",
				"Consider what unique angle or approach you bring to this problem.",
				"Innovation should be evident in either the problem framing or solution design.",
			},
			CriterionTechnicalDepth: {
				"The technical implementation lacks specificity.",
				"Describe your architecture decisions, algorithms, or engineering challenges.",
				"Judges want to see real engineering effort, not just tool integration.",
			},
			CriterionRelevance: {
				"The problem statement needs more clarity on who this affects and why.",
				"Quantify the problem: how many people? What's the cost? What's the pain?",
				"A compelling problem makes the solution compelling.",
			},
			CriterionFeasibility: {
				"It's unclear whether this can actually be built and deployed.",
				"What's your MVP? What's achievable in a realistic timeframe?",
				"Show us that you've thought through the practical implementation.",
			},
			CriterionScalability: {
				"The scaling strategy is not evident.",
				"What happens when you have 10x, 100x, 1000x the users?",
				"Consider technical and business scalability.",
			},
			CriterionUIUX: {
				"User experience considerations are minimal.",
				"How will users actually interact with this? What's the user journey?",
				"Even technical products need good UX.",
			},
			CriterionRealWorldImpact: {
				"The real-world impact is unclear.",
				"Who benefits and how? What changes because this exists?",
				"Connect your technical solution to tangible outcomes.",
			},
		},
	}
}

// VerdictTemplates returns the explanation pool for a verdict tier key.
func (t *Templates) VerdictTemplates(tierKey string) []string {
	switch tierKey {
	case "winner":
		return t.WinnerVerdicts
	case "strong":
		return t.StrongVerdicts
	case "average":
		return t.AverageVerdicts
	default:
		return t.NotReadyVerdicts
	}
}
