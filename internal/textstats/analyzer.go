// Package textstats provides the tokenization-driven measurements the
// scoring engine leans on: substance and readability heuristics, naive
// key-concept extraction, section coherence, template detection, and tech
// stack categorization. Everything operates on raw strings; there is no
// model behind any of it, just frequency and length arithmetic.
package textstats

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Stats summarizes one block of text.
type Stats struct {
	WordCount          int      `json:"word_count"`
	SentenceCount      int      `json:"sentence_count"`
	AvgSentenceLength  float64  `json:"avg_sentence_length"`
	VocabularyRichness float64  `json:"vocabulary_richness"`
	TechnicalRatio     float64  `json:"technical_ratio"`
	SubstanceScore     float64  `json:"substance_score"`
	ReadabilityScore   float64  `json:"readability_score"`
	KeyConcepts        []string `json:"key_concepts"`
}

// Coherence reports term overlap between the problem, solution, and
// innovation sections.
type Coherence struct {
	ProblemSolution    float64  `json:"problem_solution_coherence"`
	SolutionInnovation float64  `json:"solution_innovation_coherence"`
	Overall            float64  `json:"overall_coherence"`
	SharedConcepts     []string `json:"shared_concepts"`
	IsCoherent         bool     `json:"is_coherent"`
}

// CopyPaste reports placeholder and template-phrase hits.
type CopyPaste struct {
	PlaceholderCount    int  `json:"placeholder_count"`
	TemplatePhraseCount int  `json:"template_phrase_count"`
	Score               int  `json:"copy_paste_score"`
	IsLikelyTemplate    bool `json:"is_likely_template"`
}

// TechStack reports detected technologies grouped by category.
type TechStack struct {
	Detected      map[string][]string `json:"detected_technologies"`
	TotalCount    int                 `json:"total_tech_count"`
	CategoryCount int                 `json:"category_count"`
	DepthScore    int                 `json:"tech_depth_score"`
	IsFullStack   bool                `json:"is_full_stack"`
	HasDatabase   bool                `json:"has_database"`
	HasML         bool                `json:"has_ml"`
}

// Analyzer measures submission text. Construct once and share; it is
// stateless after construction.
type Analyzer struct {
	stopWords      map[string]struct{}
	technicalTerms map[string]struct{}
	placeholders   []string
	templates      []string
	techCategories map[string][]string
}

// Option tweaks analyzer construction.
type Option func(*Analyzer)

// WithPlaceholders overrides the placeholder substrings used by DetectCopyPaste.
func WithPlaceholders(placeholders, templates []string) Option {
	return func(a *Analyzer) {
		a.placeholders = placeholders
		a.templates = templates
	}
}

// NewAnalyzer builds an analyzer with the built-in stop-word and
// technical-term sets.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		stopWords:      toSet(stopWords),
		technicalTerms: toSet(technicalTerms),
		placeholders:   defaultPlaceholders,
		templates:      defaultTemplatePhrases,
		techCategories: techStackCategories,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Tokenize lowercases, strips punctuation to whitespace, splits, and drops
// stop words and tokens of length <= 2.
func (a *Analyzer) Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, w := range fields {
		if len(w) <= 2 {
			continue
		}
		if _, stop := a.stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// SplitSentences splits on runs of '.', '!', '?', discarding empty results.
func (a *Analyzer) SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := parts[:0]
	for _, s := range parts {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Analyze computes the full statistics bundle for one text.
func (a *Analyzer) Analyze(text string) Stats {
	words := a.Tokenize(text)
	sentences := a.SplitSentences(text)

	wordCount := len(words)
	sentenceCount := len(sentences)
	avgSentenceLength := float64(wordCount) / math.Max(1, float64(sentenceCount))

	unique := make(map[string]struct{}, wordCount)
	technical := 0
	for _, w := range words {
		unique[w] = struct{}{}
		if _, ok := a.technicalTerms[w]; ok {
			technical++
		}
	}

	vocabRichness := float64(len(unique)) / math.Max(1, float64(wordCount))
	technicalRatio := float64(technical) / math.Max(1, float64(wordCount))

	return Stats{
		WordCount:          wordCount,
		SentenceCount:      sentenceCount,
		AvgSentenceLength:  round1(avgSentenceLength),
		VocabularyRichness: round3(vocabRichness),
		TechnicalRatio:     round3(technicalRatio),
		SubstanceScore:     round1(a.substanceScore(wordCount, vocabRichness, technicalRatio, avgSentenceLength)),
		ReadabilityScore:   round1(a.readabilityScore(words, sentences)),
		KeyConcepts:        a.keyConcepts(words),
	}
}

// substanceScore rewards varied vocabulary, technical content, moderate
// sentence length, and adequate length; clamped to [0,100].
func (a *Analyzer) substanceScore(wordCount int, vocabRichness, techRatio, avgSentLen float64) float64 {
	score := 50.0

	switch {
	case vocabRichness > 0.6:
		score += 15
	case vocabRichness > 0.4:
		score += 8
	}

	switch {
	case techRatio > 0.05:
		score += 20
	case techRatio > 0.02:
		score += 10
	}

	switch {
	case avgSentLen >= 12 && avgSentLen <= 25:
		score += 10
	case avgSentLen < 8:
		score -= 10
	case avgSentLen > 35:
		score -= 5
	}

	switch {
	case wordCount > 300:
		score += 5
	case wordCount < 100:
		score -= 10
	}

	return clamp(score, 0, 100)
}

// readabilityScore is a simplified Flesch-like measure; 50 when there is
// nothing to measure.
func (a *Analyzer) readabilityScore(words, sentences []string) float64 {
	if len(words) == 0 || len(sentences) == 0 {
		return 50
	}

	totalLen := 0
	for _, w := range words {
		totalLen += len(w)
	}
	avgWordLength := float64(totalLen) / float64(len(words))
	avgSentLength := float64(len(words)) / float64(len(sentences))

	return clamp(100-avgWordLength*5-avgSentLength*1.5, 0, 100)
}

// keyConcepts keeps terms that repeat or are technical, ordered by frequency
// descending. Ties break on first encounter in the token stream, which makes
// the output deterministic for identical input.
func (a *Analyzer) keyConcepts(words []string) []string {
	freq := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	for i, w := range words {
		if _, seen := freq[w]; !seen {
			firstSeen[w] = i
		}
		freq[w]++
	}

	concepts := make([]string, 0, len(freq))
	for w, n := range freq {
		_, tech := a.technicalTerms[w]
		if n >= 2 || tech {
			concepts = append(concepts, w)
		}
	}

	sort.Slice(concepts, func(i, j int) bool {
		if freq[concepts[i]] != freq[concepts[j]] {
			return freq[concepts[i]] > freq[concepts[j]]
		}
		return firstSeen[concepts[i]] < firstSeen[concepts[j]]
	})

	if len(concepts) > 10 {
		concepts = concepts[:10]
	}
	return concepts
}

// CheckCoherence measures term overlap between the problem, solution, and
// innovation sections. Overlap is Jaccard-style: |intersection| / |union|,
// zero when the union is empty.
func (a *Analyzer) CheckCoherence(problem, solution, innovation string) Coherence {
	problemSet := toSet(a.Tokenize(problem))
	solutionSet := toSet(a.Tokenize(solution))
	innovationSet := toSet(a.Tokenize(innovation))

	probSol := jaccard(problemSet, solutionSet)
	solInnov := jaccard(solutionSet, innovationSet)
	overall := (probSol + solInnov) / 2 * 100

	shared := make([]string, 0, 5)
	for w := range problemSet {
		if _, ok := solutionSet[w]; !ok {
			continue
		}
		if _, ok := innovationSet[w]; !ok {
			continue
		}
		shared = append(shared, w)
	}
	sort.Strings(shared)
	if len(shared) > 5 {
		shared = shared[:5]
	}

	return Coherence{
		ProblemSolution:    round1(probSol * 100),
		SolutionInnovation: round1(solInnov * 100),
		Overall:            round1(overall),
		SharedConcepts:     shared,
		IsCoherent:         overall > 15,
	}
}

func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// DetectCopyPaste counts placeholder and template-phrase substrings.
// Placeholders weigh 20 points each, template phrases 10, capped at 100.
func (a *Analyzer) DetectCopyPaste(text string) CopyPaste {
	lower := strings.ToLower(text)

	placeholderCount := countSubstrings(lower, a.placeholders)
	templateCount := countSubstrings(lower, a.templates)

	score := placeholderCount*20 + templateCount*10
	if score > 100 {
		score = 100
	}

	return CopyPaste{
		PlaceholderCount:    placeholderCount,
		TemplatePhraseCount: templateCount,
		Score:               score,
		IsLikelyTemplate:    score > 30,
	}
}

// AnalyzeTechStack matches the free-text stack against known technology
// categories. Depth is 20 points per category plus 5 per match, capped 100.
func (a *Analyzer) AnalyzeTechStack(techStack string) TechStack {
	lower := strings.ToLower(techStack)

	detected := make(map[string][]string)
	total := 0
	for category, techs := range a.techCategories {
		var found []string
		for _, tech := range techs {
			if strings.Contains(lower, tech) {
				found = append(found, tech)
			}
		}
		if len(found) > 0 {
			detected[category] = found
			total += len(found)
		}
	}

	depth := len(detected)*20 + total*5
	if depth > 100 {
		depth = 100
	}

	_, frontend := detected["frontend"]
	_, backend := detected["backend"]
	_, database := detected["database"]
	_, ml := detected["ml_ai"]

	return TechStack{
		Detected:      detected,
		TotalCount:    total,
		CategoryCount: len(detected),
		DepthScore:    depth,
		IsFullStack:   frontend && backend,
		HasDatabase:   database,
		HasML:         ml,
	}
}

func countSubstrings(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			count++
		}
	}
	return count
}

// Statistics is a quick raw-text summary without stop-word filtering,
// useful for display alongside the full analysis.
func Statistics(text string) TextStatistics {
	words := strings.Fields(text)

	sentences := 0
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	totalLen := 0
	for _, w := range words {
		totalLen += len(w)
	}

	return TextStatistics{
		CharacterCount: len(text),
		WordCount:      len(words),
		SentenceCount:  sentences,
		ParagraphCount: strings.Count(text, "\n\n") + 1,
		AvgWordLength:  float64(totalLen) / math.Max(1, float64(len(words))),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
