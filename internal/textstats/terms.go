package textstats

// stopWords are discarded during tokenization.
var stopWords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
	"used", "it", "its", "this", "that", "these", "those", "i", "we", "you",
	"he", "she", "they", "me", "us", "him", "her", "them", "my", "our", "your",
	"his", "their", "what", "which", "who", "whom", "whose", "when", "where",
	"why", "how", "all", "each", "every", "both", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "just", "also", "now", "here", "there", "then", "once",
}

// technicalTerms indicate substance; tokens matching these count toward the
// technical ratio and always qualify as key concepts. Multi-word entries
// never match single tokens and are kept for parity with the original
// term list.
var technicalTerms = []string{
	"algorithm", "api", "architecture", "authentication", "authorization",
	"backend", "frontend", "database", "cache", "server", "client",
	"framework", "library", "module", "component", "service", "microservice",
	"container", "docker", "kubernetes", "deployment", "ci/cd", "pipeline",
	"testing", "unit", "integration", "e2e", "performance", "optimization",
	"security", "encryption", "protocol", "http", "rest", "graphql", "websocket",
	"machine learning", "neural", "model", "training", "inference", "dataset",
	"preprocessing", "feature", "classification", "regression", "clustering",
	"validation", "cross-validation", "accuracy", "precision", "recall",
	"react", "vue", "angular", "node", "python", "javascript", "typescript",
	"sql", "nosql", "mongodb", "postgresql", "redis", "elasticsearch",
	"aws", "gcp", "azure", "cloud", "serverless", "lambda", "function",
}

// defaultPlaceholders flag unfinished template submissions.
var defaultPlaceholders = []string{
	"[insert", "[your", "[project name]", "lorem ipsum",
	"xxx", "todo", "tbd", "placeholder", "[description]",
	"example.com", "sample text", "your company",
}

// defaultTemplatePhrases flag boilerplate marketing copy.
var defaultTemplatePhrases = []string{
	"our innovative solution", "cutting-edge technology",
	"revolutionize the industry", "game-changing approach",
	"state-of-the-art", "best-in-class", "world-class",
	"leveraging the power of", "harnessing the potential",
}

// techStackCategories groups known technologies for stack analysis. This is
// the analyzer's own six-category table; the scoring engine's broader
// breadth table lives in config.
var techStackCategories = map[string][]string{
	"frontend": {"react", "vue", "angular", "svelte", "next.js", "nuxt", "html", "css", "tailwind"},
	"backend":  {"node", "express", "django", "flask", "fastapi", "spring", "rails", "nest"},
	"database": {"postgresql", "mysql", "mongodb", "redis", "firebase", "supabase", "sqlite"},
	"ml_ai":    {"tensorflow", "pytorch", "sklearn", "keras", "openai", "langchain", "huggingface"},
	"cloud":    {"aws", "gcp", "azure", "vercel", "netlify", "heroku", "docker", "kubernetes"},
	"mobile":   {"react native", "flutter", "swift", "kotlin", "expo"},
}

// TextStatistics is a quick character/word/sentence summary without
// tokenization filtering.
type TextStatistics struct {
	CharacterCount int     `json:"character_count"`
	WordCount      int     `json:"word_count"`
	SentenceCount  int     `json:"sentence_count"`
	ParagraphCount int     `json:"paragraph_count"`
	AvgWordLength  float64 `json:"avg_word_length"`
}
