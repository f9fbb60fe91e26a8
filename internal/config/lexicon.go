package config

// Lexicon holds the fixed trigger-phrase lists used for signal counting.
// All entries are lowercase; matching is case-insensitive substring
// containment, not word-boundary matching. That is deliberate for parity
// with the scoring corpus, even though short phrases embedded in longer
// words produce occasional false positives.
type Lexicon struct {
	Buzzwords          []string
	VaguePhrases       []string
	OverclaimPhrases   []string
	AIPatterns         []string
	TechnicalSignals   []string
	FeasibilitySignals []string
	InnovationSignals  []string

	// Criterion-local trigger sets.
	Differentiators    []string
	GenericInnovation  []string
	PainIndicators     []string
	AudienceIndicators []string
	ScaleKeywords      []string
	ExtendKeywords     []string
	SustainKeywords    []string
	UXKeywords         []string
	ImpactKeywords     []string
	FrontendTechs      []string
	ScopeIndicators    []string
	AmbitiousPhrases   []string

	// Template/placeholder detection (copy-paste heuristic).
	Placeholders    []string
	TemplatePhrases []string

	// TechCategories groups stack keywords for breadth scoring.
	TechCategories map[string][]string
}

// DefaultLexicon returns the reference lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Buzzwords: []string{
			"revolutionary", "disruptive", "game-changing", "world-changing",
			"cutting-edge", "state-of-the-art", "next-generation", "groundbreaking",
			"paradigm shift", "synergy", "leverage", "ecosystem", "holistic",
			"seamless", "robust", "scalable", "innovative", "transformative",
			"best-in-class", "world-class", "unprecedented", "unique", "novel",
			"breakthrough", "pioneering", "trailblazing", "bleeding-edge",
			"ai-powered", "blockchain-enabled", "cloud-native", "future-proof",
			"mission-critical", "enterprise-grade", "industry-leading",
		},
		VaguePhrases: []string{
			"and more", "etc.", "various", "multiple", "several", "many",
			"some kind of", "sort of", "kind of", "basically", "essentially",
			"generally", "typically", "usually", "often", "sometimes",
			"might", "could potentially", "may be able to", "possibly",
			"in some cases", "under certain conditions", "as needed",
			"when appropriate", "if necessary", "as applicable",
			"and so on", "and stuff", "things like", "or something",
			"whatever", "somehow", "somewhere", "something", "anything",
		},
		OverclaimPhrases: []string{
			"will change the world", "will revolutionize", "first ever",
			"never been done before", "completely unique", "100% original",
			"no competition", "unmatched", "unparalleled", "unprecedented success",
			"guaranteed to", "will definitely", "proven to", "scientifically proven",
			"backed by research", "studies show", "experts agree",
			"millions of users", "billion dollar", "unicorn potential",
			"viral growth", "exponential", "hockey stick growth",
		},
		AIPatterns: []string{
			"in conclusion", "it is important to note", "it is worth noting",
			"in this regard", "in the realm of", "in today's world",
			"at the end of the day", "moving forward", "going forward",
			"with that being said", "having said that", "that being said",
			"as we can see", "as mentioned earlier", "as discussed above",
			"furthermore", "moreover", "additionally", "subsequently",
			"in summary", "to summarize", "in essence", "ultimately",
			"delve into", "dive deeper", "explore further", "shed light on",
			"it's important to", "we need to", "one must", "we should",
		},
		TechnicalSignals: []string{
			"algorithm", "architecture", "api", "database", "optimization",
			"performance", "latency", "throughput", "caching", "indexing",
			"authentication", "authorization", "encryption", "security",
			"testing", "unit test", "integration test", "ci/cd", "deployment",
			"monitoring", "logging", "error handling", "edge cases",
			"data structure", "time complexity", "space complexity",
			"microservices", "containerization", "kubernetes", "docker",
			"rest api", "graphql", "websocket", "real-time",
			"machine learning", "neural network", "model training", "inference",
		},
		FeasibilitySignals: []string{
			"prototype", "mvp", "working demo", "implemented", "built",
			"deployed", "tested", "validated", "user feedback", "iteration",
			"sprint", "milestone", "roadmap", "timeline", "budget",
			"resource", "constraint", "limitation", "trade-off", "decision",
		},
		InnovationSignals: []string{
			"novel approach", "new method", "unique combination", "fresh perspective",
			"different from", "improves upon", "addresses gap", "solves differently",
			"creative solution", "unconventional", "out-of-the-box", "reimagined",
		},
		Differentiators: []string{
			"unlike", "different from", "improves", "addresses gap", "first to",
		},
		GenericInnovation: []string{
			"use ai", "machine learning solution", "web app", "mobile app",
		},
		PainIndicators: []string{
			"struggle", "challenge", "difficult", "problem", "issue",
			"pain point", "frustrat", "inefficient", "costly", "time-consuming",
		},
		AudienceIndicators: []string{
			"developer", "student", "enterprise", "small business",
			"healthcare", "education", "finance", "retail", "startup",
		},
		ScaleKeywords: []string{
			"scale", "scalab", "microservice", "cloud", "distributed",
			"horizontal", "vertical", "load balanc", "container", "kubernetes",
			"elastic", "auto-scal", "serverless",
		},
		ExtendKeywords: []string{
			"plugin", "modular", "extensible", "api", "integration", "customize",
		},
		SustainKeywords: []string{
			"revenue", "monetiz", "subscription", "freemium", "enterprise", "pricing",
		},
		UXKeywords: []string{
			"user experience", "user interface", "ui", "ux", "design",
			"intuitive", "user-friendly", "accessible", "responsive",
			"figma", "mockup", "wireframe", "usability", "user testing",
			"user research", "persona", "journey",
		},
		ImpactKeywords: []string{
			"impact", "benefit", "improve", "save time", "save money",
			"reduce", "increase", "help", "solve", "address",
			"community", "society", "environment", "sustainable",
		},
		FrontendTechs: []string{
			"react", "vue", "angular", "svelte", "tailwind", "css", "figma",
		},
		ScopeIndicators: []string{
			"mvp", "prototype", "phase 1", "initial version", "proof of concept",
		},
		AmbitiousPhrases: []string{
			"entire industry", "all users", "everyone", "complete solution",
		},
		Placeholders: []string{
			"[insert", "[your", "[project name]", "lorem ipsum",
			"xxx", "todo", "tbd", "placeholder", "[description]",
			"example.com", "sample text", "your company",
		},
		TemplatePhrases: []string{
			"our innovative solution", "cutting-edge technology",
			"revolutionize the industry", "game-changing approach",
			"state-of-the-art", "best-in-class", "world-class",
			"leveraging the power of", "harnessing the potential",
		},
		TechCategories: map[string][]string{
			"frontend": {"react", "vue", "angular", "svelte", "next.js", "nuxt", "html", "css", "javascript", "typescript", "tailwind", "bootstrap"},
			"backend":  {"node.js", "express", "django", "flask", "fastapi", "spring", "rails", "laravel", "go", "rust", "java", "python", "php"},
			"database": {"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "firebase", "supabase", "sqlite", "dynamodb", "cassandra"},
			"ml_ai":    {"tensorflow", "pytorch", "scikit-learn", "keras", "huggingface", "openai", "langchain", "opencv", "nltk", "spacy"},
			"cloud":    {"aws", "gcp", "azure", "vercel", "netlify", "heroku", "digitalocean", "cloudflare", "docker", "kubernetes"},
			"mobile":   {"react native", "flutter", "swift", "kotlin", "ionic", "expo"},
			"other":    {"graphql", "websocket", "grpc", "kafka", "rabbitmq", "celery", "stripe", "twilio", "sendgrid"},
		},
	}
}
