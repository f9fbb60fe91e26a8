// Package validate cleans and validates incoming project submissions before
// they reach the scoring engine. Cleaning always runs first so validation
// sees the normalized form.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/judgekit/hackjudge/internal/errors"
	"github.com/judgekit/hackjudge/internal/types"
)

var (
	githubRepoPattern = regexp.MustCompile(`(?i)^https?://(www\.)?github\.com/[\w\-]+/[\w\-.]+/?.*$`)
	demoURLPattern    = regexp.MustCompile(`^https?://[^\s<>"{}|\\^` + "`" + `\[\]]+$`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	controlPattern    = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)
	separatorPattern  = regexp.MustCompile(`[,;|/]+`)
)

// Validator cleans and checks project submissions.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the custom URL rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("github_repo", func(fl validator.FieldLevel) bool {
		return githubRepoPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("demo_url", func(fl validator.FieldLevel) bool {
		return demoURLPattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// CleanAndValidate normalizes the submission in place, then validates it.
// On failure it returns a validation AppError carrying per-field messages.
func (val *Validator) CleanAndValidate(p *types.Project) error {
	Clean(p)

	fieldErrors := val.FieldErrors(p)
	if len(fieldErrors) == 0 {
		return nil
	}
	return errors.NewValidationErrorWithMap(fieldErrors)
}

// FieldErrors checks an already-cleaned project and returns one message per
// failing field, empty when the project is valid.
func (val *Validator) FieldErrors(p *types.Project) map[string]string {
	err := val.v.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"submission": err.Error()}
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := jsonFieldName(fe.Field())
		fieldErrors[name] = messageFor(name, fe)
	}
	return fieldErrors
}

// Clean normalizes every field: collapse whitespace, strip HTML tags and
// control characters, normalize tech stack separators, title-case the title,
// and default the GitHub scheme.
func Clean(p *types.Project) {
	p.Title = titleCase(cleanText(p.Title))
	p.ProblemStatement = cleanText(p.ProblemStatement)
	p.SolutionDescription = cleanText(p.SolutionDescription)
	p.InnovationDescription = cleanText(p.InnovationDescription)
	p.TargetUsers = cleanText(p.TargetUsers)
	p.FutureScope = cleanText(p.FutureScope)
	p.TechStack = separatorPattern.ReplaceAllString(cleanText(p.TechStack), ", ")
	p.GitHubLink = cleanURL(p.GitHubLink)
	p.DemoLink = cleanURL(p.DemoLink)
}

func cleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = controlPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func cleanURL(url string) string {
	url = strings.TrimSpace(url)
	if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		if strings.HasPrefix(strings.ToLower(url), "github.com") {
			url = "https://" + url
		}
	}
	return url
}

// titleCase capitalizes the first letter of each word, leaving the rest of
// each word untouched so acronyms survive.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

// jsonFieldName maps struct field names to their submission field names.
func jsonFieldName(structField string) string {
	switch structField {
	case "Title":
		return "project_title"
	case "TeamSize":
		return "team_size"
	case "ProblemStatement":
		return "problem_statement"
	case "SolutionDescription":
		return "solution_description"
	case "TechStack":
		return "tech_stack"
	case "InnovationDescription":
		return "innovation_description"
	case "GitHubLink":
		return "github_link"
	case "DemoLink":
		return "demo_link"
	case "TargetUsers":
		return "target_users"
	case "FutureScope":
		return "future_scope"
	default:
		return strings.ToLower(structField)
	}
}

// messageFor renders a judge-facing message for one failed rule.
func messageFor(field string, fe validator.FieldError) string {
	display := displayName(field)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", display)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", display, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", display, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", display, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", display, fe.Param())
	case "gte", "lte":
		return "Team size must be between 1 and 10"
	case "github_repo":
		return "Please provide a valid GitHub repository URL"
	case "demo_url":
		return "Demo link must be a valid URL"
	default:
		return fmt.Sprintf("%s is invalid", display)
	}
}

// displayName converts a submission field name to a human-readable label.
func displayName(field string) string {
	return titleCase(strings.ReplaceAll(field, "_", " "))
}
