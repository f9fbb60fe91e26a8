package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/judgekit/hackjudge/internal/errors"
	"github.com/judgekit/hackjudge/internal/types"
)

func validProject() types.Project {
	return types.Project{
		Title:                 "campus mesh",
		TeamSize:              3,
		ProblemStatement:      strings.Repeat("Students waste hours finding free study rooms on campus. ", 2),
		SolutionDescription:   strings.Repeat("A room finder that polls department booking systems and serves one combined index. ", 2),
		TechStack:             "Python, FastAPI, PostgreSQL",
		InnovationDescription: "Aggregates every department feed in one place with live availability updates for all rooms.",
		GitHubLink:            "https://github.com/campusmesh/finder",
		TargetUsers:           "University students and campus facility coordinators.",
		FutureScope:           "Calendar integration, more campuses, and an admin dashboard for facility staff members.",
	}
}

func TestCleanAndValidateAcceptsValidProject(t *testing.T) {
	v := New()
	p := validProject()

	require.NoError(t, v.CleanAndValidate(&p))
	assert.Equal(t, "Campus Mesh", p.Title)
}

func TestCleanNormalization(t *testing.T) {
	t.Run("collapses whitespace and strips tags", func(t *testing.T) {
		p := validProject()
		p.ProblemStatement = "  Too   many <script>alert(1)</script>  spaces here across the campus study rooms today.  "
		Clean(&p)

		assert.Equal(t, "Too many alert(1) spaces here across the campus study rooms today.", p.ProblemStatement)
	})

	t.Run("title cases the project name", func(t *testing.T) {
		p := validProject()
		p.Title = "smartPark AI manager"
		Clean(&p)

		assert.Equal(t, "SmartPark AI Manager", p.Title)
	})

	t.Run("normalizes tech stack separators", func(t *testing.T) {
		p := validProject()
		p.TechStack = "Python;FastAPI|PostgreSQL/React"
		Clean(&p)

		assert.Equal(t, "Python, FastAPI, PostgreSQL, React", p.TechStack)
	})

	t.Run("defaults github scheme", func(t *testing.T) {
		p := validProject()
		p.GitHubLink = "github.com/campusmesh/finder"
		Clean(&p)

		assert.Equal(t, "https://github.com/campusmesh/finder", p.GitHubLink)
	})
}

func TestCleanAndValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Project)
		field   string
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(p *types.Project) { p.Title = "" },
			field:   "project_title",
			message: "required",
		},
		{
			name:    "short problem statement",
			mutate:  func(p *types.Project) { p.ProblemStatement = "Too short." },
			field:   "problem_statement",
			message: "at least 50 characters",
		},
		{
			name:    "oversized solution",
			mutate:  func(p *types.Project) { p.SolutionDescription = strings.Repeat("word ", 1000) },
			field:   "solution_description",
			message: "at most 3000 characters",
		},
		{
			name:    "team too large",
			mutate:  func(p *types.Project) { p.TeamSize = 11 },
			field:   "team_size",
			message: "between 1 and 10",
		},
		{
			name:    "non-github repository link",
			mutate:  func(p *types.Project) { p.GitHubLink = "https://gitlab.com/campusmesh/finder" },
			field:   "github_link",
			message: "GitHub repository",
		},
		{
			name:    "malformed demo url",
			mutate:  func(p *types.Project) { p.DemoLink = "not a url" },
			field:   "demo_link",
			message: "valid URL",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)
			Clean(&p)

			fieldErrors := v.FieldErrors(&p)
			require.Contains(t, fieldErrors, tt.field)
			assert.Contains(t, fieldErrors[tt.field], tt.message)

			err := v.CleanAndValidate(&p)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
		})
	}
}

func TestCleanAndValidateDemoOptional(t *testing.T) {
	v := New()
	p := validProject()
	p.DemoLink = ""

	assert.NoError(t, v.CleanAndValidate(&p))

	p = validProject()
	p.DemoLink = "https://demo.campusmesh.example.org/app"
	assert.NoError(t, v.CleanAndValidate(&p))
}
