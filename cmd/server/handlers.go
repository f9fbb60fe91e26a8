package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/errors"
	"github.com/judgekit/hackjudge/internal/leaderboard"
	"github.com/judgekit/hackjudge/internal/monitoring"
	"github.com/judgekit/hackjudge/internal/scoring"
	"github.com/judgekit/hackjudge/internal/textstats"
	"github.com/judgekit/hackjudge/internal/types"
	"github.com/judgekit/hackjudge/internal/validate"
)

type apiServer struct {
	cfg       *config.Config
	engine    *scoring.Engine
	generator *scoring.FeedbackGenerator
	analyzer  *textstats.Analyzer
	board     *leaderboard.Board
	validator *validate.Validator
	logger    *monitoring.Logger
	metrics   *monitoring.Metrics
}

// analysisReport bundles the text measurements returned alongside a score.
type analysisReport struct {
	Text      textstats.Stats     `json:"text"`
	Coherence textstats.Coherence `json:"coherence"`
	CopyPaste textstats.CopyPaste `json:"copy_paste"`
	TechStack textstats.TechStack `json:"tech_stack"`
}

func (s *apiServer) analyze(p types.Project) analysisReport {
	return analysisReport{
		Text:      s.analyzer.Analyze(p.AllText()),
		Coherence: s.analyzer.CheckCoherence(p.ProblemStatement, p.SolutionDescription, p.InnovationDescription),
		CopyPaste: s.analyzer.DetectCopyPaste(p.AllText()),
		TechStack: s.analyzer.AnalyzeTechStack(p.TechStack),
	}
}

// evaluate scores a submission, generates feedback, and records it on the
// leaderboard.
func (s *apiServer) evaluate(c *gin.Context) {
	start := time.Now()

	var project types.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.Error(errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	if err := s.validator.CleanAndValidate(&project); err != nil {
		c.Error(err)
		return
	}

	score := s.engine.Evaluate(project)
	s.generator.Generate(project, &score)

	rank, err := s.board.Add(&score)
	if err != nil {
		c.Error(errors.NewStorageError("Failed to record score", err))
		return
	}

	duration := time.Since(start)
	s.logger.EvaluationLogger(project.Title, project.WordCount(), score.FinalScore, score.TotalPenalty, score.Verdict, rank, duration)
	s.metrics.ObserveEvaluation(score.FinalScore, score.BuzzwordPenalty, score.VaguenessPenalty, score.OverclaimPenalty, score.AIGeneratedPenalty, duration)
	s.metrics.SetLeaderboardSize(s.board.Size())

	c.JSON(http.StatusOK, gin.H{
		"score":    score,
		"rank":     rank,
		"analysis": s.analyze(project),
	})
}

func (s *apiServer) rankings(c *gin.Context) {
	limit := s.cfg.MaxLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.Error(errors.NewValidationError("limit must be a positive integer"))
			return
		}
		if n < limit {
			limit = n
		}
	}

	entries := s.board.Rankings(limit)
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   s.board.Size(),
	})
}

func (s *apiServer) winner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"explanation": s.board.ExplainWinner(),
	})
}

func (s *apiServer) statistics(c *gin.Context) {
	c.JSON(http.StatusOK, s.board.Statistics())
}

func (s *apiServer) compare(c *gin.Context) {
	title1 := c.Query("project1")
	title2 := c.Query("project2")
	if title1 == "" || title2 == "" {
		c.Error(errors.NewValidationError("project1 and project2 query parameters are required"))
		return
	}

	comparison, err := s.board.Compare(title1, title2)
	if err != nil {
		c.Error(errors.NewNotFoundError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (s *apiServer) clear(c *gin.Context) {
	if err := s.board.Clear(); err != nil {
		c.Error(errors.NewStorageError("Failed to clear leaderboard", err))
		return
	}
	s.metrics.SetLeaderboardSize(0)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *apiServer) remove(c *gin.Context) {
	title := c.Param("title")

	removed, err := s.board.Remove(title)
	if err != nil {
		c.Error(errors.NewStorageError("Failed to remove entry", err))
		return
	}
	if !removed {
		c.Error(errors.NewNotFoundError("No leaderboard entry matches that title"))
		return
	}

	s.metrics.SetLeaderboardSize(s.board.Size())
	c.JSON(http.StatusOK, gin.H{"status": "removed", "project_title": title})
}

func (s *apiServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().Format(time.RFC3339),
		"store":       s.cfg.StoreBackend,
		"leaderboard": s.board.Size(),
	})
}
