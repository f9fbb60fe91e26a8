package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/judgekit/hackjudge/internal/config"
	"github.com/judgekit/hackjudge/internal/database"
	"github.com/judgekit/hackjudge/internal/errors"
	"github.com/judgekit/hackjudge/internal/leaderboard"
	"github.com/judgekit/hackjudge/internal/monitoring"
	"github.com/judgekit/hackjudge/internal/ratelimit"
	"github.com/judgekit/hackjudge/internal/scoring"
	"github.com/judgekit/hackjudge/internal/textstats"
	"github.com/judgekit/hackjudge/internal/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := monitoring.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger.Logger)

	metrics := monitoring.NewMetrics()

	store, db, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize leaderboard store", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer errors.SafeClose(db, "database")
	}

	board, err := leaderboard.New(store)
	if err != nil {
		slog.Error("Failed to load leaderboard", "error", err)
		os.Exit(1)
	}
	metrics.SetLeaderboardSize(board.Size())

	lexicon := config.DefaultLexicon()
	engine := scoring.NewEngine(cfg.Scoring, lexicon)
	analyzer := textstats.NewAnalyzer(textstats.WithPlaceholders(lexicon.Placeholders, lexicon.TemplatePhrases))

	// A configured seed pins template wording for reproducible runs.
	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RandomSeed))
	}
	generator := scoring.NewFeedbackGenerator(config.DefaultTemplates(), rng)

	limiter := ratelimit.NewLimiter(ratelimit.Config{
		IPLimitPerMin:   cfg.IPLimitPerMin,
		BurstMultiplier: cfg.BurstMultiplier,
	})
	defer errors.SafeClose(limiter, "rate limiter")

	api := &apiServer{
		cfg:       cfg,
		engine:    engine,
		generator: generator,
		analyzer:  analyzer,
		board:     board,
		validator: validate.New(),
		logger:    logger,
		metrics:   metrics,
	}

	router := setupRouter(api, limiter, logger, metrics)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "addr", cfg.Addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

// buildStore selects the persistence backend. The sqlite backend also
// returns the database handle so main can close it on exit.
func buildStore(cfg *config.Config) (leaderboard.Store, *database.DB, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := database.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return leaderboard.NewSQLiteStore(db), db, nil
	default:
		store, err := leaderboard.NewJSONStore(cfg.LeaderboardPath)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

func setupRouter(api *apiServer, limiter *ratelimit.Limiter, logger *monitoring.Logger, metrics *monitoring.Metrics) *gin.Engine {
	router := gin.New()

	router.Use(requestObserver(logger, metrics))
	router.Use(errors.ErrorHandler())
	router.Use(errors.RecoveryHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(limiter.Middleware())

	router.GET("/health", api.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/evaluate", api.evaluate)
		v1.GET("/leaderboard", api.rankings)
		v1.GET("/leaderboard/winner", api.winner)
		v1.GET("/leaderboard/statistics", api.statistics)
		v1.GET("/leaderboard/compare", api.compare)
		v1.DELETE("/leaderboard", api.clear)
		v1.DELETE("/leaderboard/:title", api.remove)
	}

	return router
}

// requestObserver logs every request and feeds the HTTP metrics.
func requestObserver(logger *monitoring.Logger, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		logger.RequestLogger(c.Request.Method, path, c.ClientIP(), status, duration)
		metrics.ObserveRequest(c.Request.Method, path, strconv.Itoa(status), duration)
	}
}
