// Package ratelimit provides per-IP token-bucket rate limiting for the HTTP
// API.
package ratelimit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/judgekit/hackjudge/internal/errors"
)

// Config holds rate limiter configuration.
type Config struct {
	IPLimitPerMin   int
	BurstMultiplier int
}

// DefaultConfig returns the default rate limiting configuration.
func DefaultConfig() Config {
	return Config{
		IPLimitPerMin:   60,
		BurstMultiplier: 2,
	}
}

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter keeps one token bucket per client IP. Buckets are created lazily
// and the map is swept periodically so abandoned IPs do not accumulate.
type Limiter struct {
	config Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	stop chan struct{}
}

// NewLimiter creates a limiter and starts its background sweep.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
		stop:     make(chan struct{}),
	}
	go l.sweep()
	return l
}

// AllowIP checks whether ip may make a request now.
func (l *Limiter) AllowIP(ip string) *Result {
	l.mu.Lock()
	limiter, exists := l.limiters[ip]
	if !exists {
		rps := rate.Limit(float64(l.config.IPLimitPerMin) / 60.0)
		burst := l.config.IPLimitPerMin * l.config.BurstMultiplier
		if burst < 5 {
			burst = 5
		}
		limiter = rate.NewLimiter(rps, burst)
		l.limiters[ip] = limiter
	}
	l.mu.Unlock()

	allowed := limiter.Allow()

	remaining := int(limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   allowed,
		Limit:     l.config.IPLimitPerMin,
		Remaining: remaining,
	}
	if !allowed {
		result.RetryAfter = time.Minute
	}
	return result
}

// Middleware returns a gin handler enforcing the per-IP limit.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := l.AllowIP(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))

		if !result.Allowed {
			retryAfter := result.RetryAfter.Round(time.Second).String()
			c.Header("Retry-After", retryAfter)
			appErr := errors.NewRateLimitError(retryAfter)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}

// Close stops the background sweep.
func (l *Limiter) Close() error {
	close(l.stop)
	return nil
}

// Size returns the number of tracked IPs.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// sweep drops all buckets when the map grows past a threshold. A full reset
// briefly refills everyone's budget, which is acceptable at this scale.
func (l *Limiter) sweep() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			if len(l.limiters) > 1000 {
				slog.Info("Resetting rate limiter buckets", "count", len(l.limiters))
				l.limiters = make(map[string]*rate.Limiter)
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
