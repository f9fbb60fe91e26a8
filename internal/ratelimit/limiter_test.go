package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowIPWithinBudget(t *testing.T) {
	l := NewLimiter(Config{IPLimitPerMin: 60, BurstMultiplier: 2})
	defer l.Close()

	result := l.AllowIP("203.0.113.1")
	assert.True(t, result.Allowed)
	assert.Equal(t, 60, result.Limit)
	assert.Zero(t, result.RetryAfter)
}

func TestAllowIPExhaustsBurst(t *testing.T) {
	// 1 request/min with the minimum burst of 5.
	l := NewLimiter(Config{IPLimitPerMin: 1, BurstMultiplier: 1})
	defer l.Close()

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.AllowIP("203.0.113.2").Allowed {
			allowed++
		}
	}

	assert.Equal(t, 5, allowed)

	denied := l.AllowIP("203.0.113.2")
	assert.False(t, denied.Allowed)
	assert.Positive(t, denied.RetryAfter)
}

func TestLimiterIsolatesIPs(t *testing.T) {
	l := NewLimiter(Config{IPLimitPerMin: 1, BurstMultiplier: 1})
	defer l.Close()

	for i := 0; i < 10; i++ {
		l.AllowIP("203.0.113.3")
	}

	assert.True(t, l.AllowIP("203.0.113.4").Allowed)
	assert.Equal(t, 2, l.Size())
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewLimiter(Config{IPLimitPerMin: 1, BurstMultiplier: 1})
	defer l.Close()

	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	var lastCode int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		lastCode = w.Code

		require.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
