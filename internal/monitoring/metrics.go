package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry so
// the /metrics endpoint exposes only what we register.
type Metrics struct {
	registry *prometheus.Registry

	evaluationsTotal   prometheus.Counter
	evaluationDuration prometheus.Histogram
	finalScores        prometheus.Histogram
	penaltiesApplied   *prometheus.CounterVec
	leaderboardSize    prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		evaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hackjudge",
			Name:      "evaluations_total",
			Help:      "Total project evaluations performed.",
		}),
		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hackjudge",
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of a full evaluation including feedback generation.",
			Buckets:   prometheus.DefBuckets,
		}),
		finalScores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hackjudge",
			Name:      "final_score",
			Help:      "Distribution of final scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		penaltiesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackjudge",
			Name:      "penalties_applied_total",
			Help:      "Evaluations where a penalty type fired.",
		}, []string{"penalty"}),
		leaderboardSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "hackjudge",
			Name:      "leaderboard_size",
			Help:      "Current number of leaderboard entries.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hackjudge",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path, and status.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hackjudge",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveEvaluation records one completed evaluation.
func (m *Metrics) ObserveEvaluation(finalScore float64, buzzword, vagueness, overclaim, aiGenerated float64, duration time.Duration) {
	m.evaluationsTotal.Inc()
	m.evaluationDuration.Observe(duration.Seconds())
	m.finalScores.Observe(finalScore)

	if buzzword > 0 {
		m.penaltiesApplied.WithLabelValues("buzzword").Inc()
	}
	if vagueness > 0 {
		m.penaltiesApplied.WithLabelValues("vagueness").Inc()
	}
	if overclaim > 0 {
		m.penaltiesApplied.WithLabelValues("overclaim").Inc()
	}
	if aiGenerated > 0 {
		m.penaltiesApplied.WithLabelValues("ai_generated").Inc()
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetLeaderboardSize updates the board size gauge.
func (m *Metrics) SetLeaderboardSize(n int) {
	m.leaderboardSize.Set(float64(n))
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
