// Package monitoring holds the structured logger and Prometheus metrics for
// the judging service.
package monitoring

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog with domain-specific log helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger writing to stdout at the given level
// (debug, info, warn, error; unknown values fall back to info).
func NewLogger(level string) *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RequestLogger logs one HTTP request.
func (l *Logger) RequestLogger(method, path, ip string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// EvaluationLogger logs one completed project evaluation.
func (l *Logger) EvaluationLogger(title string, wordCount int, finalScore, totalPenalty float64, verdict string, rank int, duration time.Duration) {
	l.Info("Evaluation Completed",
		"project_title", title,
		"word_count", wordCount,
		"final_score", finalScore,
		"total_penalty", totalPenalty,
		"verdict", verdict,
		"rank", rank,
		"duration_ms", duration.Milliseconds(),
	)
}
