package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// RateLimit rejects requests with 429 once the shared budget of requestsPerMinute is spent.
// A non-positive budget disables the limiter.
func RateLimit(requestsPerMinute int, logger *slog.Logger) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
	return rateLimitWith(limiter, logger)
}

func rateLimitWith(limiter *rate.Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				retryAfter := int(math.Ceil(delay.Seconds()))
				logging.Warn(logging.FromContext(r.Context(), logger), "request rate limited",
					slog.Int("retry_after_s", retryAfter),
				)
				body := map[string]string{"error": "too many requests"}
				if reqID := RequestIDFromContext(r.Context()); reqID != "" {
					body["requestId"] = reqID
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
