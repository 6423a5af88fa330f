package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

// RouterOptions configures the middleware stack around the handlers.
type RouterOptions struct {
	Logger               *slog.Logger
	Recorder             *metrics.Recorder
	AllowedOrigins       []string
	AskRequestsPerMinute int
}

// NewRouter builds the chi router: panic recovery, request logging, CORS, then routes.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(opts.Logger, opts.Recorder))
	r.Use(newCORS(opts.AllowedOrigins).Handler)

	h.Register(r, middleware.RateLimit(opts.AskRequestsPerMinute, opts.Logger))
	return r
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
	})
}
