package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-stats-service/internal/app/analyst"
	statsvc "github.com/preston-bernstein/nba-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/poller"
)

// PlayerDirectory resolves roster entries.
type PlayerDirectory interface {
	Resolve(firstName, lastName string) (players.Player, error)
	PlayerByID(id int) (players.Player, bool)
	Ready() bool
}

// StatsService serves season listings and per-game figures.
type StatsService interface {
	Seasons(ctx context.Context, playerID int) (statsvc.SeasonList, error)
	SeasonStats(ctx context.Context, playerID int, season string) (domainstats.NormalizedStats, error)
}

// Analyst answers questions about a player season.
type Analyst interface {
	Ask(ctx context.Context, q analyst.Query) (analyst.Answer, error)
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	players  PlayerDirectory
	stats    StatsService
	analyst  Analyst
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no poller runs.
func NewHandler(players PlayerDirectory, stats StatsService, analyst Analyst, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		players:  players,
		stats:    stats,
		analyst:  analyst,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Register mounts every route on r. askMiddleware wraps only the question endpoints.
func (h *Handler) Register(r chi.Router, askMiddleware ...func(nethttp.Handler) nethttp.Handler) {
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/players", func(r chi.Router) {
		r.Get("/search", h.SearchPlayer)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.PlayerByID)
			r.Get("/seasons", h.Seasons)
			r.Get("/stats", h.SeasonStats)
			r.With(askMiddleware...).Post("/ask", h.Ask)
		})
	})

	r.Route("/tools", func(r chi.Router) {
		r.Post("/search_player", h.ToolSearchPlayer)
		r.Post("/get_player_stats", h.ToolPlayerStats)
		r.Post("/get_available_seasons", h.ToolAvailableSeasons)
	})
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: a roster must be loaded, live or from snapshot.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.players != nil && h.players.Ready() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := "roster not loaded"
	if h.statusFn != nil {
		if last := h.statusFn().LastError; last != "" {
			msg = last
		}
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes with the JSON error shape.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func playerIDParam(r *nethttp.Request) (int, bool) {
	return parsePlayerID(chi.URLParam(r, "id"))
}

func parsePlayerID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
