package testutil

import (
	"io"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/app/analyst"
	playersvc "github.com/preston-bernstein/nba-stats-service/internal/app/players"
	statsvc "github.com/preston-bernstein/nba-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/store"
)

// NewPlayersService builds a players service backed by an in-memory store preloaded with roster.
func NewPlayersService(roster []players.Player) *playersvc.Service {
	ms := store.NewMemoryStore()
	if len(roster) > 0 {
		ms.SetPlayers(roster)
	}
	return playersvc.NewService(ms)
}

// NewStatsService builds a stats service over provider with logging discarded.
func NewStatsService(provider providers.CareerProvider) *statsvc.Service {
	return statsvc.NewService(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// NewAnalystService builds an analyst over a stats service for provider.
func NewAnalystService(provider providers.CareerProvider, completer llm.Completer) *analyst.Service {
	return analyst.NewService(NewStatsService(provider), completer, nil)
}
