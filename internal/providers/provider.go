package providers

import (
	"context"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// RosterProvider fetches the league-wide player roster.
type RosterProvider interface {
	FetchRoster(ctx context.Context) ([]players.Player, error)
}

// CareerProvider fetches a player's raw per-season career records.
// Records are returned as reported upstream; aggregation happens in the stats domain.
type CareerProvider interface {
	FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	RosterProvider
	CareerProvider
}
