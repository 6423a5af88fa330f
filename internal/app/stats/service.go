package stats

import (
	"context"
	"log/slog"

	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// SeasonList is the set of seasons a player has records for, newest first.
type SeasonList struct {
	Seasons []string `json:"seasons"`
	Default string   `json:"defaultSeason"`
}

// Service fetches career records on demand and runs them through the aggregator.
// Nothing computed here is cached; each call reflects the latest upstream records.
type Service struct {
	provider providers.CareerProvider
	logger   *slog.Logger
}

// NewService constructs a Service backed by the given career provider.
func NewService(provider providers.CareerProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Seasons lists the seasons the player appeared in and the default selection.
func (s *Service) Seasons(ctx context.Context, playerID int) (SeasonList, error) {
	records, err := s.career(ctx, playerID)
	if err != nil {
		return SeasonList{}, err
	}
	seasons := domainstats.ListSeasons(records)
	return SeasonList{Seasons: seasons, Default: domainstats.DefaultSeason(seasons)}, nil
}

// SeasonStats returns per-game figures for one season. An empty season selects the default.
func (s *Service) SeasonStats(ctx context.Context, playerID int, season string) (domainstats.NormalizedStats, error) {
	records, err := s.career(ctx, playerID)
	if err != nil {
		return domainstats.NormalizedStats{}, err
	}
	if season == "" {
		season = domainstats.DefaultSeason(domainstats.ListSeasons(records))
	}
	return domainstats.Aggregate(records, season)
}

func (s *Service) career(ctx context.Context, playerID int) ([]domainstats.RawSeasonRecord, error) {
	if s.provider == nil {
		return nil, domainstats.NewSourceError(providers.ErrProviderUnavailable)
	}
	records, err := s.provider.FetchCareer(ctx, playerID)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "career fetch failed", logging.FieldPlayerID, playerID, "err", err)
		return nil, domainstats.NewSourceError(err)
	}
	return records, nil
}
