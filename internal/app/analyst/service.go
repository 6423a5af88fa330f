package analyst

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// StatsSource supplies per-game figures for a player season.
type StatsSource interface {
	SeasonStats(ctx context.Context, playerID int, season string) (stats.NormalizedStats, error)
}

// Query is one question about one player season. An empty Season selects the default.
type Query struct {
	PlayerID int
	Season   string
	Question string
}

// Answer carries the model's reply together with the figures it was given.
type Answer struct {
	Season string
	Answer string
	Stats  stats.NormalizedStats
}

// Service answers free-text questions about a player's season.
// Every call is independent; no conversation state is kept between questions.
type Service struct {
	stats     StatsSource
	completer llm.Completer
	logger    *slog.Logger
}

// NewService constructs a Service. A nil completer behaves as llm.Disabled.
func NewService(source StatsSource, completer llm.Completer, logger *slog.Logger) *Service {
	if completer == nil {
		completer = llm.Disabled{}
	}
	return &Service{stats: source, completer: completer, logger: logger}
}

// Ask aggregates the requested season, builds the prompt and returns the model's answer.
func (s *Service) Ask(ctx context.Context, q Query) (Answer, error) {
	if strings.TrimSpace(q.Question) == "" {
		return Answer{}, prompt.ErrEmptyQuestion
	}

	seasonStats, err := s.stats.SeasonStats(ctx, q.PlayerID, q.Season)
	if err != nil {
		return Answer{}, err
	}

	payload, err := prompt.Build(q.Question, seasonStats)
	if err != nil {
		return Answer{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	start := time.Now()
	text, err := s.completer.Complete(ctx, payload)
	if err != nil {
		return Answer{}, err
	}
	logging.Info(logger, "question answered",
		logging.FieldPlayerID, q.PlayerID,
		logging.FieldSeason, seasonStats.SeasonID,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	return Answer{Season: seasonStats.SeasonID, Answer: text, Stats: seasonStats}, nil
}
