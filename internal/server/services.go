package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/app/analyst"
	playersvc "github.com/preston-bernstein/nba-stats-service/internal/app/players"
	statsvc "github.com/preston-bernstein/nba-stats-service/internal/app/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/poller"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/store"
)

// Services bundles the application services built over one provider stack.
// The HTTP server and the statsctl command share this wiring.
type Services struct {
	Provider providers.DataProvider
	Players  *playersvc.Service
	Stats    *statsvc.Service
	Analyst  *analyst.Service

	snapshots snapshotComponents
	closers   []func() error
}

// NewServices wires the configured provider, roster store, stats aggregator and analyst.
func NewServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Services {
	provider, closers := newProviderFactory(logger, recorder).build(cfg)
	return assembleServices(cfg, logger, recorder, provider, buildCompleter(cfg, logger, recorder), closers)
}

// NewServicesWithProvider wraps an injected provider with retries, skipping the cache and rate limiter.
func NewServicesWithProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider, completer llm.Completer) *Services {
	wrapped := providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	return assembleServices(cfg, logger, recorder, wrapped, completer, nil)
}

func assembleServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider, completer llm.Completer, closers []func() error) *Services {
	statsSvc := statsvc.NewService(provider, logger)
	return &Services{
		Provider:  provider,
		Players:   playersvc.NewService(store.NewMemoryStore()),
		Stats:     statsSvc,
		Analyst:   analyst.NewService(statsSvc, completer, logger),
		snapshots: buildSnapshots(cfg),
		closers:   closers,
	}
}

// NewPoller returns a roster poller that feeds the players service and the snapshot dir.
func (s *Services) NewPoller(logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *poller.Poller {
	return poller.New(s.Provider, s.Players, s.snapshots.rosterWriter(), s.snapshots.rosterLoader(), logger, recorder, interval)
}

// Close releases resources opened by the provider stack.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
