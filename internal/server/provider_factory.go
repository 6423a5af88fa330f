package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/providers/cache"
)

// providerFactory assembles the provider with shared wrappers:
// rate limit (upstream only), then retry, then the optional career cache outermost.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped provider and any closers for resources it opened.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, []func() error) {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)

	next := base
	if name == "nbastats" {
		next = providers.NewRateLimitedProvider(next, cfg.NBAStats.RequestsPerMinute, f.logger)
	}
	next = providers.NewRetryingProvider(next, f.logger, f.metrics, name, 0, 0)
	return f.withCache(cfg, next)
}

func (f providerFactory) withCache(cfg config.Config, next providers.DataProvider) (providers.DataProvider, []func() error) {
	if cfg.Cache.RedisURL == "" {
		return next, nil
	}
	store, err := cache.NewRedisStore(cfg.Cache.RedisURL)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("career cache disabled: invalid redis url", "error", err)
		}
		return next, nil
	}
	return cache.New(next, store, cfg.Cache.TTL, f.logger, f.metrics), []func() error{store.Close}
}
