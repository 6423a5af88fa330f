package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

const (
	rateLimitedName          = "rate-limited"
	defaultRequestsPerMinute = 30
)

// rateLimitedProvider wraps a DataProvider with a shared token bucket.
// Roster and career calls draw from the same budget since they hit the same upstream.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that allows at most requestsPerMinute upstream calls.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, requestsPerMinute int, logger *slog.Logger) DataProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRoster(ctx)
}

func (p *rateLimitedProvider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited career fetch", logging.FieldPlayerID, playerID)
	return p.next.FetchCareer(ctx, playerID)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		var logger *slog.Logger
		if p != nil {
			logger = p.logger
		}
		logWithProvider(ctx, logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
