package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

const (
	keyPrefix  = "nba-stats:career:"
	defaultTTL = 6 * time.Hour
)

// ErrMiss is returned by a Store when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the byte-level key/value surface the career cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CareerCache decorates a DataProvider, caching raw career records.
// Only upstream records are cached; per-game figures are always recomputed.
// Cache failures are logged and fall through to the upstream provider.
type CareerCache struct {
	next     providers.DataProvider
	store    Store
	ttl      time.Duration
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// New wraps next with a career cache backed by store.
func New(next providers.DataProvider, store Store, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *CareerCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CareerCache{
		next:     next,
		store:    store,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// FetchRoster is not cached; the poller already keeps the roster in memory.
func (c *CareerCache) FetchRoster(ctx context.Context) ([]players.Player, error) {
	if c.next == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return c.next.FetchRoster(ctx)
}

func (c *CareerCache) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	if c.next == nil {
		return nil, providers.ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, c.logger)
	key := careerKey(playerID)

	if records, ok := c.lookup(ctx, logger, key, playerID); ok {
		return records, nil
	}

	records, err := c.next.FetchCareer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err == nil {
		err = c.store.Set(ctx, key, payload, c.ttl)
	}
	if err != nil {
		logging.Warn(logger, "career cache write failed", logging.FieldPlayerID, playerID, "err", err)
	}
	return records, nil
}

func (c *CareerCache) lookup(ctx context.Context, logger *slog.Logger, key string, playerID int) ([]stats.RawSeasonRecord, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			logging.Warn(logger, "career cache read failed", logging.FieldPlayerID, playerID, "err", err)
		}
		c.recorder.RecordCacheLookup(false)
		return nil, false
	}

	var records []stats.RawSeasonRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		logging.Warn(logger, "career cache entry unreadable", logging.FieldPlayerID, playerID, "err", err)
		c.recorder.RecordCacheLookup(false)
		return nil, false
	}
	c.recorder.RecordCacheLookup(true)
	return records, true
}

func careerKey(playerID int) string {
	return keyPrefix + strconv.Itoa(playerID)
}
