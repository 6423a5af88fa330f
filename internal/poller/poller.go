package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

const defaultInterval = 6 * time.Hour

var errEmptyRoster = errors.New("provider returned an empty roster")

// RosterSink receives refreshed rosters.
type RosterSink interface {
	ReplacePlayers([]players.Player)
	Ready() bool
}

// SnapshotWriter persists roster snapshots to disk.
type SnapshotWriter interface {
	WriteRosterSnapshot(roster []players.Player) error
}

// SnapshotLoader reads the last persisted roster.
type SnapshotLoader interface {
	LoadRoster() ([]players.Player, error)
}

// Poller refreshes the roster on an interval, persists it, and falls back to
// the on-disk snapshot while the upstream is failing and nothing is loaded yet.
type Poller struct {
	provider providers.RosterProvider
	sink     RosterSink
	writer   SnapshotWriter
	loader   SnapshotLoader
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	FromSnapshot        bool
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. writer and loader may be nil.
func New(provider providers.RosterProvider, sink RosterSink, writer SnapshotWriter, loader SnapshotLoader, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		loader:   loader,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.WarmFromSnapshot()
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// WarmFromSnapshot loads the persisted roster into an empty sink.
// It reports whether a snapshot was applied.
func (p *Poller) WarmFromSnapshot() bool {
	if p.loader == nil || p.sink == nil || p.sink.Ready() {
		return false
	}
	roster, err := p.loader.LoadRoster()
	if err != nil {
		p.logWarn("roster snapshot unavailable", err)
		return false
	}
	p.sink.ReplacePlayers(roster)
	p.statusMu.Lock()
	p.status.FromSnapshot = true
	p.statusMu.Unlock()
	p.logInfo("roster loaded from snapshot", logging.FieldCount, len(roster))
	return true
}

// Refresh runs a single roster fetch outside the ticker loop.
func (p *Poller) Refresh(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	var roster []players.Player
	var err error
	if p.provider == nil {
		err = providers.ErrProviderUnavailable
	} else {
		roster, err = p.provider.FetchRoster(ctx)
	}
	if err == nil && len(roster) == 0 {
		err = errEmptyRoster
	}
	p.metrics.RecordRosterRefresh(time.Since(start), err)
	if err != nil {
		p.logError("roster refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		p.WarmFromSnapshot()
		return err
	}

	if p.sink != nil {
		p.sink.ReplacePlayers(roster)
	}
	if p.writer != nil {
		if writeErr := p.writer.WriteRosterSnapshot(roster); writeErr != nil {
			p.logError("roster snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed roster",
		logging.FieldCount, len(roster),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logWarn(msg string, err error) {
	if p.logger != nil {
		p.logger.Warn(msg, "error", err)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.FromSnapshot = false
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.RosterProvider {
	return p.provider
}
