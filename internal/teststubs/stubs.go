package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Roster  []players.Player
	Careers map[int][]stats.RawSeasonRecord
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchRoster returns the configured roster and error while tracking calls.
func (s *StubProvider) FetchRoster(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.notify()
	s.Calls.Add(1)
	return s.Roster, s.Err
}

// FetchCareer returns the configured career for playerID and error while tracking calls.
func (s *StubProvider) FetchCareer(ctx context.Context, playerID int) ([]stats.RawSeasonRecord, error) {
	_ = ctx
	s.notify()
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Careers[playerID], nil
}

func (s *StubProvider) notify() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Roster  []players.Player
	LoadErr error
}

// LoadRoster returns the configured roster, or an error when none is set.
func (s *StubSnapshotStore) LoadRoster() ([]players.Player, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Roster == nil {
		return nil, errors.New("snapshot not found")
	}
	return s.Roster, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written [][]players.Player
	Err     error
}

// WriteRosterSnapshot records the roster for verification in tests.
func (w *StubSnapshotWriter) WriteRosterSnapshot(roster []players.Player) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Written = append(w.Written, roster)
	return nil
}

// Writes returns how many snapshots were recorded.
func (w *StubSnapshotWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}
