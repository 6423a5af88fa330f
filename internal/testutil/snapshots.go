package testutil

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// WriteRoster writes roster through w, failing the test on error.
func WriteRoster(t *testing.T, w *snapshots.Writer, roster []players.Player) {
	t.Helper()
	if err := w.WriteRosterSnapshot(roster); err != nil {
		t.Fatalf("failed to write roster snapshot: %v", err)
	}
}

// SnapshotPath returns the roster snapshot path for w.
func SnapshotPath(w *snapshots.Writer) string {
	return snapshots.RosterSnapshotPath(w.BasePath())
}
