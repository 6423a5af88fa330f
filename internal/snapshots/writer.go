package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// Writer persists the roster snapshot and its manifest.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRosterSnapshot writes the roster atomically and refreshes the manifest.
// An unchanged roster only bumps the manifest refresh time.
func (w *Writer) WriteRosterSnapshot(roster []players.Player) error {
	if w == nil || w.basePath == "" {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return err
	}

	target := RosterSnapshotPath(w.basePath)
	changed := true
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		changed = false
	}
	if changed {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(roster, changed)
}

func (w *Writer) updateManifest(roster []players.Player, changed bool) error {
	m, _ := readManifest(ManifestPath(w.basePath))
	now := w.now().UTC()

	active := 0
	for _, p := range roster {
		if p.IsActive {
			active++
		}
	}
	m.Version = 1
	m.Roster.Players = len(roster)
	m.Roster.Active = active
	m.Roster.LastRefreshed = now
	if changed || m.Roster.LastChanged.IsZero() {
		m.Roster.LastChanged = now
	}
	return writeManifest(w.basePath, m)
}
