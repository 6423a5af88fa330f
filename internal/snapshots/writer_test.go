package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

func sampleRoster() []players.Player {
	return []players.Player{
		{ID: 201939, FirstName: "Stephen", LastName: "Curry", IsActive: true},
		{ID: 893, FirstName: "Michael", LastName: "Jordan", IsActive: false},
	}
}

func TestWriterRoundTripsThroughStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w := NewWriter(dir)

	if err := w.WriteRosterSnapshot(sampleRoster()); err != nil {
		t.Fatalf("expected write success, got %v", err)
	}

	store := NewFSStore(w.BasePath())
	roster, err := store.LoadRoster()
	if err != nil {
		t.Fatalf("expected roster to load, got %v", err)
	}
	if len(roster) != 2 || roster[1].LastName != "Jordan" {
		t.Fatalf("unexpected roster %+v", roster)
	}

	m, err := store.LoadManifest()
	if err != nil {
		t.Fatalf("expected manifest, got %v", err)
	}
	if m.Version != 1 || m.Roster.Players != 2 || m.Roster.Active != 1 {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestWriterUnchangedRosterKeepsLastChanged(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(6 * time.Hour)

	w.now = func() time.Time { return first }
	if err := w.WriteRosterSnapshot(sampleRoster()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	info, err := os.Stat(RosterSnapshotPath(dir))
	if err != nil {
		t.Fatalf("stat roster: %v", err)
	}

	w.now = func() time.Time { return second }
	if err := w.WriteRosterSnapshot(sampleRoster()); err != nil {
		t.Fatalf("second write: %v", err)
	}
	again, _ := os.Stat(RosterSnapshotPath(dir))
	if !again.ModTime().Equal(info.ModTime()) {
		t.Fatalf("expected unchanged roster file to be left alone")
	}

	m, _ := NewFSStore(dir).LoadManifest()
	if !m.Roster.LastRefreshed.Equal(second) || !m.Roster.LastChanged.Equal(first) {
		t.Fatalf("unexpected manifest times %+v", m.Roster)
	}

	w.now = func() time.Time { return second.Add(time.Hour) }
	if err := w.WriteRosterSnapshot(sampleRoster()[:1]); err != nil {
		t.Fatalf("third write: %v", err)
	}
	m, _ = NewFSStore(dir).LoadManifest()
	if !m.Roster.LastChanged.Equal(second.Add(time.Hour)) || m.Roster.Players != 1 {
		t.Fatalf("expected changed roster to bump last changed, got %+v", m.Roster)
	}
}

func TestWriterNotConfigured(t *testing.T) {
	var w *Writer
	if err := w.WriteRosterSnapshot(sampleRoster()); err == nil {
		t.Fatal("expected error for nil writer")
	}
	if w.BasePath() != "" {
		t.Fatal("expected empty base path for nil writer")
	}
	if err := NewWriter("").WriteRosterSnapshot(sampleRoster()); err == nil {
		t.Fatal("expected error for empty base path")
	}
}
