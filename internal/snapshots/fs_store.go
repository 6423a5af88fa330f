package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadRoster() ([]players.Player, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadRoster reads {basePath}/roster.json.
// An empty snapshot is reported as an error so callers never replace a roster with nothing.
func (s *FSStore) LoadRoster() ([]players.Player, error) {
	if s == nil || s.basePath == "" {
		return nil, errors.New("snapshot store not configured")
	}
	var roster []players.Player
	if err := decodeFile(RosterSnapshotPath(s.basePath), &roster); err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, errors.New("roster snapshot is empty")
	}
	return roster, nil
}

// LoadManifest reads the snapshot manifest.
func (s *FSStore) LoadManifest() (Manifest, error) {
	if s == nil || s.basePath == "" {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	var m Manifest
	if err := decodeFile(ManifestPath(s.basePath), &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
