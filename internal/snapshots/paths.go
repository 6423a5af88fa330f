package snapshots

import "path/filepath"

const (
	rosterFile   = "roster.json"
	manifestFile = "manifest.json"
)

// RosterSnapshotPath builds the path to the roster snapshot under basePath.
func RosterSnapshotPath(basePath string) string {
	return filepath.Join(basePath, rosterFile)
}

// ManifestPath builds the path to the snapshot manifest under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
