package config

// SnapshotConfig controls where the roster snapshot is persisted.
type SnapshotConfig struct {
	Dir string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{Dir: envOrDefault(envSnapshotDir, defaultSnapshotDir)}
}
