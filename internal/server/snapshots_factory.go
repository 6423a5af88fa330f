package server

import (
	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/poller"
	"github.com/preston-bernstein/nba-stats-service/internal/snapshots"
)

type snapshotComponents struct {
	store  *snapshots.FSStore
	writer *snapshots.Writer
}

// buildSnapshots returns empty components when no snapshot dir is configured.
func buildSnapshots(cfg config.Config) snapshotComponents {
	basePath := cfg.Snapshots.Dir
	if basePath == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath),
	}
}

func (c snapshotComponents) rosterWriter() poller.SnapshotWriter {
	if c.writer == nil {
		return nil
	}
	return c.writer
}

func (c snapshotComponents) rosterLoader() poller.SnapshotLoader {
	if c.store == nil {
		return nil
	}
	return c.store
}
