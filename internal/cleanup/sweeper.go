// Package cleanup runs the artifact retention sweep in the background.
package cleanup

import (
	"context"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/store"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

type Sweeper struct {
	artifacts store.ArtifactStore
	retention time.Duration
	interval  time.Duration
	logger    *logging.Logger
}

// NewSweeper sweeps artifacts older than retention. The sweep interval is a
// fraction of the window so expired artifacts don't linger long past it.
func NewSweeper(artifacts store.ArtifactStore, retention time.Duration) *Sweeper {
	interval := retention / 6
	if interval < time.Minute {
		interval = time.Minute
	}
	return &Sweeper{
		artifacts: artifacts,
		retention: retention,
		interval:  interval,
		logger:    logging.NewLogger("Sweeper"),
	}
}

// Run blocks until ctx is cancelled. Call it in its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("Retention sweeper running", "retention", s.retention, "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Retention sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	removed, err := s.artifacts.Sweep(ctx, time.Now().Add(-s.retention))
	if err != nil {
		s.logger.Error("Sweep failed", "error", err)
		return
	}
	if removed > 0 {
		s.logger.Info("Sweep complete", "removed", removed)
	}
}
