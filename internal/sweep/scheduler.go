package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/reclaim-app/reclaim/pkg/lifecycle"
)

// Scheduler runs the sweep on a fixed interval until shutdown.
type Scheduler struct {
	sys      System
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a Scheduler with the given system and interval.
func NewScheduler(sys System, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sys:      sys,
		interval: interval,
		logger:   logger.With("system", "sweep.scheduler"),
	}
}

// Start launches the ticker loop and registers it with the lifecycle
// coordinator. Shutdown waits for any in-flight sweep to finish.
func (s *Scheduler) Start(lc *lifecycle.Coordinator) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.run(lc.Context())
	}()

	lc.OnShutdown(func() {
		<-done
		s.logger.Info("sweep scheduler stopped")
	})
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweep scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.sys.Run(ctx); err != nil {
				s.logger.Error("scheduled sweep failed", "error", err)
			}
		}
	}
}
