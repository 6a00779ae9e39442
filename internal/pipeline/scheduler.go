package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler re-runs the pipeline on a fixed interval, picking up lines appended to
// the source files since the last run. A failed run is logged and retried on the
// next tick.
type Scheduler struct {
	interval time.Duration
	pipeline *Pipeline
}

// NewScheduler creates a scheduler for p. interval must be positive.
func NewScheduler(interval time.Duration, p *Pipeline) *Scheduler {
	return &Scheduler{interval: interval, pipeline: p}
}

// Start runs until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting pipeline scheduler", "interval", s.interval)

	for {
		select {
		case <-ticker.C:
			if _, err := s.pipeline.Run(ctx); err != nil {
				// Context cancellation surfaces here as a failed run; Done is handled below.
				if ctx.Err() != nil {
					continue
				}
				slog.Error("[Scheduler] Pipeline run failed", "error", err)
			}
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}
