package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventive-admin/internal/repositories"
)

const heartbeatKey = "inventive:worker:heartbeat"

// HeartbeatWorker periodically reports liveness. It runs alongside the
// request path but never coordinates with it. The cache is optional; when
// present the last beat is also recorded under heartbeatKey.
type HeartbeatWorker struct {
	cache    repositories.CacheRepositoryInterface
	logger   *zap.Logger
	interval time.Duration
}

func NewHeartbeatWorker(cache repositories.CacheRepositoryInterface, logger *zap.Logger, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		cache:    cache,
		logger:   logger,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled.
func (w *HeartbeatWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("heartbeat worker stopping")
			return
		case t := <-ticker.C:
			w.logger.Info("worker running", zap.Time("at", t))
			if w.cache != nil {
				if err := w.cache.Set(ctx, heartbeatKey, t.UTC().Format(time.RFC3339), 3*w.interval); err != nil {
					w.logger.Warn("failed to record heartbeat", zap.Error(err))
				}
			}
		}
	}
}
