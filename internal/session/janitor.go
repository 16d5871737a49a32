package session

import (
	"context"
	"log/slog"
	"time"
)

type purger interface {
	PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error)
}

// Janitor periodically purges idle checkout sessions.
type Janitor struct {
	store    purger
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewJanitor(store purger, ttl, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{store: store, ttl: ttl, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, purging on every tick. Purge failures
// are logged and retried on the next tick.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := j.store.PurgeIdle(ctx, j.ttl)
			if err != nil {
				j.logger.Error("purge idle checkout sessions", "err", err)
				continue
			}
			if n > 0 {
				j.logger.Info("purged idle checkout sessions", "count", n)
			}
		}
	}
}
