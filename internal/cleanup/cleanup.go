// Package cleanup removes split sessions once they expire.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Deleter is the slice of storage.Store the sweeper needs.
type Deleter interface {
	DeleteSessionsBefore(ctx context.Context, cutoff int64) (int64, error)
}

// Sweeper periodically deletes sessions idle for longer than the TTL.
type Sweeper struct {
	store    Deleter
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	// OnSwept is called with the number of sessions removed by each run that removed any.
	OnSwept func(n int64)
}

func NewSweeper(store Deleter, ttl, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
	}
}

// Run sweeps once immediately and then every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	slog.Info("Session cleanup started", "ttl", s.ttl, "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.SweepOnce(ctx)
		select {
		case <-ctx.Done():
			slog.Info("Session cleanup stopped")
			return
		case <-ticker.C:
		}
	}
}

// SweepOnce deletes expired sessions and returns how many were removed.
// Errors are logged; the next run tries again.
func (s *Sweeper) SweepOnce(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.ttl)
	n, err := s.store.DeleteSessionsBefore(ctx, cutoff.Unix())
	if err != nil {
		slog.Error("Failed to delete expired sessions", "error", err)
		return 0
	}
	if n > 0 {
		slog.Info("Deleted expired sessions", "count", n, "cutoff", cutoff.Format(time.RFC3339))
		if s.OnSwept != nil {
			s.OnSwept(n)
		}
	}
	return n
}
