package boardsync

import (
	"context"
	"log/slog"
	"time"
)

// RefreshCounts fetches the queue counters once.
func (s *Session) RefreshCounts(ctx context.Context) error {
	counts, err := s.api.QueueCounts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := counts != s.counts
	s.counts = counts
	b := s.view
	s.mu.Unlock()

	if changed {
		s.publish(b)
	}
	return nil
}

// RunCountsPoller refreshes the queue counters every interval until ctx is
// done. It runs independently of moves and never reloads the board.
func (s *Session) RunCountsPoller(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if err := s.RefreshCounts(ctx); err != nil && ctx.Err() == nil {
				s.log.WarnContext(ctx, "refresh queue counts failed", slog.String("error", err.Error()))
			}
		}
	}
}
