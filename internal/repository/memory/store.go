// Package memory provides in-memory mock stores. They simulate backend
// latency but not persistence; every constructor returns an independent
// instance so tests never share state.
package memory

import (
	"context"
	"time"
)

// DefaultLatency is the artificial delay applied when no explicit latency
// is configured.
const DefaultLatency = 300 * time.Millisecond

// wait blocks for the configured artificial latency, honoring context
// cancellation so callers can abandon a slow read.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
