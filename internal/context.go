package internal

import (
	"context"
	"time"
)

// DefaultCheckTimeout bounds dependency probes and CLI one-shots.
const DefaultCheckTimeout = 5 * time.Second

// WithTimeout bounds ctx by d, or by DefaultCheckTimeout when d is not positive.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultCheckTimeout
	}
	return context.WithTimeout(ctx, d)
}
