package resilience

import (
	"context"
	"fmt"
	"time"
)

// WithTimeout runs fn under a context bounded by timeout. fn must honor
// its context, but even when it does not the caller is released once the
// deadline passes; the abandoned fn keeps running on its own goroutine
// until it returns. A timeout <= 0 runs fn directly.
func WithTimeout(ctx context.Context, timeout time.Duration, name string, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}

	boundCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(boundCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-boundCtx.Done():
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", name, ctx.Err())
		}
		return fmt.Errorf("%s: %w (limit %v)", name, context.DeadlineExceeded, timeout)
	}
}
