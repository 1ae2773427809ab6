package backend

import (
	"context"
	"errors"
	"time"
)

// retry calls fn up to attempts times. Attempt i waits (i+1)*interval after
// failing, so concurrent restarts spread out instead of stampeding.
func retry(ctx context.Context, attempts int, interval time.Duration, fn func(context.Context) error) error {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}
	return errors.Join(ErrConnectionFailed, lastErr)
}
