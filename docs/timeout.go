package docs

import (
	"context"
	"time"
)

// withTimeout races op against the deadline and the caller's context. The
// result channel is buffered so an abandoned op can still complete and be
// collected instead of blocking its goroutine forever.
func withTimeout[T any](ctx context.Context, timeout time.Duration, op func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	results := make(chan outcome, 1)
	go func() {
		value, err := op()
		results <- outcome{value: value, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-results:
		return result.value, result.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
