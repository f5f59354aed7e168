package run

import (
	"context"
	"time"
)

// Retry bounds the attempt loop of Async. Times is the number of
// retries after the first attempt, so the operation runs at most
// Times+1 times. A negative Times collapses to zero retries.
type Retry struct {
	Times      int
	WaitBefore func(attempt int) time.Duration
}

// Backoff returns a WaitBefore doubling the base delay on every failed
// attempt: base, 2*base, 4*base, ...
func Backoff(base time.Duration) func(attempt int) time.Duration {
	if base < 0 {
		base = 0
	}
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}
		return base << (attempt - 1)
	}
}

func (r Retry) attempts() int {
	if r.Times < 0 {
		return 1
	}
	return r.Times + 1
}

func (r Retry) waitFor(attempt int) time.Duration {
	if r.WaitBefore == nil {
		return 0
	}
	d := r.WaitBefore(attempt)
	if d < 0 {
		return 0
	}
	return d
}

// wait sleeps for d, returning false if ctx was cancelled first.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
