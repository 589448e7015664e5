package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks failures to reach a remote cache backend.
var ErrNetwork = errors.New("cache backend unreachable")

// retryPolicy retries transient backend failures with exponential backoff.
type retryPolicy struct {
	attempts int
	delay    time.Duration
	maxDelay time.Duration
}

// defaultRetry is a variable so tests can shorten the delays.
var defaultRetry = retryPolicy{attempts: 3, delay: 200 * time.Millisecond, maxDelay: 2 * time.Second}

func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	delay := p.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) || attempt == p.attempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay = min(2*delay, p.maxDelay)
	}
}

// RetryWithBackoff calls fn until it succeeds, fails with an error not
// marked by [Retryable], or runs out of attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return defaultRetry.do(ctx, fn)
}

type retryableError struct{ err error }

func (e retryableError) Error() string { return e.err.Error() }
func (e retryableError) Unwrap() error { return e.err }

// Retryable marks err as transient. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryableError{err}
}

// IsRetryable reports whether err, or any error it wraps, was marked by
// [Retryable].
func IsRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}
