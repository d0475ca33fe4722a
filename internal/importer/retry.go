package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/cerego-backend/internal/domain"
)

// Retryer re-runs an operation on transient failures with exponential
// backoff. What counts as transient is the caller's decision, injected
// as retryIf — the retryer itself knows nothing about transports.
type Retryer struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	retryIf     func(error) bool
}

// NewRetryer builds a retryer. retryIf must return false for
// application-level errors; those fail on the first attempt.
func NewRetryer(maxAttempts int, baseDelay, maxDelay time.Duration, retryIf func(error) bool) *Retryer {
	return &Retryer{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		maxDelay:    maxDelay,
		retryIf:     retryIf,
	}
}

// Do runs fn up to maxAttempts times. Non-retryable errors return
// immediately; exhausting the budget wraps the last error in
// domain.ErrMaxRetries. Backoff doubles from baseDelay up to maxDelay
// and aborts early when ctx is cancelled.
func (r *Retryer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !r.retryIf(lastErr) {
			return lastErr
		}
		if attempt == r.maxAttempts {
			break
		}

		if err := sleep(ctx, r.backoff(attempt)); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", domain.ErrMaxRetries, r.maxAttempts, lastErr)
}

// backoff returns the delay before the given attempt's retry:
// baseDelay doubling per attempt, capped at maxDelay.
func (r *Retryer) backoff(attempt int) time.Duration {
	delay := r.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= r.maxDelay {
			return r.maxDelay
		}
	}
	if delay > r.maxDelay {
		return r.maxDelay
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
