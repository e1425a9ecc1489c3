package resilience

import (
	"context"
	"time"
)

// Retry calls fn until it succeeds, returns a non-retryable error, the
// policy is exhausted or ctx is done. The last error is returned.
func Retry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, fn func(ctx context.Context, attempt int) error) error {
	backoff := policy.Backoff
	if backoff == nil {
		backoff = LinearBackoff(time.Second)
	}

	var lastErr error
	for attempt := 0; attempt <= max(policy.MaxRetries, 0); attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}
		if attempt >= policy.MaxRetries {
			break
		}

		timer := time.NewTimer(backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
