package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(now *time.Time) *Breaker {
	b := NewBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestBreaker_Transitions(t *testing.T) {
	now := time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.Failure()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.Failure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.Success()
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	b.Failure()
	b.Failure()
	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe: %v", err)
	}
	b.Failure()
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestBreaker_DoSkipsUncountableErrors(t *testing.T) {
	now := time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	notFound := errors.New("not found")

	for i := 0; i < 3; i++ {
		err := b.Do(context.Background(), func(context.Context) error { return notFound }, func(err error) bool {
			return !errors.Is(err, notFound)
		})
		if !errors.Is(err, notFound) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("uncountable errors must not open the breaker, got %s", state)
	}
}

func TestBreaker_NilAllowsEverything(t *testing.T) {
	t.Parallel()

	b := NewBreaker(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	for i := 0; i < 10; i++ {
		b.Failure()
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("nil breaker rejected call: %v", err)
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	t.Parallel()

	permanent := errors.New("bad request")
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 3, Backoff: func(int) time.Duration { return 0 }},
		func(err error) bool { return !errors.Is(err, permanent) },
		func(context.Context, int) error {
			calls++
			return permanent
		})
	if !errors.Is(err, permanent) || calls != 1 {
		t.Fatalf("unexpected retry result: err=%v calls=%d", err, calls)
	}
}

func TestRetry_ExhaustsPolicy(t *testing.T) {
	t.Parallel()

	transient := errors.New("503")
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 2, Backoff: func(int) time.Duration { return time.Millisecond }}, nil,
		func(_ context.Context, attempt int) error {
			calls++
			if attempt == 2 {
				return nil
			}
			return transient
		})
	if err != nil || calls != 3 {
		t.Fatalf("unexpected retry result: err=%v calls=%d", err, calls)
	}
}

func TestRetry_HonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	err := Retry(ctx, RetryPolicy{MaxRetries: 5, Backoff: func(int) time.Duration { return time.Hour }}, nil,
		func(context.Context, int) error {
			cancel()
			return errors.New("transient")
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
