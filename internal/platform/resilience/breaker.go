package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Breaker stops calls to a dependency after consecutive failures and lets a
// bounded number of probes through once the open timeout has elapsed.
// A nil *Breaker allows every call.
type Breaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state    State
	failures int
	openedAt time.Time
	probes   int
	passed   int

	now func() time.Time
}

// NewBreaker returns nil when cfg is disabled.
func NewBreaker(cfg CircuitBreakerConfig) *Breaker {
	if !cfg.Enabled {
		return nil
	}
	return &Breaker{
		cfg:   NormalizeCircuitBreakerConfig(cfg),
		state: StateClosed,
		now:   time.Now,
	}
}

func (b *Breaker) Allow() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.state, b.probes, b.passed = StateHalfOpen, 0, 0
	}
	if b.state == StateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *Breaker) Success() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.probes = max(b.probes-1, 0)
		b.passed++
		if b.passed >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.state, b.failures, b.passed = StateClosed, 0, 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *Breaker) Failure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
	case StateHalfOpen, StateOpen:
		b.open()
	}
}

func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

// Do runs fn when the breaker allows it. Only errors for which countable
// returns true trip the breaker; a nil countable counts every error.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error, countable func(error) bool) error {
	if err := b.Allow(); err != nil {
		return err
	}
	err := fn(ctx)
	switch {
	case err == nil:
		b.Success()
	case countable == nil || countable(err):
		b.Failure()
	default:
		b.Success()
	}
	return err
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.probes, b.passed = 0, 0
}
