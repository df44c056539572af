package ai

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the per-operation circuit breakers guarding provider
// calls. Retries are owned by the chain's attempt budget, not by the
// breaker, so a tripped circuit simply fails fast into the queue's retry
// path.
type BreakerConfig struct {
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MinRequests:      10,
		FailureRatio:     0.5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxCalls: 2,
	}
}

type Breaker struct {
	cfg BreakerConfig

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	def := DefaultBreakerConfig()
	if cfg.MinRequests == 0 {
		cfg.MinRequests = def.MinRequests
	}
	if cfg.FailureRatio <= 0 || cfg.FailureRatio > 1 {
		cfg.FailureRatio = def.FailureRatio
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	if cfg.HalfOpenMaxCalls == 0 {
		cfg.HalfOpenMaxCalls = def.HalfOpenMaxCalls
	}
	return &Breaker{cfg: cfg, breakers: make(map[string]*gobreaker.CircuitBreaker[any])}
}

// Do runs fn behind the named operation's circuit breaker.
func (b *Breaker) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	_, err := b.circuitBreaker(operation).Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	return err
}

func (b *Breaker) circuitBreaker(operation string) *gobreaker.CircuitBreaker[any] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.breakers[operation]; ok {
		return cb
	}

	settings := gobreaker.Settings{
		Name:        operation,
		MaxRequests: b.cfg.HalfOpenMaxCalls,
		Timeout:     b.cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < b.cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= b.cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			// context cancellation says nothing about provider health
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("provider circuit breaker state change",
				"operation", name, "from", from.String(), "to", to.String())
		},
	}

	cb := gobreaker.NewCircuitBreaker[any](settings)
	b.breakers[operation] = cb
	return cb
}

func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
