package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
)

// BreakerProvider stops calling a backend that keeps failing, so a dead
// API key or an outage costs one timeout instead of one per request.
type BreakerProvider struct {
	inner   Provider
	breaker circuitbreaker.CircuitBreaker[*Response]
}

// WithBreaker wraps p with a circuit breaker. A zero Failures count
// returns p unchanged.
func WithBreaker(p Provider, cfg BreakerConfig, logger *slog.Logger) Provider {
	if cfg.Failures <= 0 {
		return p
	}
	if logger == nil {
		logger = slog.Default()
	}
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	return &BreakerProvider{
		inner: p,
		breaker: circuitbreaker.New[*Response](circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    cooldown,
			Timeout:     cooldown,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.Failures
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("llm circuit breaker",
					"model", p.ModelID(),
					"from", from.String(),
					"to", to.String())
			},
		}),
	}
}

func (b *BreakerProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	called := false
	resp, err := b.breaker.Execute(ctx, func(ctx context.Context) (*Response, error) {
		called = true
		return b.inner.Generate(ctx, req)
	})
	if err != nil && !called {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return resp, err
}

func (b *BreakerProvider) ModelID() string {
	return b.inner.ModelID()
}
