package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p with retries.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr       error
		invalidBudget = 1 // schema failures get a single second chance
	)

	for attempt := range r.config.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidBudget) || attempt == r.config.MaxAttempts-1 {
			break
		}

		timer := time.NewTimer(r.backoff(attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether err is worth another attempt. Cancellation and
// truncation never are; invalid output is while invalidBudget lasts;
// everything else is treated as transient.
func retryable(err error, invalidBudget *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidBudget == 0 {
			return false
		}
		*invalidBudget--
	}
	return true
}

// backoff returns the wait before the attempt after the given one. Rate
// limit hints win over the computed delay.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1) // ±20% jitter
	return time.Duration(math.Max(wait, 0))
}
