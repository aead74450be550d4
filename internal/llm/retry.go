package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider reissues failed requests with exponential backoff and
// jitter. A schema-invalid response is retried at most once; context
// cancellation and token-limit truncation are terminal.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps p with retry middleware.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.next.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	attempt := 0
	for {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if terminal(err, &invalidSeen) {
			return nil, err
		}
		attempt++
		if attempt >= r.cfg.MaxAttempts {
			return nil, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt-1, err)):
		}
	}
}

// terminal reports whether err must not be retried. invalidSeen tracks
// the single retry allowance for schema-invalid responses.
func terminal(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return true
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidSeen {
			return true
		}
		*invalidSeen = true
	}
	return false
}

func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	// +/-20% jitter
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}
