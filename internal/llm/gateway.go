package llm

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// Gateway wraps a provider with the retry policy: transient failures
// are retried with bounded exponential backoff up to maxAttempts,
// rotating API keys after a rate limit when the provider supports it.
// Unauthorized and InvalidResponse surface immediately.
type Gateway struct {
	provider    Completer
	maxAttempts int
	backoff     time.Duration
	logger      logger.Logger
}

func NewGateway(provider Completer, maxAttempts int, backoff time.Duration, log logger.Logger) *Gateway {
	if maxAttempts <= 0 {
		maxAttempts = 4
	}
	return &Gateway{
		provider:    provider,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		logger:      log,
	}
}

func (g *Gateway) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	delay := g.backoff
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		text, err := g.provider.Complete(ctx, system, user, maxOutput)
		if err == nil {
			return text, nil
		}
		if !IsTransient(err) {
			return "", err
		}
		lastErr = err

		if attempt == g.maxAttempts {
			break
		}

		var svcErr *ServiceError
		if errors.As(err, &svcErr) && svcErr.Kind == RateLimited {
			if rotator, ok := g.provider.(KeyRotator); ok {
				rotator.RotateKey()
			}
		}

		g.logger.Warn(ctx, "completion attempt %d/%d failed (%v), retrying in %s", attempt, g.maxAttempts, err, delay)
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}

	return "", lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
