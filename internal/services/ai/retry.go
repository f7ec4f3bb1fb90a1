// File: internal/services/ai/retry.go
package ai

import (
	"context"
	"time"
)

// RetryConfig defines simple retry behavior for provider calls.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

// RetryWithBackoff executes fn until it succeeds, the attempts run out, or
// the error is not retryable (config/validation failures never are).
func RetryWithBackoff(ctx context.Context, config *RetryConfig, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if attempt < config.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.Delay):
			}
		}
	}

	return lastErr
}
