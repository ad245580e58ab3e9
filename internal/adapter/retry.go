package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy retries an operation a bounded number of times with a fixed or doubling
// delay. The zero value runs the operation once.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Exponential bool
	// Retryable decides whether an error deserves another attempt. Nil retries everything.
	Retryable func(error) bool
}

// Do runs op until it succeeds, the attempts are exhausted, the error is not retryable or
// ctx is done.
func (p RetryPolicy) Do(ctx context.Context, name string, op func(context.Context) error) error {
	attempts := max(p.MaxAttempts, 1)
	delay := p.Delay

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		if attempt == attempts {
			break
		}

		slog.Warn("Retrying after failure", "operation", name, "attempt", attempt, "delay", delay, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		case <-time.After(delay):
		}

		if p.Exponential {
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, err)
}
