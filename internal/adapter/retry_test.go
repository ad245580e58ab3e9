package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Do(t *testing.T) {
	flaky := errors.New("flaky")

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		policy := RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond}

		err := policy.Do(context.Background(), "op", func(context.Context) error {
			calls++
			if calls < 3 {
				return flaky
			}

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		policy := RetryPolicy{MaxAttempts: 2, Delay: time.Millisecond, Exponential: true}

		err := policy.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return flaky
		})
		require.ErrorIs(t, err, flaky)
		assert.Equal(t, 2, calls)
	})

	t.Run("zero value runs once", func(t *testing.T) {
		calls := 0

		err := RetryPolicy{}.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return flaky
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("non-retryable error stops immediately", func(t *testing.T) {
		calls := 0
		fatal := errors.New("fatal")
		policy := RetryPolicy{
			MaxAttempts: 5,
			Retryable:   func(err error) bool { return !errors.Is(err, fatal) },
		}

		err := policy.Do(context.Background(), "op", func(context.Context) error {
			calls++
			return fatal
		})
		require.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		policy := RetryPolicy{MaxAttempts: 3, Delay: time.Hour}

		err := policy.Do(ctx, "op", func(context.Context) error {
			cancel()
			return flaky
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
