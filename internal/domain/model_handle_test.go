package domain

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandle struct {
	acquired atomic.Int32
	failures atomic.Int32
}

func (h *countingHandle) Acquire(context.Context) error {
	if h.failures.Load() > 0 {
		h.failures.Add(-1)
		return errors.New("model server not ready")
	}

	h.acquired.Add(1)

	return nil
}

func (h *countingHandle) Infer(_ context.Context, prompt string, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		out[i] = prompt
	}

	return out, nil
}

func TestSharedModelHandle_AcquiresOnce(t *testing.T) {
	inner := &countingHandle{}
	shared := NewSharedModelHandle(inner)

	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			completions, err := shared.Infer(context.Background(), "p", 2)
			assert.NoError(t, err)
			assert.Len(t, completions, 2)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), inner.acquired.Load())
}

func TestSharedModelHandle_RetriesFailedAcquire(t *testing.T) {
	inner := &countingHandle{}
	inner.failures.Store(1)

	shared := NewSharedModelHandle(inner)

	err := shared.Acquire(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire model")

	require.NoError(t, shared.Acquire(context.Background()))
	require.NoError(t, shared.Acquire(context.Background()))
	assert.Equal(t, int32(1), inner.acquired.Load())
}
