package domain

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// ModelHandle is a code generation model. Acquire loads or connects the model; Infer
// returns n completions for prompt.
type ModelHandle interface {
	Acquire(ctx context.Context) error
	Infer(ctx context.Context, prompt string, n int) ([]string, error)
}

// SharedModelHandle wraps a ModelHandle so that it is acquired once per process, on first
// use, however many workers call it.
type SharedModelHandle struct {
	handle ModelHandle
	mu     sync.Mutex
	ready  atomic.Bool
}

// NewSharedModelHandle wraps handle.
func NewSharedModelHandle(handle ModelHandle) *SharedModelHandle {
	return &SharedModelHandle{handle: handle}
}

// Acquire acquires the wrapped handle unless that already succeeded. A failed attempt is
// retried by the next caller.
func (s *SharedModelHandle) Acquire(ctx context.Context) error {
	if s.ready.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready.Load() {
		return nil
	}

	if err := s.handle.Acquire(ctx); err != nil {
		return fmt.Errorf("acquire model: %w", err)
	}

	s.ready.Store(true)

	return nil
}

// Infer acquires the handle if needed and delegates.
func (s *SharedModelHandle) Infer(ctx context.Context, prompt string, n int) ([]string, error) {
	if err := s.Acquire(ctx); err != nil {
		return nil, err
	}

	return s.handle.Infer(ctx, prompt, n)
}
