// Package jsonl reads and writes line-delimited JSON files of a single record type.
package jsonl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Writer appends records of type T to a JSONL file. It is safe for concurrent use.
type Writer[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Close() error
}

type writerImpl[T any] struct {
	path    string
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
	length  uint64
}

// Create truncates (or creates) path and returns a Writer onto it. Parent directories are
// created as needed.
func Create[T any](path string) (Writer[T], error) {
	return open[T](path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// OpenAppend returns a Writer that appends to path, creating it when missing.
func OpenAppend[T any](path string) (Writer[T], error) {
	return open[T](path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func open[T any](path string, flag int) (Writer[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create output directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// #nosec G304 - path is an operator-chosen output file
	file, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		slog.Error("failed to open jsonl file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open jsonl file: %w", err)
	}

	encoder := json.NewEncoder(file)
	// Prompts carry sentinel tokens such as <fim_prefix>; keep them readable.
	encoder.SetEscapeHTML(false)

	slog.Debug("opened jsonl writer", "path", path)

	return &writerImpl[T]{
		path:    path,
		file:    file,
		encoder: encoder,
	}, nil
}

// Append implements Writer.
func (w *writerImpl[T]) Append(item T) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(item); err != nil {
		slog.Error("failed to encode record", "path", w.path, "index", w.length, "error", err)
		return fmt.Errorf("failed to encode record: %w", err)
	}

	w.length++

	return nil
}

// AppendBatch implements Writer.
func (w *writerImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := w.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Len implements Writer.
func (w *writerImpl[T]) Len() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.length
}

// Path implements Writer.
func (w *writerImpl[T]) Path() string {
	return w.path
}

// Close implements Writer.
func (w *writerImpl[T]) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	if err := w.file.Close(); err != nil {
		slog.Error("failed to close jsonl file", "path", w.path, "error", err)
		return err
	}

	w.file = nil
	slog.Debug("closed jsonl writer", "path", w.path, "length", w.length)

	return nil
}

// Range decodes path record by record and calls fn for each until fn fails.
func Range[T any](path string, fn func(index uint64, item T) error) error {
	// #nosec G304 - path is an operator-chosen input file
	file, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open jsonl file for range", "path", path, "error", err)
		return fmt.Errorf("failed to open jsonl file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	decoder := json.NewDecoder(file)

	for index := uint64(0); ; index++ {
		var item T

		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			slog.Error("failed to decode record", "path", path, "index", index, "error", err)
			return fmt.Errorf("failed to decode record %d: %w", index, err)
		}

		if err := fn(index, item); err != nil {
			return err
		}
	}
}

// ReadAll loads every record of path.
func ReadAll[T any](path string) ([]T, error) {
	var items []T

	err := Range(path, func(_ uint64, item T) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
