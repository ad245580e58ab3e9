package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// EvaluationCache stores evaluation verdicts keyed by (benchmark, bug, sha256(generation)).
type EvaluationCache interface {
	Get(ctx context.Context, benchmark, bug, generation string) (m.EvaluationResult, bool, error)
	// Put stores result unless an entry already exists. A differing existing entry is
	// logged and kept.
	Put(ctx context.Context, benchmark, bug, generation string, result m.EvaluationResult) error
}

type fileEvaluationCache struct {
	root      string
	lockRetry time.Duration
}

// NewEvaluationCache constructs a file-backed EvaluationCache rooted at root.
func NewEvaluationCache(root string) EvaluationCache {
	return &fileEvaluationCache{root: root, lockRetry: 50 * time.Millisecond}
}

// GenerationKey is the hex sha256 of a generation.
func GenerationKey(generation string) string {
	sum := sha256.Sum256([]byte(generation))
	return hex.EncodeToString(sum[:])
}

func (c *fileEvaluationCache) entryPath(benchmark, bug, generation string) string {
	return filepath.Join(c.root, benchmark, bug, GenerationKey(generation))
}

func (c *fileEvaluationCache) Get(_ context.Context, benchmark, bug, generation string) (m.EvaluationResult, bool, error) {
	// #nosec G304 - path is derived from the cache root and a hash
	raw, err := os.ReadFile(c.entryPath(benchmark, bug, generation))
	if errors.Is(err, os.ErrNotExist) {
		return m.EvaluationResult{}, false, nil
	}

	if err != nil {
		return m.EvaluationResult{}, false, fmt.Errorf("read cache entry: %w", err)
	}

	var result m.EvaluationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return m.EvaluationResult{}, false, fmt.Errorf("decode cache entry: %w", err)
	}

	return result, true, nil
}

func (c *fileEvaluationCache) Put(ctx context.Context, benchmark, bug, generation string, result m.EvaluationResult) error {
	path := c.entryPath(benchmark, bug, generation)
	dir := filepath.Dir(path)

	// MkdirAll tolerates a concurrent creator.
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".lock"))

	locked, err := lock.TryLockContext(ctx, c.lockRetry)
	if err != nil {
		return fmt.Errorf("lock cache dir %s: %w", dir, err)
	}

	if !locked {
		return fmt.Errorf("lock cache dir %s: not acquired", dir)
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Error("Failed to unlock cache dir", "dir", dir, "error", err)
		}
	}()

	// #nosec G304 - path is derived from the cache root and a hash
	existing, err := os.ReadFile(path)
	if err == nil {
		if !sameJSON(existing, encoded) {
			slog.Error("Cache inconsistency: keeping existing entry",
				"benchmark", benchmark, "bug", bug, "key", filepath.Base(path))
		}

		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read cache entry: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}

	return nil
}

func sameJSON(a, b []byte) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return bytes.Equal(a, b)
	}

	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
