package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// ErrCheckout wraps every failure to materialise a bug's tree.
var ErrCheckout = errors.New("checkout failed")

// Benchmark kinds accepted in configuration.
const (
	KindDefects4J = "defects4j"
	KindManifest  = "manifest"
)

// BenchmarkAdapter is the contract every benchmark implements. Checkout failures are
// returned as errors; compile and test failures, including timeouts, are reported in
// the results and never as errors.
type BenchmarkAdapter interface {
	Name() string
	Bugs(ctx context.Context) ([]m.Bug, error)
	// Checkout replaces whatever is at path with the buggy or fixed tree of bug.
	Checkout(ctx context.Context, bug m.Bug, path m.Path, fixed bool) error
	Compile(ctx context.Context, bug m.Bug, path m.Path) m.CompileResult
	Test(ctx context.Context, bug m.Bug, path m.Path) m.TestResult
}

// Timeouts bounds each external step.
type Timeouts struct {
	Checkout time.Duration
	Compile  time.Duration
	Test     time.Duration
}

// BenchmarkConfig is one entry of the benchmarks configuration map.
type BenchmarkConfig struct {
	Kind string `mapstructure:"kind"`
	Root string `mapstructure:"root"`
}

// NewBenchmark builds the adapter described by cfg.
func NewBenchmark(name string, cfg BenchmarkConfig, runner CommandRunner, timeouts Timeouts, retry RetryPolicy) (BenchmarkAdapter, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("benchmark %s: root is not configured", name)
	}

	base := commandBenchmark{
		name:     name,
		root:     cfg.Root,
		runner:   runner,
		timeouts: timeouts,
		retry:    retry,
	}

	switch cfg.Kind {
	case KindDefects4J:
		return &defects4jBenchmark{commandBenchmark: base}, nil
	case KindManifest, "":
		return &manifestBenchmark{commandBenchmark: base}, nil
	default:
		return nil, fmt.Errorf("benchmark %s: unknown kind %q", name, cfg.Kind)
	}
}

// commandBenchmark holds the process plumbing shared by the adapters.
type commandBenchmark struct {
	name     string
	root     string
	runner   CommandRunner
	timeouts Timeouts
	retry    RetryPolicy
}

func (b *commandBenchmark) Name() string {
	return b.name
}

// checkout clears path and runs command until it succeeds or the retry policy gives up.
// Every attempt's error wraps ErrCheckout so retry predicates can match it.
func (b *commandBenchmark) checkout(ctx context.Context, bug m.Bug, workDir, command string, path m.Path) error {
	err := b.retry.Do(ctx, "checkout "+bug.Identifier, func(ctx context.Context) error {
		if err := os.RemoveAll(string(path)); err != nil {
			return fmt.Errorf("%w: clear %s: %w", ErrCheckout, path, err)
		}

		if err := os.MkdirAll(string(path), 0o750); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrCheckout, path, err)
		}

		result, err := b.runner.Run(ctx, workDir, command, b.timeouts.Checkout)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCheckout, err)
		}

		if !result.Succeeded() {
			return fmt.Errorf("%w: exit %d (timed out: %t): %s", ErrCheckout, result.ExitCode, result.TimedOut, tail(result.Output))
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to checkout bug", "benchmark", b.name, "bug", bug.Identifier, "path", path, "error", err)

		if !errors.Is(err, ErrCheckout) {
			err = fmt.Errorf("%w: %w", ErrCheckout, err)
		}

		return fmt.Errorf("%s: %w", bug.Identifier, err)
	}

	return nil
}

// run executes a compile or test command; a command that cannot start counts as failed.
func (b *commandBenchmark) run(ctx context.Context, bug m.Bug, path m.Path, command string, timeout time.Duration) CommandResult {
	result, err := b.runner.Run(ctx, string(path), command, timeout)
	if err != nil {
		slog.Error("Failed to run benchmark command", "benchmark", b.name, "bug", bug.Identifier, "command", command, "error", err)
		return CommandResult{ExitCode: -1, Output: err.Error()}
	}

	if result.TimedOut {
		slog.Warn("Benchmark command timed out", "benchmark", b.name, "bug", bug.Identifier, "command", command, "timeout", timeout)
	}

	return result
}

func tail(output string) string {
	const limit = 512
	if len(output) <= limit {
		return output
	}

	return "..." + output[len(output)-limit:]
}

func readTextFile(path string) (string, error) {
	// #nosec G304 - path lies inside the configured benchmark root
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text, _ := DecodeText(raw)

	return text, nil
}
