package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const defects4jPassMarker = "Failing tests: 0"

// defects4jBenchmark drives a Defects4J installation. Its patches are stored fixed ->
// buggy, so every ground truth is inverted.
type defects4jBenchmark struct {
	commandBenchmark
}

func (b *defects4jBenchmark) executable() string {
	local := filepath.Join(b.root, "framework", "bin", "defects4j")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	return "defects4j"
}

// Bugs scans framework/projects/<PID>/patches/<BID>.src.patch.
func (b *defects4jBenchmark) Bugs(ctx context.Context) ([]m.Bug, error) {
	pattern := filepath.Join(b.root, "framework", "projects", "*", "patches", "*.src.patch")

	patches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan defects4j patches: %w", err)
	}

	bugs := make([]m.Bug, 0, len(patches))

	for _, patch := range patches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pid := filepath.Base(filepath.Dir(filepath.Dir(patch)))
		bid := strings.TrimSuffix(filepath.Base(patch), ".src.patch")

		groundTruth, err := readTextFile(patch)
		if err != nil {
			slog.Error("Failed to read ground truth", "benchmark", b.name, "patch", patch, "error", err)
			continue
		}

		triggers := filepath.Join(b.root, "framework", "projects", pid, "trigger_tests", bid)

		failing, err := b.failingTests(triggers)
		if err != nil {
			slog.Warn("Failed to read trigger tests", "benchmark", b.name, "path", triggers, "error", err)
		}

		bugs = append(bugs, m.Bug{
			Identifier:          pid + "-" + bid,
			Benchmark:           b.name,
			GroundTruth:         groundTruth,
			GroundTruthInverted: true,
			FailingTests:        failing,
		})
	}

	sort.Slice(bugs, func(i, j int) bool {
		return bugs[i].Identifier < bugs[j].Identifier
	})

	return bugs, nil
}

// failingTests parses a trigger_tests file: "--- Class::method" headers, each followed by
// the failure cause and stack trace.
func (b *defects4jBenchmark) failingTests(path string) (map[string]string, error) {
	text, err := readTextFile(path)
	if err != nil {
		return nil, err
	}

	return parseTriggerTests(text), nil
}

func parseTriggerTests(text string) map[string]string {
	tests := make(map[string]string)

	var (
		current string
		cause   []string
	)

	flush := func() {
		if current != "" {
			tests[current] = strings.TrimSpace(strings.Join(cause, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := strings.CutPrefix(line, "--- "); ok {
			flush()

			current = strings.TrimSpace(name)
			cause = nil

			continue
		}

		cause = append(cause, line)
	}

	flush()

	return tests
}

func splitDefects4JID(identifier string) (string, string, error) {
	idx := strings.LastIndex(identifier, "-")
	if idx <= 0 || idx == len(identifier)-1 {
		return "", "", fmt.Errorf("malformed defects4j identifier %q", identifier)
	}

	return identifier[:idx], identifier[idx+1:], nil
}

func (b *defects4jBenchmark) Checkout(ctx context.Context, bug m.Bug, path m.Path, fixed bool) error {
	pid, bid, err := splitDefects4JID(bug.Identifier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCheckout, err)
	}

	version := bid + "b"
	if fixed {
		version = bid + "f"
	}

	command := ExpandCommand("{d4j} checkout -p {pid} -v {version} -w {path}", map[string]string{
		"d4j":     b.executable(),
		"pid":     pid,
		"version": version,
		"path":    string(path),
	})

	return b.checkout(ctx, bug, b.root, command, path)
}

func (b *defects4jBenchmark) Compile(ctx context.Context, bug m.Bug, path m.Path) m.CompileResult {
	command := ExpandCommand("{d4j} compile -w {path}", map[string]string{"d4j": b.executable(), "path": string(path)})
	result := b.run(ctx, bug, path, command, b.timeouts.Compile)

	return m.CompileResult{Passing: m.Bool(result.Succeeded()), Output: result.Output}
}

func (b *defects4jBenchmark) Test(ctx context.Context, bug m.Bug, path m.Path) m.TestResult {
	command := ExpandCommand("{d4j} test -w {path}", map[string]string{"d4j": b.executable(), "path": string(path)})
	result := b.run(ctx, bug, path, command, b.timeouts.Test)

	passing := result.Succeeded() && strings.Contains(result.Output, defects4jPassMarker)

	return m.TestResult{Passing: passing, Output: result.Output}
}
