package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const (
	manifestFileName  = "bug.yaml"
	benchmarkFileName = "benchmark.yaml"
)

// BugManifest describes one bug of a manifest benchmark. Commands are templates over
// {path} (the work dir), {bug} (the identifier) and {dir} (the bug's manifest dir).
// Fields left empty in bug.yaml fall back to the benchmark.yaml next to the bug dirs.
type BugManifest struct {
	GroundTruth     string            `yaml:"ground_truth"`
	Inverted        *bool             `yaml:"inverted"`
	FailingTests    map[string]string `yaml:"failing_tests"`
	CheckoutBuggy   string            `yaml:"checkout_buggy"`
	CheckoutFixed   string            `yaml:"checkout_fixed"`
	Compile         string            `yaml:"compile"`
	Test            string            `yaml:"test"`
	TestPassPattern string            `yaml:"test_pass_pattern"`
}

func (b BugManifest) withDefaults(defaults BugManifest) BugManifest {
	if b.Inverted == nil {
		b.Inverted = defaults.Inverted
	}

	if b.GroundTruth == "" {
		b.GroundTruth = defaults.GroundTruth
	}

	if b.CheckoutBuggy == "" {
		b.CheckoutBuggy = defaults.CheckoutBuggy
	}

	if b.CheckoutFixed == "" {
		b.CheckoutFixed = defaults.CheckoutFixed
	}

	if b.Compile == "" {
		b.Compile = defaults.Compile
	}

	if b.Test == "" {
		b.Test = defaults.Test
	}

	if b.TestPassPattern == "" {
		b.TestPassPattern = defaults.TestPassPattern
	}

	return b
}

// manifestBenchmark serves QuixBugs, GitBug-Java, BugsInPy, GHRB, RunBugRun,
// HumanEvalJava or Bears style layouts from <root>/<bug>/bug.yaml files.
type manifestBenchmark struct {
	commandBenchmark
}

func (b *manifestBenchmark) bugDir(identifier string) string {
	return filepath.Join(b.root, identifier)
}

func (b *manifestBenchmark) defaults() (BugManifest, error) {
	var defaults BugManifest

	err := readYAML(filepath.Join(b.root, benchmarkFileName), &defaults)
	if errors.Is(err, os.ErrNotExist) {
		return BugManifest{}, nil
	}

	return defaults, err
}

func (b *manifestBenchmark) manifest(identifier string) (BugManifest, error) {
	defaults, err := b.defaults()
	if err != nil {
		return BugManifest{}, fmt.Errorf("read %s: %w", benchmarkFileName, err)
	}

	var manifest BugManifest
	if err := readYAML(filepath.Join(b.bugDir(identifier), manifestFileName), &manifest); err != nil {
		return BugManifest{}, fmt.Errorf("read manifest of %s: %w", identifier, err)
	}

	return manifest.withDefaults(defaults), nil
}

func readYAML(path string, out any) error {
	// #nosec G304 - path lies inside the configured benchmark root
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(raw, out)
}

func (b *manifestBenchmark) Bugs(ctx context.Context) ([]m.Bug, error) {
	manifests, err := filepath.Glob(filepath.Join(b.root, "*", manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("scan manifests: %w", err)
	}

	bugs := make([]m.Bug, 0, len(manifests))

	for _, path := range manifests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		identifier := filepath.Base(filepath.Dir(path))

		manifest, err := b.manifest(identifier)
		if err != nil {
			slog.Error("Failed to read bug manifest", "benchmark", b.name, "bug", identifier, "error", err)
			continue
		}

		if manifest.GroundTruth == "" {
			slog.Error("Bug manifest has no ground truth", "benchmark", b.name, "bug", identifier)
			continue
		}

		groundTruth, err := readTextFile(filepath.Join(b.bugDir(identifier), manifest.GroundTruth))
		if err != nil {
			slog.Error("Failed to read ground truth", "benchmark", b.name, "bug", identifier, "error", err)
			continue
		}

		bugs = append(bugs, m.Bug{
			Identifier:          identifier,
			Benchmark:           b.name,
			GroundTruth:         groundTruth,
			GroundTruthInverted: manifest.Inverted != nil && *manifest.Inverted,
			FailingTests:        manifest.FailingTests,
		})
	}

	sort.Slice(bugs, func(i, j int) bool {
		return bugs[i].Identifier < bugs[j].Identifier
	})

	return bugs, nil
}

func (b *manifestBenchmark) vars(bug m.Bug, path m.Path) map[string]string {
	return map[string]string{
		"path": string(path),
		"bug":  bug.Identifier,
		"dir":  b.bugDir(bug.Identifier),
	}
}

func (b *manifestBenchmark) Checkout(ctx context.Context, bug m.Bug, path m.Path, fixed bool) error {
	manifest, err := b.manifest(bug.Identifier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCheckout, err)
	}

	template := manifest.CheckoutBuggy
	if fixed {
		template = manifest.CheckoutFixed
	}

	if template == "" {
		return fmt.Errorf("%w: %s: no checkout command (fixed=%t)", ErrCheckout, bug.Identifier, fixed)
	}

	return b.checkout(ctx, bug, b.bugDir(bug.Identifier), ExpandCommand(template, b.vars(bug, path)), path)
}

func (b *manifestBenchmark) Compile(ctx context.Context, bug m.Bug, path m.Path) m.CompileResult {
	manifest, err := b.manifest(bug.Identifier)
	if err != nil {
		slog.Error("Failed to read bug manifest", "benchmark", b.name, "bug", bug.Identifier, "error", err)
		return m.CompileResult{Passing: m.Bool(false), Output: err.Error()}
	}

	if manifest.Compile == "" {
		return m.CompileResult{}
	}

	result := b.run(ctx, bug, path, ExpandCommand(manifest.Compile, b.vars(bug, path)), b.timeouts.Compile)

	return m.CompileResult{Passing: m.Bool(result.Succeeded()), Output: result.Output}
}

func (b *manifestBenchmark) Test(ctx context.Context, bug m.Bug, path m.Path) m.TestResult {
	manifest, err := b.manifest(bug.Identifier)
	if err != nil {
		slog.Error("Failed to read bug manifest", "benchmark", b.name, "bug", bug.Identifier, "error", err)
		return m.TestResult{Output: err.Error()}
	}

	if manifest.Test == "" {
		slog.Error("Bug manifest has no test command", "benchmark", b.name, "bug", bug.Identifier)
		return m.TestResult{}
	}

	result := b.run(ctx, bug, path, ExpandCommand(manifest.Test, b.vars(bug, path)), b.timeouts.Test)
	passing := result.Succeeded()

	if passing && manifest.TestPassPattern != "" {
		pattern, err := regexp.Compile(manifest.TestPassPattern)
		if err != nil {
			slog.Error("Invalid test pass pattern", "benchmark", b.name, "bug", bug.Identifier, "error", err)
			return m.TestResult{Output: result.Output}
		}

		passing = pattern.MatchString(result.Output)
	}

	return m.TestResult{Passing: passing, Output: result.Output}
}
