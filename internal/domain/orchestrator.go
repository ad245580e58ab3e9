package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// OutcomeClassifier evaluates one candidate of a bug: checkout, apply, compile, test.
type OutcomeClassifier interface {
	// Classify always reaches a terminal stage. The error is non-nil only when the working
	// copy could not be checked out; the returned result then has StageCheckoutFailed.
	Classify(ctx context.Context, bug m.Bug, pair CodePair, generation *string) (m.EvaluationResult, error)
}

type outcomeClassifier struct {
	benchmark adapter.BenchmarkAdapter
	workspace adapter.Workspace
	applier   PatchApplier
	astDiffer adapter.ASTDiffer
	cache     adapter.EvaluationCache
}

// NewOutcomeClassifier constructs an OutcomeClassifier. astDiffer and cache are optional:
// a nil astDiffer leaves ASTMatch false, a nil cache evaluates every candidate.
func NewOutcomeClassifier(
	benchmark adapter.BenchmarkAdapter,
	workspace adapter.Workspace,
	applier PatchApplier,
	astDiffer adapter.ASTDiffer,
	cache adapter.EvaluationCache,
) OutcomeClassifier {
	return &outcomeClassifier{
		benchmark: benchmark,
		workspace: workspace,
		applier:   applier,
		astDiffer: astDiffer,
		cache:     cache,
	}
}

func (c *outcomeClassifier) Classify(ctx context.Context, bug m.Bug, pair CodePair, generation *string) (m.EvaluationResult, error) {
	if generation == nil {
		return m.EvaluationResult{
			Compile: m.Bool(false),
			Test:    m.Bool(false),
			Stage:   m.StageNoGeneration,
		}, nil
	}

	if cached, ok := c.cached(ctx, bug, *generation); ok {
		// Entries stored without AST matching report false until compared here.
		if !cached.ASTMatch && c.astDiffer != nil {
			file, _ := bug.BuggyFile()
			cached.ASTMatch = c.astMatch(ctx, bug, filepath.Ext(file), pair.FixedCode, *generation)
		}

		return cached, nil
	}

	result, err := c.classify(ctx, bug, pair, *generation)
	if err != nil {
		return result, err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, bug.Benchmark, bug.Identifier, *generation, result); err != nil {
			slog.Error("Failed to store evaluation in cache", "benchmark", bug.Benchmark, "bug", bug.Identifier, "error", err)
		}
	}

	return result, nil
}

func (c *outcomeClassifier) cached(ctx context.Context, bug m.Bug, generation string) (m.EvaluationResult, bool) {
	if c.cache == nil {
		return m.EvaluationResult{}, false
	}

	result, ok, err := c.cache.Get(ctx, bug.Benchmark, bug.Identifier, generation)
	if err != nil {
		slog.Error("Failed to read evaluation cache", "benchmark", bug.Benchmark, "bug", bug.Identifier, "error", err)
		return m.EvaluationResult{}, false
	}

	if ok {
		slog.Debug("Evaluation cache hit", "benchmark", bug.Benchmark, "bug", bug.Identifier)
		result.Generation = &generation
	}

	return result, ok
}

func (c *outcomeClassifier) classify(ctx context.Context, bug m.Bug, pair CodePair, candidate string) (m.EvaluationResult, error) {
	file, _ := bug.BuggyFile()

	result := m.EvaluationResult{
		Generation: &candidate,
		ExactMatch: ExactMatch(source.DetectLanguage(file), candidate, pair.FixedCode),
		ASTMatch:   c.astMatch(ctx, bug, filepath.Ext(file), pair.FixedCode, candidate),
	}

	workDir, err := c.prepareWorkspace(ctx, bug)
	if workDir != "" {
		defer c.cleanupTempDir(ctx, workDir)
	}

	if err != nil {
		result.Stage = m.StageCheckoutFailed
		return result, err
	}

	result.Compile = m.Bool(false)
	result.Test = m.Bool(false)

	applied, err := c.applier.Apply(ctx, bug, workDir, pair.BuggyCode, candidate)
	if err != nil || !applied {
		result.Stage = m.StageApplyFailed
		return result, nil
	}

	compiled := c.benchmark.Compile(ctx, bug, workDir)
	if !compiled.IsPassing() {
		result.Stage = m.StageCompileFailed
		return result, nil
	}

	// A benchmark without a compile step keeps compile null.
	result.Compile = compiled.Passing

	tested := c.benchmark.Test(ctx, bug, workDir)
	result.Test = m.Bool(tested.Passing)

	result.Stage = m.StageTestFailed
	if tested.Passing {
		result.Stage = m.StageTested
	}

	return result, nil
}

func (c *outcomeClassifier) astMatch(ctx context.Context, bug m.Bug, extension, fixed, candidate string) bool {
	if c.astDiffer == nil {
		return false
	}

	same, err := c.astDiffer.SameAST(ctx, extension, fixed, candidate)
	if err != nil {
		slog.Error("Failed to compare ASTs", "bug", bug.Identifier, "error", err)
		return false
	}

	return same
}

func (c *outcomeClassifier) prepareWorkspace(ctx context.Context, bug m.Bug) (m.Path, error) {
	workDir, err := c.workspace.CreateTempDir(ctx, "elle-eval")
	if err != nil {
		slog.Error("Failed to create temp dir", "bug", bug.Identifier, "error", err)
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if err := c.benchmark.Checkout(ctx, bug, workDir, false); err != nil {
		return workDir, fmt.Errorf("failed to checkout %s: %w", bug.Identifier, err)
	}

	return workDir, nil
}

// cleanupTempDir removes the temporary directory, logging errors if cleanup fails.
func (c *outcomeClassifier) cleanupTempDir(ctx context.Context, tmpDir m.Path) {
	if err := c.workspace.RemoveAll(ctx, tmpDir); err != nil {
		slog.Error("Failed to cleanup temp dir", "tmpDir", tmpDir, "error", err)
	}
}
