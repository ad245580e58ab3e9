package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/controller"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// StatisticsFileName is the file written by Export into its output directory.
const StatisticsFileName = "statistics.json"

// SampleArgs contains the arguments for building prompts.
type SampleArgs struct {
	Benchmark string
	Strategy  string
	Prompt    PromptOptions
	// Bugs restricts the run to these identifiers; empty means every bug.
	Bugs    []string
	Output  m.Path
	Threads int
}

// GenerateArgs contains the arguments for querying the model.
type GenerateArgs struct {
	Input      m.Path
	Output     m.Path
	Model      string
	NumSamples int
	Prompt     PromptOptions
	Threads    int
}

// EvaluateArgs contains the arguments for evaluating candidates.
type EvaluateArgs struct {
	Benchmark string
	Input     m.Path
	Output    m.Path
	Threads   int
	ASTMatch  bool
	UseCache  bool
}

// ExportArgs contains the arguments for aggregating an evaluation.
type ExportArgs struct {
	Input     m.Path
	Output    m.Path
	Benchmark string
	PassAtK   []int
}

// Workflow runs the batch stages of the repair pipeline. Each stage reads or produces one
// JSONL file of samples and returns its path.
type Workflow interface {
	Sample(ctx context.Context, args SampleArgs) (m.Path, error)
	Generate(ctx context.Context, args GenerateArgs) (m.Path, error)
	Evaluate(ctx context.Context, args EvaluateArgs) (m.Path, error)
	Export(ctx context.Context, args ExportArgs) (m.Statistics, error)
}

// BenchmarkFactory resolves a configured benchmark by name.
type BenchmarkFactory func(name string) (adapter.BenchmarkAdapter, error)

// WorkflowConfig lists the collaborators of a Workflow. Model, ASTDiffer and Cache may be
// nil when the corresponding stage or feature is not used.
type WorkflowConfig struct {
	Store      adapter.SampleStore
	Workspace  adapter.Workspace
	Locator    source.Locator
	Benchmarks BenchmarkFactory
	Model      ModelHandle
	ASTDiffer  adapter.ASTDiffer
	Cache      adapter.EvaluationCache
	UI         controller.UI
}

type workflow struct {
	adapter.SampleStore
	controller.UI

	workspace  adapter.Workspace
	locator    source.Locator
	benchmarks BenchmarkFactory
	model      ModelHandle
	astDiffer  adapter.ASTDiffer
	cache      adapter.EvaluationCache
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(cfg WorkflowConfig) Workflow {
	return &workflow{
		SampleStore: cfg.Store,
		UI:          cfg.UI,
		workspace:   cfg.Workspace,
		locator:     cfg.Locator,
		benchmarks:  cfg.Benchmarks,
		model:       cfg.Model,
		astDiffer:   cfg.ASTDiffer,
		cache:       cfg.Cache,
	}
}

func (w *workflow) Sample(ctx context.Context, args SampleArgs) (m.Path, error) {
	benchmark, err := w.benchmarks(args.Benchmark)
	if err != nil {
		return "", fmt.Errorf("resolve benchmark: %w", err)
	}

	strategy, err := NewPromptStrategy(args.Strategy, NewFunctionExtractor(benchmark, w.workspace, w.locator), args.Prompt)
	if err != nil {
		return "", err
	}

	bugs, err := benchmark.Bugs(ctx)
	if err != nil {
		return "", fmt.Errorf("list bugs: %w", err)
	}

	bugs = filterBugs(bugs, args.Bugs)

	if err := w.Start(ctx, controller.WithStage("sample")); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return "", err
	}
	defer w.Close(ctx)

	threads := normalizeThreads(args.Threads)
	w.DisplayConcurrencyInfo(ctx, threads, len(bugs))

	samples := make([]m.Sample, len(bugs))

	var group errgroup.Group
	group.SetLimit(threads)

	for i, bug := range bugs {
		group.Go(func() error {
			w.DisplayStartingTask(ctx, bug.Identifier)

			samples[i] = w.sampleBug(ctx, strategy, bug)

			w.DisplayCompletedTask(ctx, bug.Identifier, string(samples[i].Status()))

			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	output := adapter.SamplesFileName(args.Output, "samples", benchmark.Name(), strategy.Name())
	if err := w.SaveSamples(output, samples); err != nil {
		return "", err
	}

	return output, nil
}

// sampleBug never fails: a bug without a prompt is recorded with a null prompt.
func (w *workflow) sampleBug(ctx context.Context, strategy PromptStrategy, bug m.Bug) m.Sample {
	sample := m.Sample{
		Identifier:     bug.Identifier,
		PromptStrategy: strategy.Name(),
		GroundTruth:    bug.GroundTruth,
	}

	prompt, ok, err := strategy.Build(ctx, bug)
	if err != nil {
		slog.Error("Failed to build prompt", "bug", bug.Identifier, "benchmark", bug.Benchmark, "error", err)
		return sample
	}

	if !ok {
		return sample
	}

	sample.BuggyCode = &prompt.BuggyCode
	sample.FixedCode = &prompt.FixedCode
	sample.Prompt = &prompt.Prompt

	return sample
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.Path, error) {
	if w.model == nil {
		return "", fmt.Errorf("generate: no model configured")
	}

	samples, err := w.LoadSamples(args.Input)
	if err != nil {
		return "", err
	}

	maskers, err := maskersFor(samples, args.Prompt)
	if err != nil {
		return "", err
	}

	if hasPrompt(samples) {
		if err := w.model.Acquire(ctx); err != nil {
			return "", err
		}
	}

	if err := w.Start(ctx, controller.WithStage("generate")); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return "", err
	}
	defer w.Close(ctx)

	threads := normalizeThreads(args.Threads)
	w.DisplayConcurrencyInfo(ctx, threads, len(samples))

	numSamples := max(args.NumSamples, 1)

	var group errgroup.Group
	group.SetLimit(threads)

	for i := range samples {
		group.Go(func() error {
			sample := &samples[i]
			if sample.Prompt == nil {
				return nil
			}

			w.DisplayStartingTask(ctx, sample.Identifier)

			w.generateSample(ctx, maskers[sample.PromptStrategy], sample, numSamples)

			w.DisplayCompletedTask(ctx, sample.Identifier, string(sample.Status()))

			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	output := adapter.SamplesFileName(outputDir(args.Output, args.Input), "candidates", inputStem(args.Input, "samples_"), args.Model)
	if err := w.SaveSamples(output, samples); err != nil {
		return "", err
	}

	return output, nil
}

// generateSample fills sample.Generation. A failed request leaves it nil so that the sample
// stays prompted.
func (w *workflow) generateSample(ctx context.Context, masker Masker, sample *m.Sample, n int) {
	responses, err := w.model.Infer(ctx, *sample.Prompt, n)
	if err != nil {
		slog.Error("Failed to generate candidates", "bug", sample.Identifier, "error", err)
		return
	}

	generation := make([]*string, len(responses))

	for i, response := range responses {
		candidate, ok := Candidate(masker, *sample.Prompt, response)
		if !ok {
			slog.Debug("No code in model response", "bug", sample.Identifier, "candidate", i)
			continue
		}

		generation[i] = &candidate
	}

	sample.Generation = generation
}

func (w *workflow) Evaluate(ctx context.Context, args EvaluateArgs) (m.Path, error) {
	benchmark, err := w.benchmarks(args.Benchmark)
	if err != nil {
		return "", fmt.Errorf("resolve benchmark: %w", err)
	}

	samples, err := w.LoadSamples(args.Input)
	if err != nil {
		return "", err
	}

	bugs, err := benchmark.Bugs(ctx)
	if err != nil {
		return "", fmt.Errorf("list bugs: %w", err)
	}

	byID := make(map[string]m.Bug, len(bugs))
	for _, bug := range bugs {
		byID[bug.Identifier] = bug
	}

	var (
		differ adapter.ASTDiffer
		cache  adapter.EvaluationCache
	)

	if args.ASTMatch {
		differ = w.astDiffer
	}

	if args.UseCache {
		cache = w.cache
	}

	classifier := NewOutcomeClassifier(benchmark, w.workspace, NewPatchApplier(w.workspace), differ, cache)

	output := adapter.SamplesFileName(outputDir(args.Output, args.Input), "evaluation", inputStem(args.Input, "candidates_"))

	writer, err := w.OpenSampleWriter(output)
	if err != nil {
		return "", fmt.Errorf("open evaluation output: %w", err)
	}

	if err := w.Start(ctx, controller.WithStage("evaluate")); err != nil {
		_ = writer.Close()

		slog.Error("Failed to start workflow UI", "error", err)

		return "", err
	}
	defer w.Close(ctx)

	threads := normalizeThreads(args.Threads)
	w.DisplayConcurrencyInfo(ctx, threads, len(samples))

	var (
		writeMu   sync.Mutex
		writeErrs []error
		group     errgroup.Group
	)

	group.SetLimit(threads)

	for _, sample := range samples {
		group.Go(func() error {
			w.DisplayStartingTask(ctx, sample.Identifier)

			evaluated := w.evaluateSample(ctx, classifier, byID, sample)

			if err := writer.Append(evaluated); err != nil {
				slog.Error("Failed to write evaluation", "bug", sample.Identifier, "error", err)

				writeMu.Lock()
				writeErrs = append(writeErrs, err)
				writeMu.Unlock()
			}

			w.DisplayCompletedTask(ctx, sample.Identifier, outcomeLabel(evaluated))

			return nil
		})
	}

	_ = group.Wait()

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close evaluation output: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(writeErrs) > 0 {
		return "", fmt.Errorf("write evaluation: %d record(s) lost: %w", len(writeErrs), writeErrs[0])
	}

	return output, nil
}

// evaluateSample classifies every candidate of sample. Samples without candidates, or whose
// working copy cannot be checked out, are returned unevaluated.
func (w *workflow) evaluateSample(ctx context.Context, classifier OutcomeClassifier, bugs map[string]m.Bug, sample m.Sample) m.Sample {
	if sample.Generation == nil || sample.BuggyCode == nil || sample.FixedCode == nil {
		return sample
	}

	bug, ok := bugs[sample.Identifier]
	if !ok {
		slog.Warn("Sample does not belong to benchmark", "bug", sample.Identifier)
		return sample
	}

	pair := CodePair{BuggyCode: *sample.BuggyCode, FixedCode: *sample.FixedCode}
	evaluations := make([]m.EvaluationResult, 0, len(sample.Generation))

	for _, generation := range sample.Generation {
		result, err := classifier.Classify(ctx, bug, pair, generation)
		if err != nil {
			slog.Error("Failed to evaluate candidate", "bug", bug.Identifier, "benchmark", bug.Benchmark, "error", err)
			return sample
		}

		evaluations = append(evaluations, result)
	}

	sample.Evaluation = evaluations

	return sample
}

func (w *workflow) Export(ctx context.Context, args ExportArgs) (m.Statistics, error) {
	samples, err := w.LoadSamples(args.Input)
	if err != nil {
		return m.Statistics{}, err
	}

	ks := args.PassAtK
	if len(ks) == 0 {
		ks = DefaultPassAtK
	}

	stats := ComputeStatistics(args.Benchmark, strategyOf(samples), samples, ks)

	encoded, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return m.Statistics{}, fmt.Errorf("encode statistics: %w", err)
	}

	path := w.workspace.JoinPath(ctx, string(outputDir(args.Output, args.Input)), StatisticsFileName)
	if err := w.workspace.WriteFile(ctx, path, append(encoded, '\n'), 0o600); err != nil {
		return m.Statistics{}, fmt.Errorf("write statistics: %w", err)
	}

	if err := w.DisplayStatistics(ctx, stats); err != nil {
		return m.Statistics{}, fmt.Errorf("display statistics: %w", err)
	}

	return stats, nil
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func filterBugs(bugs []m.Bug, ids []string) []m.Bug {
	if len(ids) == 0 {
		return bugs
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	filtered := make([]m.Bug, 0, len(ids))

	for _, bug := range bugs {
		if wanted[bug.Identifier] {
			filtered = append(filtered, bug)
		}
	}

	return filtered
}

func maskersFor(samples []m.Sample, opts PromptOptions) (map[string]Masker, error) {
	maskers := make(map[string]Masker)

	for _, sample := range samples {
		if sample.Prompt == nil {
			continue
		}

		if _, ok := maskers[sample.PromptStrategy]; ok {
			continue
		}

		masker, err := NewMasker(sample.PromptStrategy, opts)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", sample.Identifier, err)
		}

		maskers[sample.PromptStrategy] = masker
	}

	return maskers, nil
}

func hasPrompt(samples []m.Sample) bool {
	for _, sample := range samples {
		if sample.Prompt != nil {
			return true
		}
	}

	return false
}

func strategyOf(samples []m.Sample) string {
	for _, sample := range samples {
		if sample.PromptStrategy != "" {
			return sample.PromptStrategy
		}
	}

	return ""
}

// outputDir defaults to the directory of the input file.
func outputDir(output, input m.Path) m.Path {
	if output != "" {
		return output
	}

	return m.Path(filepath.Dir(string(input)))
}

// inputStem is the input file name without extension and stage prefix.
func inputStem(input m.Path, prefix string) string {
	stem := strings.TrimSuffix(filepath.Base(string(input)), filepath.Ext(string(input)))
	return strings.TrimPrefix(stem, prefix)
}

// outcomeLabel summarises a sample for progress output.
func outcomeLabel(sample m.Sample) string {
	if sample.Status() != m.StatusEvaluated {
		return string(sample.Status())
	}

	exact := false

	for _, evaluation := range sample.Evaluation {
		if evaluation.IsPlausible() {
			return "plausible"
		}

		exact = exact || evaluation.ExactMatch
	}

	if exact {
		return "exact_match"
	}

	return "implausible"
}
