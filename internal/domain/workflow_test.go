package domain

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	controllermocks "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/controller/mocks"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// scriptedModel answers every prompt with the same responses.
type scriptedModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (s *scriptedModel) Acquire(context.Context) error { return nil }

func (s *scriptedModel) Infer(_ context.Context, prompt string, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)

	if s.err != nil {
		return nil, s.err
	}

	return s.responses[:min(n, len(s.responses))], nil
}

// permissiveUI accepts any progress output. Expectations registered by expect take
// precedence over the catch-all ones.
func permissiveUI(t *testing.T, expect ...func(ui *controllermocks.MockUI)) *controllermocks.MockUI {
	ui := controllermocks.NewMockUI(t)

	for _, fn := range expect {
		fn(ui)
	}

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Maybe()
	ui.EXPECT().Close(mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayStartingTask(mock.Anything, mock.Anything).Return().Maybe()
	ui.EXPECT().DisplayCompletedTask(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return ui
}

func newTestWorkflow(t *testing.T, benchmark adapter.BenchmarkAdapter, model ModelHandle, ui *controllermocks.MockUI) Workflow {
	t.Helper()

	return NewWorkflow(WorkflowConfig{
		Store:     adapter.NewSampleStore(),
		Workspace: adapter.NewLocalWorkspace(t.TempDir()),
		Locator:   source.NewLocator(),
		Benchmarks: func(name string) (adapter.BenchmarkAdapter, error) {
			if name != benchmark.Name() {
				return nil, errors.New("unknown benchmark " + name)
			}

			return benchmark, nil
		},
		Model: model,
		UI:    ui,
	})
}

func multiFileBug() m.Bug {
	return m.Bug{
		Identifier: "MULTI",
		Benchmark:  "quixbugs",
		GroundTruth: gcdGroundTruth + "--- a/src/Other.java\n+++ b/src/Other.java\n@@ -1,1 +1,1 @@\n-a\n+b\n",
	}
}

func byIdentifier(samples []m.Sample) map[string]m.Sample {
	out := make(map[string]m.Sample, len(samples))
	for _, sample := range samples {
		out[sample.Identifier] = sample
	}

	return out
}

func TestWorkflow_Sample(t *testing.T) {
	benchmark := gcdTreeBenchmark(t)
	benchmark.bugs = []m.Bug{gcdBug(), multiFileBug()}

	output := t.TempDir()

	ui := permissiveUI(t, func(ui *controllermocks.MockUI) {
		ui.EXPECT().DisplayCompletedTask(mock.Anything, "GCD", string(m.StatusPrompted)).Return().Once()
	})

	path, err := newTestWorkflow(t, benchmark, nil, ui).Sample(context.Background(), SampleArgs{
		Benchmark: "fake",
		Strategy:  StrategySingleCloze,
		Output:    m.Path(output),
		Threads:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(output, "samples_fake_single-cloze.jsonl")), path)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	// Records keep the benchmark order.
	assert.Equal(t, "GCD", samples[0].Identifier)
	assert.Equal(t, "MULTI", samples[1].Identifier)

	gcd := samples[0]
	require.NotNil(t, gcd.Prompt)
	assert.Contains(t, *gcd.Prompt, "<|mask:0|>")
	assert.Equal(t, gcdPair.BuggyCode, *gcd.BuggyCode)
	assert.Equal(t, gcdPair.FixedCode, *gcd.FixedCode)
	assert.Equal(t, StrategySingleCloze, gcd.PromptStrategy)
	assert.Equal(t, gcdGroundTruth, gcd.GroundTruth)

	multi := samples[1]
	assert.Nil(t, multi.Prompt)
	assert.Equal(t, m.StatusNoPrompt, multi.Status())
}

func TestWorkflow_SampleFiltersBugs(t *testing.T) {
	benchmark := gcdTreeBenchmark(t)
	benchmark.bugs = []m.Bug{gcdBug(), multiFileBug()}

	path, err := newTestWorkflow(t, benchmark, nil, permissiveUI(t)).Sample(context.Background(), SampleArgs{
		Benchmark: "fake",
		Strategy:  StrategyFIM,
		Bugs:      []string{"MULTI"},
		Output:    m.Path(t.TempDir()),
	})
	require.NoError(t, err)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "MULTI", samples[0].Identifier)
}

func TestWorkflow_SampleCheckoutFailureKeepsRecord(t *testing.T) {
	benchmark := gcdTreeBenchmark(t)
	benchmark.bugs = []m.Bug{gcdBug()}
	benchmark.checkoutErr = adapter.ErrCheckout

	path, err := newTestWorkflow(t, benchmark, nil, permissiveUI(t)).Sample(context.Background(), SampleArgs{
		Benchmark: "fake",
		Strategy:  StrategyInstruct,
		Output:    m.Path(t.TempDir()),
	})
	require.NoError(t, err)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Nil(t, samples[0].Prompt)
}

func TestWorkflow_SampleErrors(t *testing.T) {
	benchmark := gcdTreeBenchmark(t)
	workflow := newTestWorkflow(t, benchmark, nil, permissiveUI(t))

	_, err := workflow.Sample(context.Background(), SampleArgs{Benchmark: "defects4j", Strategy: StrategyFIM})
	require.Error(t, err)

	_, err = workflow.Sample(context.Background(), SampleArgs{Benchmark: "fake", Strategy: "few-shot"})
	require.Error(t, err)
}

func writeSamples(t *testing.T, dir, name string, samples []m.Sample) m.Path {
	t.Helper()

	path := m.Path(filepath.Join(dir, name))
	require.NoError(t, adapter.NewSampleStore().SaveSamples(path, samples))

	return path
}

func clozeSample(t *testing.T) m.Sample {
	t.Helper()

	masker := mustMasker(t, StrategySingleCloze, PromptOptions{})

	prompt, ok := masker.Mask(source.LanguageJava, gcdPair)
	require.True(t, ok)

	return m.Sample{
		Identifier:     "GCD",
		BuggyCode:      &prompt.BuggyCode,
		FixedCode:      &prompt.FixedCode,
		PromptStrategy: StrategySingleCloze,
		Prompt:         &prompt.Prompt,
		GroundTruth:    gcdGroundTruth,
	}
}

func TestWorkflow_Generate(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, "samples_fake_single-cloze.jsonl", []m.Sample{
		clozeSample(t),
		{Identifier: "MULTI", PromptStrategy: StrategySingleCloze},
	})

	model := &scriptedModel{responses: []string{
		"```java\nreturn gcd(b, a % b);\n```",
		"return gcd(a, b);",
		"```\n```",
	}}

	path, err := newTestWorkflow(t, gcdTreeBenchmark(t), model, permissiveUI(t)).Generate(context.Background(), GenerateArgs{
		Input:      input,
		Model:      "gpt-test",
		NumSamples: 3,
		Threads:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "candidates_fake_single-cloze_gpt-test.jsonl")), path)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)

	got := byIdentifier(samples)

	gcd := got["GCD"]
	require.Len(t, gcd.Generation, 3)
	require.NotNil(t, gcd.Generation[0])
	assert.Equal(t, gcdPair.FixedCode, *gcd.Generation[0])
	require.NotNil(t, gcd.Generation[1])
	assert.Contains(t, *gcd.Generation[1], "return gcd(a, b);")
	assert.Equal(t, m.StatusGenerated, gcd.Status())

	assert.Nil(t, got["MULTI"].Generation, "samples without a prompt are not sent to the model")
	assert.Len(t, model.prompts, 1)
}

func TestWorkflow_GenerateModelFailureKeepsPrompt(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, "samples_fake_single-cloze.jsonl", []m.Sample{clozeSample(t)})

	model := &scriptedModel{err: errors.New("rate limited")}

	path, err := newTestWorkflow(t, gcdTreeBenchmark(t), model, permissiveUI(t)).Generate(context.Background(), GenerateArgs{
		Input:      input,
		Output:     m.Path(filepath.Join(dir, "out")),
		Model:      "org/model",
		NumSamples: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "out", "candidates_fake_single-cloze_org-model.jsonl")), path)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, m.StatusPrompted, samples[0].Status())
}

func TestWorkflow_GenerateWithoutModel(t *testing.T) {
	_, err := newTestWorkflow(t, gcdTreeBenchmark(t), nil, permissiveUI(t)).Generate(context.Background(), GenerateArgs{Input: "missing.jsonl"})
	require.Error(t, err)
}

func generatedSample(t *testing.T, generation ...*string) m.Sample {
	t.Helper()

	sample := clozeSample(t)
	sample.Generation = generation

	return sample
}

func TestWorkflow_Evaluate(t *testing.T) {
	dir := t.TempDir()

	benchmark := gcdTreeBenchmark(t)
	benchmark.bugs = []m.Bug{gcdBug()}

	wrong := "    int gcd(int a, int b) {\n        return 0;\n    }"

	input := writeSamples(t, dir, "candidates_fake_single-cloze_gpt-test.jsonl", []m.Sample{
		generatedSample(t, &gcdPair.FixedCode, &wrong, nil),
		{Identifier: "MULTI", PromptStrategy: StrategySingleCloze},
		{Identifier: "UNKNOWN", PromptStrategy: StrategySingleCloze, BuggyCode: m.String("x"), FixedCode: m.String("y"), Prompt: m.String("p"), Generation: []*string{m.String("z")}},
	})

	ui := permissiveUI(t, func(ui *controllermocks.MockUI) {
		ui.EXPECT().DisplayCompletedTask(mock.Anything, "GCD", "plausible").Return().Once()
	})

	path, err := newTestWorkflow(t, benchmark, nil, ui).Evaluate(context.Background(), EvaluateArgs{
		Benchmark: "fake",
		Input:     input,
		Threads:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "evaluation_fake_single-cloze_gpt-test.jsonl")), path)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	got := byIdentifier(samples)

	gcd := got["GCD"]
	require.Len(t, gcd.Evaluation, 3)
	assert.Equal(t, m.StatusEvaluated, gcd.Status())

	assert.True(t, gcd.Evaluation[0].ExactMatch)
	assert.Equal(t, m.StageTested, gcd.Evaluation[0].Stage)
	assert.False(t, gcd.Evaluation[1].ExactMatch)
	assert.Equal(t, m.StageNoGeneration, gcd.Evaluation[2].Stage)

	assert.Equal(t, m.StatusNoPrompt, got["MULTI"].Status())
	assert.Equal(t, m.StatusGenerated, got["UNKNOWN"].Status())
}

func TestWorkflow_EvaluateCheckoutFailureLeavesSampleGenerated(t *testing.T) {
	dir := t.TempDir()

	benchmark := gcdTreeBenchmark(t)
	benchmark.bugs = []m.Bug{gcdBug()}
	benchmark.checkoutErr = adapter.ErrCheckout

	input := writeSamples(t, dir, "candidates_fake.jsonl", []m.Sample{generatedSample(t, &gcdPair.FixedCode)})

	path, err := newTestWorkflow(t, benchmark, nil, permissiveUI(t)).Evaluate(context.Background(), EvaluateArgs{
		Benchmark: "fake",
		Input:     input,
		UseCache:  true,
	})
	require.NoError(t, err)

	samples, err := adapter.NewSampleStore().LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Nil(t, samples[0].Evaluation)
	assert.Equal(t, m.StatusGenerated, samples[0].Status())
}

func TestWorkflow_Export(t *testing.T) {
	dir := t.TempDir()

	input := writeSamples(t, dir, "evaluation_fake_fim.jsonl", []m.Sample{
		{
			Identifier:     "GCD",
			PromptStrategy: StrategyFIM,
			Prompt:         m.String("p"),
			Generation:     []*string{m.String("a"), m.String("b")},
			Evaluation: []m.EvaluationResult{
				{Generation: m.String("a"), ExactMatch: true, Compile: m.Bool(true), Test: m.Bool(true), Stage: m.StageTested},
				{Generation: m.String("b"), Compile: m.Bool(false), Test: m.Bool(false), Stage: m.StageCompileFailed},
			},
		},
		{Identifier: "MULTI", PromptStrategy: StrategyFIM},
	})

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayStatistics(mock.Anything, mock.MatchedBy(func(stats m.Statistics) bool {
		return stats.NumBugs == 2 && stats.NumBugsPlausible == 1
	})).Return(nil).Once()

	stats, err := newTestWorkflow(t, gcdTreeBenchmark(t), nil, ui).Export(context.Background(), ExportArgs{
		Input:     input,
		Benchmark: "fake",
		PassAtK:   []int{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "fake", stats.Benchmark)
	assert.Equal(t, StrategyFIM, stats.PromptStrategy)
	assert.Equal(t, 1, stats.NumBugsWithExactMatch)
	assert.InDelta(t, 0.5, stats.PassAtK["pass@1"], 1e-9)
	assert.InDelta(t, 1.0, stats.PassAtK["pass@2"], 1e-9)

	raw, err := os.ReadFile(filepath.Join(dir, StatisticsFileName))
	require.NoError(t, err)

	var written m.Statistics
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, stats, written)
}

func TestOutcomeLabel(t *testing.T) {
	plausible := m.EvaluationResult{Compile: m.Bool(true), Test: m.Bool(true)}
	exact := m.EvaluationResult{ExactMatch: true, Compile: m.Bool(false), Test: m.Bool(false)}
	failed := m.EvaluationResult{Compile: m.Bool(true), Test: m.Bool(false)}

	prompt := m.String("p")
	generation := []*string{m.String("c")}

	labels := []string{
		outcomeLabel(m.Sample{}),
		outcomeLabel(m.Sample{Prompt: prompt}),
		outcomeLabel(m.Sample{Prompt: prompt, Generation: generation}),
		outcomeLabel(m.Sample{Prompt: prompt, Generation: generation, Evaluation: []m.EvaluationResult{failed, plausible}}),
		outcomeLabel(m.Sample{Prompt: prompt, Generation: generation, Evaluation: []m.EvaluationResult{exact}}),
		outcomeLabel(m.Sample{Prompt: prompt, Generation: generation, Evaluation: []m.EvaluationResult{failed}}),
	}

	assert.Equal(t, []string{"no_prompt", "prompted", "generated", "plausible", "exact_match", "implausible"}, labels)
}

func TestInputStem(t *testing.T) {
	assert.Equal(t, "defects4j_fim", inputStem("out/samples_defects4j_fim.jsonl", "samples_"))
	assert.Equal(t, "quixbugs_instruct_gpt-4o", inputStem("candidates_quixbugs_instruct_gpt-4o.jsonl", "candidates_"))
	assert.Equal(t, "mine", inputStem("mine.jsonl", "samples_"))
}
