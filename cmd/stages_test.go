package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	domainmocks "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain/mocks"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// newStageCmd builds a root command with sub attached and the workflow replaced by a mock.
func newStageCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "elle.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })

	return cmd, mockWorkflow, out
}

func TestSampleCmd(t *testing.T) {
	cmd, mockWorkflow, out := newStageCmd(t, newSampleCmd())

	mockWorkflow.EXPECT().Sample(mock.Anything, mock.MatchedBy(func(args domain.SampleArgs) bool {
		return args.Benchmark == "defects4j" &&
			args.Strategy == domain.StrategyFIM &&
			args.Threads == 4 &&
			args.Output == m.Path("results") &&
			assert.ObjectsAreEqual([]string{"Chart-1", "Lang-3"}, args.Bugs)
	})).Return(m.Path("results/samples_defects4j_fim.jsonl"), nil).Once()

	cmd.SetArgs([]string{"sample", "defects4j", "--strategy", "fim", "--bugs", "Chart-1,Lang-3", "-p", "4", "-o", "results"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "samples_defects4j_fim.jsonl")
}

func TestSampleCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newSampleCmd())

	mockWorkflow.EXPECT().Sample(mock.Anything, mock.MatchedBy(func(args domain.SampleArgs) bool {
		return args.Strategy == defaultStrategy &&
			args.Threads == defaultParallel &&
			args.Output == m.Path(defaultResultsDir) &&
			len(args.Bugs) == 0 &&
			args.Prompt.FIMStyle == domain.FIMStyleUnderscore
	})).Return(m.Path("x.jsonl"), nil).Once()

	cmd.SetArgs([]string{"sample", "quixbugs"})
	require.NoError(t, cmd.Execute())
}

func TestSampleCmd_RequiresBenchmark(t *testing.T) {
	cmd, _, _ := newStageCmd(t, newSampleCmd())

	cmd.SetArgs([]string{"sample"})
	require.Error(t, cmd.Execute())
}

func TestGenerateCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newGenerateCmd())

	mockWorkflow.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Input == m.Path("samples_quixbugs_fim.jsonl") &&
			args.Model == "gpt-4o-mini" &&
			args.NumSamples == 5
	})).Return(m.Path("candidates.jsonl"), nil).Once()

	cmd.SetArgs([]string{"generate", "samples_quixbugs_fim.jsonl", "--model", "gpt-4o-mini", "-n", "5"})
	require.NoError(t, cmd.Execute())
}

func TestGenerateCmd_RequiresModel(t *testing.T) {
	cmd, _, _ := newStageCmd(t, newGenerateCmd())

	cmd.SetArgs([]string{"generate", "samples.jsonl"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), generationModelKey)
}

func TestEvaluateCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newEvaluateCmd())

	mockWorkflow.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(args domain.EvaluateArgs) bool {
		return args.Benchmark == "defects4j" &&
			args.Input == m.Path("candidates.jsonl") &&
			args.UseCache &&
			!args.ASTMatch
	})).Return(m.Path("evaluation.jsonl"), nil).Once()

	cmd.SetArgs([]string{"evaluate", "defects4j", "candidates.jsonl"})
	require.NoError(t, cmd.Execute())
}

func TestEvaluateCmd_NoCacheAndASTMatch(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newEvaluateCmd())

	mockWorkflow.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(args domain.EvaluateArgs) bool {
		return !args.UseCache && args.ASTMatch
	})).Return(m.Path("evaluation.jsonl"), nil).Once()

	cmd.SetArgs([]string{"--no-cache", "evaluate", "defects4j", "candidates.jsonl", "--ast-match"})
	require.NoError(t, cmd.Execute())
}

func TestEvaluateCmd_PropagatesErrors(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newEvaluateCmd())

	mockWorkflow.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(m.Path(""), errors.New("benchmark not configured")).Once()

	cmd.SetArgs([]string{"evaluate", "bears", "candidates.jsonl"})
	require.Error(t, cmd.Execute())
}

func TestExportCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newExportCmd())

	mockWorkflow.EXPECT().Export(mock.Anything, mock.MatchedBy(func(args domain.ExportArgs) bool {
		return args.Benchmark == "quixbugs" &&
			args.Input == m.Path("evaluation.jsonl") &&
			assert.ObjectsAreEqual([]int{1, 3}, args.PassAtK)
	})).Return(m.Statistics{}, nil).Once()

	cmd.SetArgs([]string{"export", "quixbugs", "evaluation.jsonl", "-k", "1,3"})
	require.NoError(t, cmd.Execute())
}

func TestExportCmd_DefaultPassAtK(t *testing.T) {
	cmd, mockWorkflow, _ := newStageCmd(t, newExportCmd())

	mockWorkflow.EXPECT().Export(mock.Anything, mock.MatchedBy(func(args domain.ExportArgs) bool {
		return assert.ObjectsAreEqual(domain.DefaultPassAtK, args.PassAtK)
	})).Return(m.Statistics{}, nil).Once()

	cmd.SetArgs([]string{"export", "quixbugs", "evaluation.jsonl"})
	require.NoError(t, cmd.Execute())
}
