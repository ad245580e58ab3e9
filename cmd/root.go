// Package cmd provides the root command and CLI setup for elle.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/controller"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

var commandRunner adapter.CommandRunner
var sampleStore adapter.SampleStore
var workspace adapter.Workspace
var modelHandle domain.ModelHandle
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by every command writing results.
var outputDirFlag string

// parallelFlag sizes the worker pool of sample, generate and evaluate.
var parallelFlag int

// noCacheFlag disables the evaluation cache when set.
var noCacheFlag bool

// verboseFlag switches logging to Debug.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	commandRunner = adapter.NewLocalCommandRunner()
	sampleStore = adapter.NewSampleStore()
	workspace = adapter.NewLocalWorkspace(viper.GetString(tmpDirKey))
	modelHandle = domain.NewSharedModelHandle(&configuredModel{})
	workflow = domain.NewWorkflow(domain.WorkflowConfig{
		Store:      sampleStore,
		Workspace:  workspace,
		Locator:    source.NewLocator(),
		Benchmarks: configuredBenchmark(commandRunner),
		Model:      modelHandle,
		ASTDiffer: adapter.NewCommandASTDiffer(
			commandRunner,
			viper.GetString(astDiffCommandKey),
			viper.GetString(tmpDirKey),
			viper.GetDuration(astDiffTimeoutKey),
		),
		Cache: adapter.NewEvaluationCache(viper.GetString(cacheDirKey)),
		UI:    ui,
	})
}

const rootLongDescription = `Elle is an automated program repair harness. It turns benchmark bugs into
LLM prompts, collects candidate fixes and evaluates them against the benchmark's
test suite.

A run chains four stages, each reading and writing JSONL files:
  elle sample <benchmark>                    build one prompt per bug
  elle generate <samples.jsonl>              query the model for candidates
  elle evaluate <benchmark> <candidates>     apply, compile and test candidates
  elle export <benchmark> <evaluation>       aggregate statistics and pass@k`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "elle",
		Short:        "Automated program repair harness for LLMs",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for JSONL results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of bugs processed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, viper.GetBool(noCacheFlagName), "disable the evaluation cache (re-evaluate every candidate)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// configuredBenchmark resolves benchmark names against the benchmarks configuration map.
func configuredBenchmark(runner adapter.CommandRunner) domain.BenchmarkFactory {
	return func(name string) (adapter.BenchmarkAdapter, error) {
		var configs map[string]adapter.BenchmarkConfig
		if err := viper.UnmarshalKey(benchmarksKey, &configs); err != nil {
			return nil, fmt.Errorf("read %s configuration: %w", benchmarksKey, err)
		}

		// Viper lower-cases map keys.
		cfg, ok := configs[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("benchmark %q is not configured under %s in %s", name, benchmarksKey, configFileName)
		}

		return adapter.NewBenchmark(name, cfg, runner, timeouts(), retryPolicy())
	}
}

// configuredModel builds the OpenAI client on first use, once flags have been bound.
type configuredModel struct {
	client *adapter.OpenAIClient
}

func (c *configuredModel) Acquire(ctx context.Context) error {
	client := adapter.NewOpenAIClient(openAIConfig())
	if err := client.Acquire(ctx); err != nil {
		return err
	}

	c.client = client

	return nil
}

func (c *configuredModel) Infer(ctx context.Context, prompt string, n int) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("model is not acquired")
	}

	return c.client.Infer(ctx, prompt, n)
}
