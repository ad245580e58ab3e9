package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const evaluateLongDescription = `Apply every candidate of a candidates file to a fresh checkout of its bug,
compile it and run the tests, then write evaluation_<...>.jsonl.

Results are cached per (benchmark, bug, candidate) under cache.dir; pass
--no-cache to re-evaluate everything. --ast-match additionally compares each
candidate with the fixed function through the astdiff.command tool.`

var evaluateASTMatchFlag bool

// evaluateCmd represents the evaluate command.
var evaluateCmd = newEvaluateCmd()

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <benchmark> <candidates.jsonl>",
		Short: "Compile and test generated candidates",
		Long:  evaluateLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			useCache := viper.GetBool(cacheEnabledKey) && !viper.GetBool(noCacheFlagName)

			path, err := workflow.Evaluate(cmd.Context(), domain.EvaluateArgs{
				Benchmark: args[0],
				Input:     m.Path(args[1]),
				Output:    m.Path(viper.GetString(outputFlagName)),
				Threads:   viper.GetInt(parallelConfigKey),
				ASTMatch:  viper.GetBool(astMatchKey),
				UseCache:  useCache,
			})
			if err != nil {
				return err
			}

			cmd.Println(path)

			return nil
		},
	}

	configureEvaluateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func configureEvaluateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&evaluateASTMatchFlag, astMatchFlagName, viper.GetBool(astMatchKey), "also report AST-level matches with the fixed function")
	bindFlagToConfig(cmd.Flags().Lookup(astMatchFlagName), astMatchKey)
}
