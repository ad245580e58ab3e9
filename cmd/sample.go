package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const sampleLongDescription = `Build one prompt per bug of a configured benchmark and write them to
samples_<benchmark>_<strategy>.jsonl in the output directory.

Bugs the strategy cannot handle (multi-file patches, unsupported languages,
changes outside a function) are kept with a null prompt.`

var sampleStrategyFlag string
var sampleBugsFlag []string

// sampleCmd represents the sample command.
var sampleCmd = newSampleCmd()

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <benchmark>",
		Short: "Build prompts for the bugs of a benchmark",
		Long:  sampleLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := promptOptions()
			if err != nil {
				return fmt.Errorf("read prompt options: %w", err)
			}

			path, err := workflow.Sample(cmd.Context(), domain.SampleArgs{
				Benchmark: args[0],
				Strategy:  viper.GetString(promptStrategyKey),
				Prompt:    opts,
				Bugs:      sampleBugsFlag,
				Output:    m.Path(viper.GetString(outputFlagName)),
				Threads:   viper.GetInt(parallelConfigKey),
			})
			if err != nil {
				return err
			}

			cmd.Println(path)

			return nil
		},
	}

	configureSampleFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func configureSampleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sampleStrategyFlag, strategyFlagName, "s", viper.GetString(promptStrategyKey), "prompt strategy: "+strings.Join(domain.StrategyNames(), ", "))
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), promptStrategyKey)
	cmd.Flags().StringSliceVar(&sampleBugsFlag, bugsFlagName, nil, "only sample these bug identifiers (comma separated)")
}
