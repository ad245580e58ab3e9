package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

const generateLongDescription = `Send every prompt of a samples file to an OpenAI-compatible endpoint and
write the candidates to candidates_<benchmark>_<strategy>_<model>.jsonl.

The endpoint is configured with the generation.* keys (or ELLE_GENERATION_*
environment variables). Samples without a prompt are copied unchanged.`

var generateModelFlag string
var generateNumSamplesFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <samples.jsonl>",
		Short: "Generate candidate fixes with an LLM",
		Long:  generateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modelName := viper.GetString(generationModelKey)
			if modelName == "" {
				return fmt.Errorf("no model configured: set --%s or %s", modelFlagName, generationModelKey)
			}

			opts, err := promptOptions()
			if err != nil {
				return fmt.Errorf("read prompt options: %w", err)
			}

			path, err := workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Input:      m.Path(args[0]),
				Output:     m.Path(viper.GetString(outputFlagName)),
				Model:      modelName,
				NumSamples: viper.GetInt(generationNKey),
				Prompt:     opts,
				Threads:    viper.GetInt(parallelConfigKey),
			})
			if err != nil {
				return err
			}

			cmd.Println(path)

			return nil
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateModelFlag, modelFlagName, "m", viper.GetString(generationModelKey), "model name sent to the endpoint")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), generationModelKey)
	cmd.Flags().IntVarP(&generateNumSamplesFlag, numSamplesFlagName, "n", viper.GetInt(generationNKey), "candidates requested per prompt")
	bindFlagToConfig(cmd.Flags().Lookup(numSamplesFlagName), generationNKey)
}
