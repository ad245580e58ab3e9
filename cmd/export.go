package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

var exportPassAtKFlag []int

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <benchmark> <evaluation.jsonl>",
		Short: "Aggregate an evaluation into statistics",
		Long: `Count bugs with a prompt, a generation, an exact or AST match, a compilable
and a plausible candidate, compute pass@k and write statistics.json next to
the other results.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Export(cmd.Context(), domain.ExportArgs{
				Benchmark: args[0],
				Input:     m.Path(args[1]),
				Output:    m.Path(viper.GetString(outputFlagName)),
				PassAtK:   exportPassAtKFlag,
			})

			return err
		},
	}

	cmd.Flags().IntSliceVarP(&exportPassAtKFlag, passAtKFlagName, "k", domain.DefaultPassAtK, "k values reported as pass@k")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
