package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default elle.yaml configuration file",
		Long: `Create an elle.yaml in the current working directory populated with the
current defaults so it can be edited manually. Benchmarks are declared under
the benchmarks key, e.g.

  benchmarks:
    defects4j:
      kind: defects4j
      root: /opt/defects4j
    quixbugs:
      kind: manifest
      root: ./benchmarks/quixbugs`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
