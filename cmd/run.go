package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [days...]",
		Short: "Solve puzzles",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Days:     days,
				Inputs:   m.Path(viper.GetString(inputsConfigKey)),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				UseCache: !viper.GetBool(noCacheFlagName),
				Parallel: viper.GetInt(runParallelConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of days solved concurrently (0 = all at once)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
