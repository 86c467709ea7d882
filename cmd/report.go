package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

var reportAgainstFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the last saved run",
		Long: `Show the run saved in the reports directory. With --against, compare its
answers with the run saved in another reports directory.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Report(cmd.Context(), domain.ReportArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
				Against: m.Path(reportAgainstFlag),
			})
		},
	}

	cmd.Flags().StringVar(&reportAgainstFlag, againstFlagName, "", "reports directory to compare with")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
