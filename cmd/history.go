package cmd

import (
	"github.com/spf13/cobra"

	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

var historyDayFlag string
var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List cached answers",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var day m.Day

			if historyDayFlag != "" {
				parsed, err := m.ParseDay(historyDayFlag)
				if err != nil {
					return err
				}

				day = parsed
			}

			return workflow.History(cmd.Context(), domain.HistoryArgs{Day: day, Limit: historyLimitFlag})
		},
	}

	cmd.Flags().StringVarP(&historyDayFlag, dayFlagName, "d", "", "only show answers for this day")
	cmd.Flags().IntVarP(&historyLimitFlag, limitFlagName, "n", defaultHistoryLimit, "maximum number of answers (0 = all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
