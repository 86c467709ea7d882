package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles and their inputs",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Inputs: m.Path(viper.GetString(inputsConfigKey)),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
