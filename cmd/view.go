package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show an engine schematic with part numbers and gears highlighted",
		Long: `Scan an engine schematic and show it with part numbers, loose numbers and
gears highlighted, followed by the part number sum and the gear ratio sum.
Without a file the day 3 input from the inputs directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Path:   path,
				Inputs: m.Path(viper.GetString(inputsConfigKey)),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
