package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"gondola.dev/pkg/gondola/internal/adapter"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the answer cache schema version.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("cache schema\t", adapter.CurrentCacheSchemaVersion)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("gondola version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
