// Package cmd provides the root command and CLI setup for gondola.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gondola.dev/pkg/gondola/internal/adapter"
	"gondola.dev/pkg/gondola/internal/controller"
	"gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

var inputFSAdapter adapter.InputFSAdapter
var reportStore adapter.ReportStore
var answerCache adapter.AnswerCache
var registry domain.Registry
var workflow domain.Workflow
var ui controller.UI

// inputsDirFlag is a root-level flag naming the directory holding puzzle inputs.
var inputsDirFlag string

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noCacheFlag disables answer caching when set.
var noCacheFlag bool

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputFSAdapter = adapter.NewLocalInputFSAdapter(viper.GetString(inputPatternConfigKey))
	reportStore = adapter.NewReportStore()
	answerCache = adapter.NewSQLiteAnswerCache(viper.GetString(cachePathConfigKey))
	registry = domain.DefaultRegistry()
	workflow = domain.NewWorkflow(
		inputFSAdapter,
		reportStore,
		answerCache,
		ui,
		registry,
	)
}

const daysHelp = `Days are given as 3, 03 or day03.`

const rootLongDescription = `Gondola solves the Advent of Code 2023 puzzles it knows about, caches
their answers by input fingerprint and renders the day 3 engine schematic
with its part numbers and gears highlighted.

` + daysHelp

const runLongDescription = `Solve the given days (default: every registered day) and save a run report.

` + daysHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "gondola",
		Short:         "Advent of Code 2023 puzzle runner",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			warnConfigError()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&inputsDirFlag, inputsFlagName, "i",
			viper.GetString(inputsConfigKey),
			"directory holding the puzzle inputs",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(inputsFlagName), inputsConfigKey)

	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, viper.GetBool(noCacheFlagName), "ignore cached answers (solve everything again)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if answerCache != nil {
		if closeErr := answerCache.Close(); closeErr != nil {
			fmt.Fprintln(os.Stderr, "closing answer cache:", closeErr)
		}
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseDays(args []string) ([]m.Day, error) {
	days := make([]m.Day, 0, len(args))

	for _, arg := range args {
		day, err := m.ParseDay(arg)
		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	return days, nil
}
