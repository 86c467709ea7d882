package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gondola.dev/pkg/gondola/internal/model"
)

// newTestRoot returns a fresh root command with subcommands attached and its
// output captured.
func newTestRoot(subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

// withLogFile keeps test logs out of the working directory.
func withLogFile(t *testing.T, args ...string) []string {
	t.Helper()

	return append(args, "--"+logFileFlagName, filepath.Join(t.TempDir(), "gondola.log"))
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []m.Day
		wantErr bool
	}{
		{"empty", []string{}, []m.Day{}, false},
		{"single", []string{"3"}, []m.Day{3}, false},
		{"mixed forms", []string{"1", "02", "day03", "DAY4"}, []m.Day{1, 2, 3, 4}, false},
		{"not a day", []string{"three"}, nil, true},
		{"out of range", []string{"26"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDays(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, m.ErrInvalidDay)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "gondola", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{inputsFlagName, outputFlagName, noCacheFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.Equal(t, "i", cmd.PersistentFlags().Lookup(inputsFlagName).Shorthand)
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup(verboseFlagName).Shorthand)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, output := newTestRoot()

	cmd.SetArgs(withLogFile(t))
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Days are given as 3, 03 or day03")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, inputFSAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, answerCache)
	assert.NotNil(t, registry)
	assert.NotNil(t, workflow)
}

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"run", "list", "view", "history", "report", "init", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute should not panic or exit
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
