package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	for _, r := range []*os.File{stdoutReader, stderrReader} {
		go func(r *os.File) {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// newTestConfigDir returns a fresh configuration directory path.
func newTestConfigDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nestopia")
}

// runCLI executes nstconf with args against dir and returns the combined
// output.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	t.Setenv("NO_COLOR", "1")

	rootCmd := &cobra.Command{
		Use:           "nstconf",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(SettingsCmd)
	rootCmd.AddCommand(InputCmd)
	rootCmd.AddCommand(HistoryCmd)
	rootCmd.SetArgs(append(args, "--config-dir", dir))

	return captureOutput(rootCmd.Execute)
}

// readFile returns the contents of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
