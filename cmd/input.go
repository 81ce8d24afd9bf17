package cmd

import (
	"github.com/spf13/cobra"
)

// InputCmd is the top-level input command.
var InputCmd = &cobra.Command{
	Use:   "input",
	Short: "Inspect and change input bindings",
	Long: `Provides commands for the input bindings stored in input.conf.

Bindings are free-form strings grouped by section, for example one section
per controller port.

Examples:
  # List every binding
  nstconf input list

  # Show one binding, falling back to a default
  nstconf input get ctrl1 a --default KEY_X

  # Change a binding
  nstconf input set ctrl1 a KEY_Z`,
	PersistentPreRun: initLogger,
}

func init() {
	addCommonFlags(InputCmd)

	InputCmd.AddCommand(inputGetCmd)
	InputCmd.AddCommand(inputSetCmd)
	InputCmd.AddCommand(inputListCmd)
}

// GetInputCmd returns the InputCmd for testing.
func GetInputCmd() *cobra.Command {
	return InputCmd
}
