package cmd

import (
	"fmt"

	kerrors "github.com/PolarWolf314/nstconf/internal/errors"

	"github.com/spf13/cobra"
)

var inputDefault string

func init() {
	inputGetCmd.Flags().StringVar(&inputDefault, "default", "", "value to report when the binding is not set")
}

// resetInputGetState resets the input get command's flags for testing.
func resetInputGetState() {
	inputDefault = ""
}

var inputGetCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print an input binding",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, key := args[0], args[1]

		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		if !cmd.Flags().Changed("default") && !s.mgr.InputTable().Has(section, key) {
			return Logger.ErrorfAndReturn("%s.%s: %w", section, key, kerrors.ErrBindingNotFound)
		}

		fmt.Println(s.mgr.Input(section, key, inputDefault))
		return nil
	},
}
