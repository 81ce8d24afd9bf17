package cmd

import (
	"github.com/PolarWolf314/nstconf/internal/audit"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var inputSetCmd = &cobra.Command{
	Use:   "set <section> <key> <value>",
	Short: "Change an input binding",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, key, value := args[0], args[1], args[2]

		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		old, _ := s.mgr.InputTable().Lookup(section, key)
		if err := s.mgr.SetInput(section, key, value); err != nil {
			return Logger.ErrorfAndReturn("Failed to set input binding: %w", err)
		}

		done := ui.Success.Sprint("✓") + " " + ui.Name.Sprintf("%s.%s", section, key) + " set to " + ui.Value.Sprint(value)
		if err := s.save("Saving input bindings...", done); err != nil {
			return Logger.ErrorfAndReturn("Failed to save input bindings: %w", err)
		}

		audit.Log(s.mgr.Dir(), audit.Entry{
			Operation: audit.OpInputSet,
			Section:   section,
			Name:      key,
			Old:       old,
			New:       value,
		})
		return nil
	},
}
