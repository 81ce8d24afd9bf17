package cmd

import (
	"fmt"

	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var inputListCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "List input bindings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		table := s.mgr.InputTable()
		sections := table.Sections()
		if len(args) == 1 {
			sections = []string{args[0]}
		}

		if table.Len() == 0 {
			fmt.Println(ui.Warning.Sprint("⚠") + " No input bindings found in " + ui.Path.Sprint(s.mgr.InputPath()))
			return nil
		}

		for i, section := range sections {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(ui.Info.Sprintf("[%s]", section))
			for _, key := range table.Keys(section) {
				value, _ := table.Lookup(section, key)
				fmt.Printf("  %-18s %s\n", key, ui.Value.Sprint(value))
			}
		}
		return nil
	},
}
