package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/nstconf/internal/audit"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

func init() {
	addCommonFlags(HistoryCmd)
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "show at most this many entries (0 for all)")
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output in JSON format")
}

// resetHistoryState resets the history command's flags for testing.
func resetHistoryState() {
	historyLimit = 20
	historyJSON = false
}

// HistoryCmd shows changes recorded by set and reset commands.
var HistoryCmd = &cobra.Command{
	Use:              "history",
	Short:            "Show changes made with nstconf",
	Args:             cobra.NoArgs,
	PersistentPreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve configuration directory: %w", err)
		}

		entries, err := audit.ReadEntries(dir)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read history: %w", err)
		}
		entries = audit.Last(entries, historyLimit)
		Logger.Debugf("Showing %d history entries", len(entries))

		if historyJSON {
			output, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal history to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(ui.Info.Sprint("→") + " No changes recorded yet")
			return nil
		}

		for _, e := range entries {
			fmt.Println(formatEntry(e))
		}
		return nil
	},
}

func formatEntry(e audit.Entry) string {
	line := ui.Muted.Sprint(e.Timestamp) + " " + e.Operation
	if e.Name == "" {
		return line
	}
	target := e.Name
	if e.Section != "" {
		target = e.Section + "." + e.Name
	}
	return line + " " + ui.Name.Sprint(target) + " " + e.Old + " → " + ui.Value.Sprint(e.New)
}
