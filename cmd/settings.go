package cmd

import (
	"github.com/spf13/cobra"
)

// SettingsCmd is the top-level settings command.
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change nestopia settings",
	Long: `Provides commands for reading and changing the settings stored in nestopia.conf.

Frontend settings live in the [frontend] section, emulator core settings in
the [nestopia] section. Values are integers with a fixed allowed range.

Examples:
  # List every setting with its current value
  nstconf settings list

  # Show one setting in detail
  nstconf settings get v_scale

  # Change a setting
  nstconf settings set v_scale 3

  # Restore all defaults
  nstconf settings reset`,
	PersistentPreRun: initLogger,
}

func init() {
	addCommonFlags(SettingsCmd)

	SettingsCmd.AddCommand(settingsListCmd)
	SettingsCmd.AddCommand(settingsGetCmd)
	SettingsCmd.AddCommand(settingsSetCmd)
	SettingsCmd.AddCommand(settingsResetCmd)
	SettingsCmd.AddCommand(settingsPathCmd)
}

// GetSettingsCmd returns the SettingsCmd for testing.
func GetSettingsCmd() *cobra.Command {
	return SettingsCmd
}
