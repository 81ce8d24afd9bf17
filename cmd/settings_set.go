package cmd

import (
	"fmt"
	"strconv"

	"github.com/PolarWolf314/nstconf/internal/audit"
	"github.com/PolarWolf314/nstconf/internal/configs"
	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a setting",
	Long: `Changes a frontend or core setting and writes nestopia.conf.

Unlike loading the file, set is strict: an unknown name, a non-integer
value or a value outside the allowed range is reported and nothing is
written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, raw := args[0], args[1]
		Logger.Infof("Setting %s to %s", name, raw)

		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		st, section, ok := s.lookup(name)
		if !ok {
			return Logger.ErrorfAndReturn("%s: %w", name, kerrors.ErrSettingNotFound)
		}

		old := st.Val
		if err := st.Parse(raw); err != nil {
			return Logger.ErrorfAndReturn("%w (allowed: %s)", err, st.Opts)
		}
		if section == configs.CoreSection {
			s.core.Rehash()
		}

		done := ui.Success.Sprint("✓") + " " + ui.Name.Sprint(st.Name) + " set to " + ui.Value.Sprint(st.Val)
		if err := s.save("Saving settings...", done); err != nil {
			return Logger.ErrorfAndReturn("Failed to save settings: %w", err)
		}

		audit.Log(s.mgr.Dir(), audit.Entry{
			Operation: audit.OpSettingSet,
			Section:   section,
			Name:      st.Name,
			Old:       formatValue(old),
			New:       formatValue(st.Val),
		})

		if st.Has(settings.FlagRestart) && old != st.Val {
			fmt.Println(restartNotice())
		}
		return nil
	},
}

// formatValue renders a setting value for history entries.
func formatValue(v int) string {
	return strconv.Itoa(v)
}
