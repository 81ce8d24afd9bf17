package cmd

import (
	"github.com/PolarWolf314/nstconf/internal/audit"
	"github.com/PolarWolf314/nstconf/internal/configs"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every setting to its default",
	Long: `Restores the frontend and core settings to their defaults and writes
nestopia.conf. Input bindings are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		frontendBefore := s.mgr.Settings().Clone()
		coreBefore := s.core.Settings().Clone()

		s.mgr.Reset(s.core)
		Logger.Debugf("Defaults restored, core rehashed %d times", s.core.Rehashes())

		done := ui.Success.Sprint("✓") + " Settings restored to defaults"
		if err := s.save("Saving settings...", done); err != nil {
			return Logger.ErrorfAndReturn("Failed to save settings: %w", err)
		}

		logResets(s.mgr.Dir(), configs.FrontendSection, frontendBefore, s.mgr.Settings())
		logResets(s.mgr.Dir(), configs.CoreSection, coreBefore, s.core.Settings())
		return nil
	},
}

// logResets records one history entry for every setting whose value the
// reset changed.
func logResets(dir, section string, before, after settings.Catalog) {
	for _, old := range before {
		cur, ok := after.Lookup(old.Name)
		if !ok || cur.Val == old.Val {
			continue
		}
		audit.Log(dir, audit.Entry{
			Operation: audit.OpSettingReset,
			Section:   section,
			Name:      old.Name,
			Old:       formatValue(old.Val),
			New:       formatValue(cur.Val),
		})
	}
}
