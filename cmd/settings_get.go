package cmd

import (
	"fmt"

	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/spf13/cobra"
)

var settingsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a setting in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		st, section, ok := s.lookup(name)
		if !ok {
			return Logger.ErrorfAndReturn("%s: %w", name, kerrors.ErrSettingNotFound)
		}
		Logger.Debugf("Found %s in [%s]", name, section)

		fmt.Println(ui.Name.Sprint(st.Name) + " " + ui.Muted.Sprint(section))
		fmt.Println(ui.Row(12, "Label", st.FriendlyName))
		fmt.Println(ui.Row(12, "Value", ui.Value.Sprint(st.Val)))
		fmt.Println(ui.Row(12, "Range", st.Range()))
		fmt.Println(ui.Row(12, "Options", st.Opts))
		fmt.Println(ui.Row(12, "Description", st.Desc))
		if st.Has(settings.FlagRestart) {
			fmt.Println(ui.Row(12, "Restart", "required"))
		}
		return nil
	},
}
