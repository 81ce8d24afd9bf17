package cmd

import (
	"fmt"

	"github.com/PolarWolf314/nstconf/internal/audit"
	"github.com/PolarWolf314/nstconf/internal/ui"
	"github.com/PolarWolf314/nstconf/internal/utils"

	"github.com/spf13/cobra"
)

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where configuration files are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newManager()
		if err := mgr.DirErr(); err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve configuration directory: %w", err)
		}

		fmt.Println(ui.Row(10, "Directory", ui.Path.Sprint(mgr.Dir())))
		fmt.Println(ui.Row(10, "Settings", describeFile(mgr.ConfigPath())))
		fmt.Println(ui.Row(10, "Input", describeFile(mgr.InputPath())))
		fmt.Println(ui.Row(10, "History", describeFile(audit.LogPath(mgr.Dir()))))
		return nil
	},
}

func describeFile(path string) string {
	if utils.FileExists(path) {
		return ui.Path.Sprint(path)
	}
	return ui.Path.Sprint(path) + " " + ui.Muted.Sprint("not created yet")
}
