package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/nstconf/cmd"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "nstconf",
	SilenceUsage: true,
	Short:        "nstconf - Manage Nestopia UE settings and input bindings.",
	Long: `nstconf reads and writes the configuration files of the Nestopia UE frontend.

Files:
  nestopia.conf   frontend and emulator core settings
  input.conf      input bindings
  history.jsonl   changes made with nstconf

They live in $XDG_CONFIG_HOME/nestopia, or ~/.config/nestopia when
XDG_CONFIG_HOME is not set.

Available Commands:
  settings   Inspect and change settings
  input      Inspect and change input bindings
  history    Show changes made with nstconf

Run 'nstconf help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		fmt.Print(figure.NewFigure("nstconf", "", true).String())
		fmt.Println()
		fmt.Println("Run " + ui.Code.Sprint("nstconf --help") + " to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.SettingsCmd)
	rootCmd.AddCommand(cmd.InputCmd)
	rootCmd.AddCommand(cmd.HistoryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
