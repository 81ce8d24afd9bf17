package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/nstconf/internal/configs"
	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var (
	listSection string
	listAll     bool
	listJSON    bool
	listTOML    bool
)

func init() {
	settingsListCmd.Flags().StringVarP(&listSection, "section", "s", "", "only list one section (frontend or nestopia)")
	settingsListCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include hidden settings")
	settingsListCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	settingsListCmd.Flags().BoolVar(&listTOML, "toml", false, "output in TOML format")
	settingsListCmd.MarkFlagsMutuallyExclusive("json", "toml")
}

// resetSettingsListState resets the list command's flags for testing.
func resetSettingsListState() {
	listSection = ""
	listAll = false
	listJSON = false
	listTOML = false
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings and their current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("Flags: section=%q, all=%t, json=%t, toml=%t", listSection, listAll, listJSON, listTOML)

		switch listSection {
		case "", configs.FrontendSection, configs.CoreSection:
		default:
			return Logger.ErrorfAndReturn("unknown section %q: %w", listSection, kerrors.ErrSettingNotFound)
		}

		s, err := openSession()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open configuration: %w", err)
		}

		sections := listedSections(s)

		switch {
		case listJSON:
			return outputSettingsJSON(sections)
		case listTOML:
			return outputSettingsTOML(sections)
		}
		outputSettingsText(sections)
		return nil
	},
}

// section pairs a catalog with the name it is stored under.
type section struct {
	name    string
	catalog settings.Catalog
}

func listedSections(s *session) []section {
	all := []section{
		{configs.FrontendSection, s.mgr.Settings()},
		{configs.CoreSection, s.core.Settings()},
	}

	var out []section
	for _, sec := range all {
		if listSection != "" && listSection != sec.name {
			continue
		}
		if !listAll {
			sec.catalog = sec.catalog.Visible()
		}
		out = append(out, sec)
	}
	return out
}

// sectionValues copies each catalog into plain values for encoding.
func sectionValues(sections []section) map[string][]settings.Setting {
	out := make(map[string][]settings.Setting, len(sections))
	for _, sec := range sections {
		vals := make([]settings.Setting, 0, len(sec.catalog))
		for _, st := range sec.catalog {
			vals = append(vals, *st)
		}
		out[sec.name] = vals
	}
	return out
}

func outputSettingsJSON(sections []section) error {
	output, err := json.MarshalIndent(sectionValues(sections), "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}

func outputSettingsTOML(sections []section) error {
	if err := toml.NewEncoder(os.Stdout).Encode(sectionValues(sections)); err != nil {
		return Logger.ErrorfAndReturn("Failed to encode settings as TOML: %v", err)
	}
	return nil
}

func outputSettingsText(sections []section) {
	for i, sec := range sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(ui.Info.Sprintf("[%s]", sec.name))
		for _, st := range sec.catalog {
			line := fmt.Sprintf("  %-18s %s %s", st.Name, ui.Value.Sprint(st.Val), ui.Muted.Sprint(st.Range()))
			if st.Has(settings.FlagRestart) {
				line += " " + ui.Warning.Sprint("*")
			}
			fmt.Println(line)
		}
	}
}
