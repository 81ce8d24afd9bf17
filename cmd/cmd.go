// Package cmd implements the nstconf subcommands.
package cmd

import (
	"github.com/PolarWolf314/nstconf/internal/configs"
	"github.com/PolarWolf314/nstconf/internal/core"
	"github.com/PolarWolf314/nstconf/internal/input"
	logger "github.com/PolarWolf314/nstconf/internal/logging"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose   bool
	debug     bool
	configDir string
	Logger    logger.Logger
)

// addCommonFlags registers the flags every command group shares.
func addCommonFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PersistentFlags().StringVar(&configDir, "config-dir", "", "use this directory instead of $XDG_CONFIG_HOME/nestopia")
}

// initLogger is the PersistentPreRun shared by every command group.
func initLogger(c *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", c.Name(), verbose, debug)
}

// session holds the managers a command works with.
type session struct {
	mgr  *configs.Manager
	core *core.Manager
}

// newManager creates a settings manager honouring --config-dir without
// loading anything.
func newManager() *configs.Manager {
	opts := []configs.Option{configs.WithLogger(Logger)}
	if configDir != "" {
		opts = append(opts, configs.WithDir(configDir))
	}
	return configs.New(input.NewTable(), opts...)
}

// resolveDir returns the configuration directory honouring --config-dir,
// without creating it.
func resolveDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return utils.ConfigDir()
}

// openSession creates the settings manager and loads both catalogs and the
// input table from disk.
func openSession() (*session, error) {
	mgr := newManager()
	if err := mgr.DirErr(); err != nil {
		return nil, err
	}

	c := core.NewManager()
	mgr.Load(c)
	Logger.Infof("Loaded settings from %s", mgr.ConfigPath())

	return &session{mgr: mgr, core: c}, nil
}

// lookup finds a setting in the frontend catalog, then the core catalog,
// and returns the section it belongs to.
func (s *session) lookup(name string) (*settings.Setting, string, bool) {
	if st, ok := s.mgr.Setting(name); ok {
		return st, configs.FrontendSection, true
	}
	if st, ok := s.core.Setting(name); ok {
		return st, configs.CoreSection, true
	}
	return nil, "", false
}

// save writes both files behind a spinner and prints done on success.
func (s *session) save(message, done string) error {
	spin, cleanup := startSpinner(message)
	defer cleanup()

	if err := s.mgr.Persist(s.core); err != nil {
		return err
	}
	spin.FinalMSG = done
	return nil
}

// ResetGlobalState resets all command state to defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configDir = ""
	Logger = logger.Logger{}
	resetSettingsListState()
	resetInputGetState()
	resetHistoryState()
	for _, c := range []*cobra.Command{SettingsCmd, InputCmd, HistoryCmd} {
		resetCobraFlagState(c)
	}
}

// resetCobraFlagState clears Changed on every flag of c and its children.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
	for _, child := range c.Commands() {
		resetCobraFlagState(child)
	}
}
