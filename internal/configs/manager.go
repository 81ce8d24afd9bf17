package configs

import (
	"path/filepath"

	"github.com/PolarWolf314/nstconf/internal/input"
	logger "github.com/PolarWolf314/nstconf/internal/logging"
	"github.com/PolarWolf314/nstconf/internal/settings"
	"github.com/PolarWolf314/nstconf/internal/utils"
)

const (
	ConfigFileName = "nestopia.conf"
	InputFileName  = "input.conf"

	// FrontendSection holds the frontend catalog in nestopia.conf.
	FrontendSection = "frontend"
	// CoreSection holds the emulator core catalog in nestopia.conf.
	CoreSection = "nestopia"
)

// Provider is an externally owned settings catalog, such as the emulator
// core's. Settings returns descriptors the manager may modify in place;
// Rehash is called after a bulk update.
type Provider interface {
	Settings() settings.Catalog
	Rehash()
}

// resetter is implemented by providers that can restore their defaults.
type resetter interface {
	Reset()
}

// Manager owns the frontend settings catalog and mediates loading and
// saving of both catalogs and the input table.
type Manager struct {
	dir      string
	dirErr   error
	settings settings.Catalog
	input    *input.Table
	log      logger.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir uses dir instead of the XDG configuration directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithLogger sets the logger. The default logger only prints warnings.
func WithLogger(l logger.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// New returns a Manager with default frontend settings and makes sure the
// configuration directory exists. A nil table gets a fresh empty one.
//
// Failing to create the directory is not fatal: a warning is logged, the
// error is kept for DirErr, and later loads and saves quietly do nothing.
func New(table *input.Table, opts ...Option) *Manager {
	m := &Manager{
		settings: settings.Frontend(),
		input:    table,
	}
	if m.input == nil {
		m.input = input.NewTable()
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.dir == "" {
		dir, err := utils.ConfigDir()
		if err != nil {
			m.dirErr = err
			m.log.Warnf("Could not resolve configuration directory: %v", err)
			return m
		}
		m.dir = dir
	}

	m.log.Debugf("Using configuration directory %s", m.dir)
	if err := utils.EnsureDir(m.dir); err != nil {
		m.dirErr = err
		m.log.Warnf("Could not create configuration directory %s: %v", m.dir, err)
	}

	return m
}

// Dir returns the configuration directory.
func (m *Manager) Dir() string {
	return m.dir
}

// DirErr returns the error from resolving or creating the configuration
// directory, if any.
func (m *Manager) DirErr() error {
	return m.dirErr
}

// ConfigPath returns the path of nestopia.conf.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.dir, ConfigFileName)
}

// InputPath returns the path of input.conf.
func (m *Manager) InputPath() string {
	return filepath.Join(m.dir, InputFileName)
}

// Settings returns the frontend catalog. The descriptors are shared with
// the Manager.
func (m *Manager) Settings() settings.Catalog {
	return m.settings
}

// Setting returns the frontend setting with the given name.
func (m *Manager) Setting(name string) (*settings.Setting, bool) {
	return m.settings.Lookup(name)
}

// SettingOrNull returns the frontend setting with the given name, or
// settings.Null if there is none. Check the result with IsNull.
func (m *Manager) SettingOrNull(name string) *settings.Setting {
	return m.settings.Get(name)
}

// Reset restores the frontend defaults, and the provider's if it knows how.
func (m *Manager) Reset(p Provider) {
	m.settings.Reset(settings.Frontend())
	if r, ok := p.(resetter); ok {
		r.Reset()
	}
}

// InputTable returns the resident input table.
func (m *Manager) InputTable() *input.Table {
	return m.input
}

// Input returns the binding for section/key, storing def if there is none.
func (m *Manager) Input(section, key, def string) string {
	return m.input.Get(section, key, def)
}

// SetInput assigns value to the binding for section/key.
func (m *Manager) SetInput(section, key, value string) error {
	return m.input.Set(section, key, value)
}
