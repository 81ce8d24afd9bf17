package configs

import (
	"github.com/PolarWolf314/nstconf/internal/settings"

	"gopkg.in/ini.v1"
)

// Load reads nestopia.conf into the frontend catalog and p's catalog, then
// rehashes p and replaces the input table with input.conf. Section and key
// names match regardless of case. p may be nil.
func (m *Manager) Load(p Provider) {
	if m.dir == "" {
		return
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, m.ConfigPath())
	if err != nil {
		m.log.Debugf("Ignoring unreadable %s: %v", m.ConfigPath(), err)
		cfg = ini.Empty()
	}

	m.apply(cfg, FrontendSection, m.settings)

	if p != nil {
		m.apply(cfg, CoreSection, p.Settings())
		p.Rehash()
	}

	if err := m.input.Load(m.InputPath()); err != nil {
		m.log.Debugf("Ignoring unreadable %s: %v", m.InputPath(), err)
	}
}

// apply overrides each setting in c with its value from section. Missing,
// empty, unparsable and out-of-range values leave the setting unchanged.
func (m *Manager) apply(cfg *ini.File, section string, c settings.Catalog) {
	sec, err := cfg.GetSection(section)
	if err != nil {
		m.log.Debugf("No [%s] section in %s", section, m.ConfigPath())
		return
	}

	for _, s := range c {
		if !sec.HasKey(s.Name) {
			continue
		}
		raw := sec.Key(s.Name).String()
		if raw == "" {
			continue
		}
		if err := s.Parse(raw); err != nil {
			m.log.Debugf("Ignoring [%s] %v", section, err)
			continue
		}
		m.log.Debugf("Loaded [%s] %s = %d", section, s.Name, s.Val)
	}
}
