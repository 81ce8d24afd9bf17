package configs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/PolarWolf314/nstconf/internal/settings"

	"github.com/google/renameio/v2"
)

const configHeader = "; Nestopia UE Configuration File\n\n"

// Save writes nestopia.conf and input.conf. Failures are logged at debug
// level and otherwise ignored. p may be nil, in which case no core section
// is written.
func (m *Manager) Save(p Provider) {
	if err := m.Persist(p); err != nil {
		m.log.Debugf("Save skipped: %v", err)
	}
}

// Persist is Save that returns the first failure. input.conf is not
// written if nestopia.conf could not be.
func (m *Manager) Persist(p Provider) error {
	if m.dirErr != nil {
		return m.dirErr
	}

	var core settings.Catalog
	if p != nil {
		core = p.Settings()
	}

	if err := m.writeConfig(core); err != nil {
		return err
	}
	m.log.Debugf("Wrote %s", m.ConfigPath())

	if err := m.input.Save(m.InputPath()); err != nil {
		return err
	}
	m.log.Debugf("Wrote %s", m.InputPath())

	return nil
}

func (m *Manager) writeConfig(core settings.Catalog) error {
	pending, err := renameio.NewPendingFile(m.ConfigPath(), renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer pending.Cleanup()

	w := bufio.NewWriter(pending)
	if err := WriteConfig(w, m.settings, core); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}

// WriteConfig renders both catalogs in nestopia.conf format. The core
// section is omitted when core is nil.
func WriteConfig(w io.Writer, frontend, core settings.Catalog) error {
	if _, err := io.WriteString(w, configHeader); err != nil {
		return err
	}
	if err := writeSection(w, FrontendSection, frontend); err != nil {
		return err
	}
	if core == nil {
		return nil
	}
	return writeSection(w, CoreSection, core)
}

func writeSection(w io.Writer, name string, c settings.Catalog) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
		return err
	}
	for _, s := range c {
		if _, err := fmt.Fprintf(w, "; %s\n; %s\n%s = %d\n\n", s.Desc, s.Opts, s.Name, s.Val); err != nil {
			return err
		}
	}
	return nil
}
