package input

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/nstconf/internal/errors"

	"github.com/google/renameio/v2"
	"gopkg.in/ini.v1"
)

// Binding values are arbitrary strings: inline comments, trailing
// backslashes and surrounding quotes are kept as written.
var loadOptions = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Table is the resident input-binding store.
type Table struct {
	file *ini.File
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{file: ini.Empty(loadOptions)}
}

// Load replaces the table's contents with the bindings in path. A missing
// file leaves the table empty. On a parse error the table is emptied and
// the error returned.
func (t *Table) Load(path string) error {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		t.file = ini.Empty(loadOptions)
		return err
	}
	t.file = f
	return nil
}

// Save atomically replaces path with the table, including any comments
// read from disk.
func (t *Table) Save(path string) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending input file: %w", err)
	}
	defer pending.Cleanup()

	if _, err := t.WriteTo(pending); err != nil {
		return fmt.Errorf("write input bindings: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace input file: %w", err)
	}
	return nil
}

// WriteTo writes the table in INI form to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	restore := t.quoteSpacedValues()
	defer restore()
	return t.file.WriteTo(w)
}

// quoteSpacedValues wraps values with leading or trailing whitespace in
// triple quotes for the duration of a write, since the writer's own
// single quoting is kept verbatim on reload. The returned func unwraps them.
func (t *Table) quoteSpacedValues() func() {
	var quoted []*ini.Key
	for _, sec := range t.file.Sections() {
		for _, k := range sec.Keys() {
			v := k.Value()
			if v == strings.TrimSpace(v) || strings.ContainsAny(v, "\n`") {
				continue
			}
			k.SetValue(`"""` + v + `"""`)
			quoted = append(quoted, k)
		}
	}
	return func() {
		for _, k := range quoted {
			v := k.Value()
			k.SetValue(v[3 : len(v)-3])
		}
	}
}

// Get returns the binding for section/key. If there is none, def is stored
// and returned. An empty key cannot be stored, so def is returned without
// being recorded.
func (t *Table) Get(section, key, def string) string {
	if v, ok := t.Lookup(section, key); ok {
		return v
	}
	_ = t.Set(section, key, def)
	return def
}

// Lookup returns the binding for section/key without creating it.
func (t *Table) Lookup(section, key string) (string, bool) {
	sec, err := t.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// Set assigns value to section/key. Empty keys are rejected.
func (t *Table) Set(section, key, value string) error {
	if key == "" {
		return fmt.Errorf("[%s] empty key: %w", section, kerrors.ErrInvalidBinding)
	}
	sec := t.file.Section(section)
	if sec.HasKey(key) {
		sec.Key(key).SetValue(value)
		return nil
	}
	if _, err := sec.NewKey(key, value); err != nil {
		return fmt.Errorf("[%s] %s: %v: %w", section, key, err, kerrors.ErrInvalidBinding)
	}
	return nil
}

// Has reports whether section/key has a binding.
func (t *Table) Has(section, key string) bool {
	_, ok := t.Lookup(section, key)
	return ok
}

// Sections returns the section names in file order. The unnamed default
// section is only included when it holds keys.
func (t *Table) Sections() []string {
	var names []string
	for _, sec := range t.file.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

// Keys returns the key names of section in insertion order.
func (t *Table) Keys(section string) []string {
	sec, err := t.file.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.KeyStrings()
}

// Len returns the number of bindings across all sections.
func (t *Table) Len() int {
	n := 0
	for _, sec := range t.file.Sections() {
		n += len(sec.Keys())
	}
	return n
}
