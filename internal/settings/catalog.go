package settings

// Catalog is an ordered collection of settings owned by one component.
type Catalog []*Setting

// Lookup returns the setting with the given name.
func (c Catalog) Lookup(name string) (*Setting, bool) {
	if name == "" {
		return nil, false
	}
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Get returns the setting with the given name or Null.
func (c Catalog) Get(name string) *Setting {
	if s, ok := c.Lookup(name); ok {
		return s
	}
	return Null
}

// Names returns the setting names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, s := range c {
		names = append(names, s.Name)
	}
	return names
}

// Values returns a snapshot of the current values keyed by name.
func (c Catalog) Values() map[string]int {
	vals := make(map[string]int, len(c))
	for _, s := range c {
		vals[s.Name] = s.Val
	}
	return vals
}

// Visible returns the settings that are not flagged hidden.
func (c Catalog) Visible() Catalog {
	out := make(Catalog, 0, len(c))
	for _, s := range c {
		if !s.Has(FlagHidden) {
			out = append(out, s)
		}
	}
	return out
}

// Clone deep-copies every descriptor.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, s := range c {
		cp := *s
		out[i] = &cp
	}
	return out
}

// Reset copies the values of defaults back into c, matching by name.
// Settings missing from defaults are left alone.
func (c Catalog) Reset(defaults Catalog) {
	for _, s := range c {
		if d, ok := defaults.Lookup(s.Name); ok {
			s.Val = d.Val
		}
	}
}
