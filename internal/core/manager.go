package core

import "github.com/PolarWolf314/nstconf/internal/settings"

// Region is the system the core prefers when a ROM does not say.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
	RegionFamicom
	RegionDendy
)

func (r Region) String() string {
	switch r {
	case RegionNTSC:
		return "NTSC"
	case RegionPAL:
		return "PAL"
	case RegionFamicom:
		return "Famicom"
	case RegionDendy:
		return "Dendy"
	}
	return "unknown"
}

// Overscan is the number of pixels masked on each edge.
type Overscan struct {
	Top, Bottom, Left, Right int
}

// Options is the typed view of the core catalog, rebuilt by Rehash.
type Options struct {
	Overscan        Overscan
	Palette         int
	NTSCFilter      int
	SpriteLimit     bool
	Overclock       bool
	FavoredSystem   Region
	RAMPowerState   int
	GenieDistortion bool
	TurboRate       int
}

// Manager owns the core settings catalog.
type Manager struct {
	settings settings.Catalog
	opts     Options
	rehashes int
}

// NewManager returns a Manager with default settings already hashed.
func NewManager() *Manager {
	m := &Manager{settings: Defaults()}
	m.Rehash()
	m.rehashes = 0
	return m
}

// Settings returns the core catalog. The descriptors are shared with the
// Manager; call Rehash after changing them.
func (m *Manager) Settings() settings.Catalog {
	return m.settings
}

// Setting returns the core setting with the given name.
func (m *Manager) Setting(name string) (*settings.Setting, bool) {
	return m.settings.Lookup(name)
}

// Rehash rebuilds Options from the current descriptor values.
func (m *Manager) Rehash() {
	v := m.settings.Values()
	m.opts = Options{
		Overscan: Overscan{
			Top:    v["overscan_t"],
			Bottom: v["overscan_b"],
			Left:   v["overscan_l"],
			Right:  v["overscan_r"],
		},
		Palette:         v["palette"],
		NTSCFilter:      v["ntsc_filter"],
		SpriteLimit:     v["sprite_limit"] != 0,
		Overclock:       v["overclock"] != 0,
		FavoredSystem:   Region(v["favored_system"]),
		RAMPowerState:   v["ram_power_state"],
		GenieDistortion: v["genie_distortion"] != 0,
		TurboRate:       v["turbo_rate"],
	}
	m.rehashes++
}

// Options returns the options computed by the last Rehash.
func (m *Manager) Options() Options {
	return m.opts
}

// Rehashes returns how many times Rehash has run since NewManager.
func (m *Manager) Rehashes() int {
	return m.rehashes
}

// Reset restores every core setting to its default and rehashes.
func (m *Manager) Reset() {
	m.settings.Reset(Defaults())
	m.Rehash()
}
