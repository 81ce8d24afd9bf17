package core

import "testing"

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager()

	if m.Rehashes() != 0 {
		t.Errorf("Expected 0 rehashes after NewManager, got %d", m.Rehashes())
	}

	opts := m.Options()
	if opts.Overscan != (Overscan{Top: 8, Bottom: 8}) {
		t.Errorf("Unexpected default overscan: %+v", opts.Overscan)
	}
	if !opts.SpriteLimit {
		t.Error("Expected sprite limit enabled by default")
	}
	if opts.FavoredSystem != RegionNTSC {
		t.Errorf("Expected NTSC by default, got %s", opts.FavoredSystem)
	}

	for _, s := range m.Settings() {
		if !s.InRange(s.Val) {
			t.Errorf("Default for %q (%d) outside [%d, %d]", s.Name, s.Val, s.Min, s.Max)
		}
	}
}

func TestRehashReflectsSettingChanges(t *testing.T) {
	m := NewManager()

	changes := map[string]int{
		"overscan_l":       4,
		"favored_system":   3,
		"overclock":        1,
		"genie_distortion": 1,
		"palette":          9,
	}
	for name, v := range changes {
		s, ok := m.Setting(name)
		if !ok {
			t.Fatalf("Setting %q not found", name)
		}
		if err := s.Set(v); err != nil {
			t.Fatalf("Set(%s=%d) failed: %v", name, v, err)
		}
	}

	if m.Options().Overclock {
		t.Fatal("Options changed before Rehash")
	}

	m.Rehash()

	opts := m.Options()
	if opts.Overscan.Left != 4 {
		t.Errorf("Overscan.Left = %d, want 4", opts.Overscan.Left)
	}
	if opts.FavoredSystem != RegionDendy {
		t.Errorf("FavoredSystem = %s, want Dendy", opts.FavoredSystem)
	}
	if !opts.Overclock || !opts.GenieDistortion {
		t.Error("Expected Overclock and GenieDistortion enabled")
	}
	if opts.Palette != 9 {
		t.Errorf("Palette = %d, want 9", opts.Palette)
	}
	if m.Rehashes() != 1 {
		t.Errorf("Rehashes = %d, want 1", m.Rehashes())
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	s, _ := m.Setting("ntsc_filter")
	s.Val = 3

	m.Reset()

	if s.Val != 0 {
		t.Errorf("ntsc_filter after Reset = %d, want 0", s.Val)
	}
	if m.Options().NTSCFilter != 0 {
		t.Errorf("Options.NTSCFilter after Reset = %d, want 0", m.Options().NTSCFilter)
	}
}

func TestRegionString(t *testing.T) {
	tests := map[Region]string{
		RegionNTSC:    "NTSC",
		RegionPAL:     "PAL",
		RegionFamicom: "Famicom",
		RegionDendy:   "Dendy",
		Region(42):    "unknown",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Region(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
