package core

import "github.com/PolarWolf314/nstconf/internal/settings"

var coreDefaults = []settings.Setting{
	{
		Name:         "overscan_t",
		FriendlyName: "Overscan Mask (Top)",
		Opts:         "N = Hide N pixels of Overscan (Top)",
		Desc:         "Hide N pixels of Overscan (Top)",
		Val:          8, Min: 0, Max: 24,
	},
	{
		Name:         "overscan_b",
		FriendlyName: "Overscan Mask (Bottom)",
		Opts:         "N = Hide N pixels of Overscan (Bottom)",
		Desc:         "Hide N pixels of Overscan (Bottom)",
		Val:          8, Min: 0, Max: 24,
	},
	{
		Name:         "overscan_l",
		FriendlyName: "Overscan Mask (Left)",
		Opts:         "N = Hide N pixels of Overscan (Left)",
		Desc:         "Hide N pixels of Overscan (Left)",
		Val:          0, Min: 0, Max: 24,
	},
	{
		Name:         "overscan_r",
		FriendlyName: "Overscan Mask (Right)",
		Opts:         "N = Hide N pixels of Overscan (Right)",
		Desc:         "Hide N pixels of Overscan (Right)",
		Val:          0, Min: 0, Max: 24,
	},
	{
		Name:         "palette",
		FriendlyName: "Palette",
		Opts:         "0 = Consumer, 1 = Canonical, 2 = Alternative, 3 = RGB, 4 = PAL, 5 = Composite Direct FBX, 6 = PVM-style D93 FBX, 7 = NTSC Hardware FBX, 8 = NES Classic FBX FS, 9 = Raw, 10 = Custom",
		Desc:         "Select which colour palette to use",
		Val:          0, Min: 0, Max: 10,
	},
	{
		Name:         "ntsc_filter",
		FriendlyName: "NTSC Filter",
		Opts:         "0 = Disable, 1 = Composite, 2 = S-Video, 3 = RGB, 4 = Monochrome",
		Desc:         "Enable the NTSC filter",
		Val:          0, Min: 0, Max: 4,
	},
	{
		Name:         "sprite_limit",
		FriendlyName: "Sprite Limit",
		Opts:         "0 = Disable, 1 = Enable",
		Desc:         "Enable or disable the 8 sprites per scanline limit",
		Val:          1, Min: 0, Max: 1,
	},
	{
		Name:         "overclock",
		FriendlyName: "Overclock",
		Opts:         "0 = Disable, 1 = Enable",
		Desc:         "Overclock the CPU to reduce slowdown in some games",
		Val:          0, Min: 0, Max: 1,
	},
	{
		Name:         "favored_system",
		FriendlyName: "Favoured System",
		Opts:         "0 = NTSC, 1 = PAL, 2 = Famicom, 3 = Dendy",
		Desc:         "Select the system to emulate when the region cannot be detected",
		Val:          0, Min: 0, Max: 3,
		Flags: settings.FlagRestart,
	},
	{
		Name:         "ram_power_state",
		FriendlyName: "RAM Power-on State",
		Opts:         "0 = 0x00, 1 = 0xFF, 2 = Random",
		Desc:         "Select the value RAM is filled with at power on",
		Val:          0, Min: 0, Max: 2,
		Flags: settings.FlagRestart,
	},
	{
		Name:         "genie_distortion",
		FriendlyName: "Game Genie Sound Distortion",
		Opts:         "0 = Disable, 1 = Enable",
		Desc:         "Simulate the sound distortion caused by the Game Genie",
		Val:          0, Min: 0, Max: 1,
	},
	{
		Name:         "turbo_rate",
		FriendlyName: "Turbo Pulse Rate",
		Opts:         "N = Turbo Pulse every N frames",
		Desc:         "Set the number of frames between turbo button pulses",
		Val:          3, Min: 2, Max: 9,
		Flags: settings.FlagHidden,
	},
}

// Defaults returns a new catalog of core settings at their default values.
func Defaults() settings.Catalog {
	c := make(settings.Catalog, len(coreDefaults))
	for i := range coreDefaults {
		s := coreDefaults[i]
		c[i] = &s
	}
	return c
}
