package settings

var frontendDefaults = []Setting{
	{
		Name:         "v_scale",
		FriendlyName: "Initial Window Scale",
		Opts:         "N = Window scale factor at startup",
		Desc:         "Set the window's initial scale factor (multiple of NES resolution)",
		Val:          2, Min: 1, Max: 16,
		Flags: FlagFrontend | FlagRestart,
	},
	{
		Name:         "v_linearfilter",
		FriendlyName: "Linear Filter",
		Opts:         "0 = Disable, 1 = Enable",
		Desc:         "Use the GPU's built-in linear filter for video output",
		Val:          1, Min: 0, Max: 1,
		Flags: FlagFrontend,
	},
	{
		Name:         "v_aspect",
		FriendlyName: "Aspect Ratio",
		Opts:         "0 = TV Correct, 1 = 1:1, 2 = 4:3",
		Desc:         "Set the aspect ratio to the correct TV aspect, 1:1 (square pixels), or 4:3",
		Val:          0, Min: 0, Max: 2,
		Flags: FlagFrontend,
	},
	{
		Name:         "a_rsqual",
		FriendlyName: "Audio Resampler Quality",
		Opts:         "0 = Sinc (Best), 1 = Sinc (Medium), 2 = Sinc (Fast), 3 = Zero Order Hold, 4 = Linear",
		Desc:         "Set the frontend's audio resampling quality. Use Sinc unless you are on extremely weak hardware.",
		Val:          2, Min: 0, Max: 4,
		Flags: FlagFrontend,
	},
	{
		Name:         "m_ffspeed",
		FriendlyName: "Fast-forward Speed",
		Opts:         "N = Fast-forward speed multiplier",
		Desc:         "Set the speed multiplier to run emulation faster",
		Val:          2, Min: 2, Max: 8,
		Flags: FlagFrontend,
	},
	{
		Name:         "m_hidecursor",
		FriendlyName: "Hide Cursor",
		Opts:         "0 = Disabled, 1 = Enabled",
		Desc:         "Hide the cursor when hovering over the UI",
		Val:          0, Min: 0, Max: 1,
		Flags: FlagFrontend,
	},
	{
		Name:         "m_hidecrosshair",
		FriendlyName: "Hide Crosshair",
		Opts:         "0 = Disabled, 1 = Enabled",
		Desc:         "Hide the crosshair when a Zapper is present",
		Val:          0, Min: 0, Max: 1,
		Flags: FlagFrontend,
	},
}

// Frontend returns a new catalog holding the frontend settings at their
// default values. Each call returns independent descriptors.
func Frontend() Catalog {
	c := make(Catalog, len(frontendDefaults))
	for i := range frontendDefaults {
		s := frontendDefaults[i]
		c[i] = &s
	}
	return c
}
