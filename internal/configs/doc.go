// Package configs loads and saves nestopia's settings files.
//
// Two files live in the configuration directory (see utils.ConfigDir):
//
//   - nestopia.conf: integer settings, frontend settings under [frontend]
//     and emulator core settings under [nestopia]
//   - input.conf: input bindings, arbitrary sections and string values
//
// # Loading
//
// Manager.Load is best-effort. A missing file, a missing or empty key, a
// value that is not an integer and a value outside the setting's range are
// all skipped, and the setting keeps whatever value it had. Nothing is
// reported to the caller; rejected values are only visible with a debug
// logger.
//
// After the core section has been applied the provider is rehashed so it
// can rebuild any state derived from its settings.
//
// # Saving
//
// Manager.Save rewrites nestopia.conf from scratch, each setting preceded
// by its description and allowed values as comments:
//
//	; Nestopia UE Configuration File
//
//	[frontend]
//	; Set the window's initial scale factor (multiple of NES resolution)
//	; N = Window scale factor at startup
//	v_scale = 2
//
// If nestopia.conf cannot be written Save returns without touching
// input.conf. Manager.Persist does the same work but reports the failure.
//
// # Input Bindings
//
// The input table is created by the caller and handed to New, so several
// components can share one table without package state.
package configs
