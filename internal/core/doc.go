// Package core owns the emulator core's settings catalog.
//
// The settings manager treats the core as an external provider: it reads
// and overrides the descriptors returned by Manager.Settings and then calls
// Manager.Rehash so the core can recompute whatever it derives from them.
// Here that derived state is Options, a typed snapshot the rest of the
// program reads instead of poking at raw descriptor values.
package core
