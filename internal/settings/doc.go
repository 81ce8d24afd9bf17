// Package settings defines setting descriptors and the catalogs that hold
// them.
//
// A Setting carries everything needed to present, validate and persist a
// single integer option: its key name, a display label, a one-line summary
// of the allowed values, a long description, the current value and the
// inclusive [Min, Max] range. Flags record where a setting comes from and
// how it behaves (FlagFrontend, FlagRestart, FlagHidden).
//
// A Catalog is an ordered list of descriptors. Order matters: it is the
// order settings are written to disk and listed to the user.
//
// Frontend returns a fresh copy of the frontend's own catalog. Emulator
// core catalogs are built elsewhere (see the core package) and handed to
// the settings manager through its Provider interface.
package settings
