// Package errors provides typed error values for nstconf.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Setting errors: unknown names, unparsable or out-of-range values
//     (ErrSettingNotFound, ErrInvalidValue, ErrValueOutOfRange)
//   - Input errors: missing bindings (ErrBindingNotFound)
//   - File errors: configuration directory problems (ErrConfigDirUnavailable)
//
// The settings manager itself never returns these while loading; a bad
// value in a configuration file is dropped and the default is kept. They
// surface from strict entry points such as settings.Setting.Parse and the
// CLI.
//
// # Usage
//
//	if err := s.Parse("17"); errors.Is(err, kerrors.ErrValueOutOfRange) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("setting %s: %w", name, errors.ErrSettingNotFound)
package errors
