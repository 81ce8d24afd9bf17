package settings

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
)

// Flag is a bitmask describing the origin and behaviour of a setting.
type Flag uint32

const (
	// FlagFrontend marks settings owned by the frontend rather than the core.
	FlagFrontend Flag = 1 << iota
	// FlagRestart marks settings that only take effect after a restart.
	FlagRestart
	// FlagHidden marks settings that should not be offered in menus.
	FlagHidden
)

// Setting describes one configuration option and holds its current value.
type Setting struct {
	Name         string `json:"name" toml:"name"`
	FriendlyName string `json:"friendly_name" toml:"friendly_name"`
	Opts         string `json:"opts" toml:"opts"`
	Desc         string `json:"desc" toml:"desc"`
	Val          int    `json:"val" toml:"val"`
	Min          int    `json:"min" toml:"min"`
	Max          int    `json:"max" toml:"max"`
	Flags        Flag   `json:"flags" toml:"flags"`
}

// Null is returned by lookups that keep the sentinel convention. Its Name
// is empty, which no real setting has.
var Null = &Setting{}

// IsNull reports whether s is nil or the Null sentinel.
func (s *Setting) IsNull() bool {
	return s == nil || s == Null || s.Name == ""
}

// Has reports whether every bit of f is set on s.
func (s *Setting) Has(f Flag) bool {
	return s.Flags&f == f
}

// InRange reports whether v lies within [Min, Max].
func (s *Setting) InRange(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Parse converts raw to an integer and commits it if it is within range.
// Surrounding spaces are ignored but the whole remainder must be a decimal
// integer: "3abc" is rejected, not read as 3. On any error the current
// value is left untouched.
func (s *Setting) Parse(raw string) error {
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", s.Name, raw, kerrors.ErrInvalidValue)
	}
	return s.Set(v)
}

// Set commits v if it is within range.
func (s *Setting) Set(v int) error {
	if !s.InRange(v) {
		return fmt.Errorf("%s=%d not in [%d, %d]: %w", s.Name, v, s.Min, s.Max, kerrors.ErrValueOutOfRange)
	}
	s.Val = v
	return nil
}

// Range returns the allowed range formatted as "min-max".
func (s *Setting) Range() string {
	return fmt.Sprintf("%d-%d", s.Min, s.Max)
}
