package utils

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/nstconf/internal/errors"
)

// AppDirName is the directory name used under the XDG config home.
const AppDirName = "nestopia"

// ConfigDir returns the nestopia configuration directory. It does not
// create it.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", kerrors.ErrConfigDirUnavailable, err)
		}
	}

	return filepath.Join(home, ".config", AppDirName), nil
}

// EnsureDir creates path and any missing parents. An existing directory is
// not an error; an existing file at path is.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrConfigDirUnavailable, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
