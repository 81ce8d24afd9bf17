// Package utils provides filesystem helpers shared by the settings manager
// and the CLI.
//
// # Configuration Directory
//
// ConfigDir resolves where nestopia keeps its files:
//
//   - $XDG_CONFIG_HOME/nestopia when XDG_CONFIG_HOME is set
//   - $HOME/.config/nestopia otherwise
//
// EnsureDir creates a directory and its parents, treating an existing
// directory as success.
package utils
