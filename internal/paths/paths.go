// Package paths resolves the filesystem locations pivot uses, following the
// XDG base directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "pivot"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
func DataHome() string {
	return xdg.DataHome
}

// ConfigFile returns the default config file path:
// <ConfigHome>/pivot/pivot.toml
func ConfigFile() string {
	return filepath.Join(ConfigHome(), AppName, AppName+".toml")
}

// RecentsFile returns the recents-history state file path:
// <DataHome>/pivot/recents.yaml
func RecentsFile() string {
	return filepath.Join(DataHome(), AppName, "recents.yaml")
}

// EnsureDir creates the directory and any necessary parents with specified
// permissions. If perm is 0, DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
