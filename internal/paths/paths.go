package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for the configuration subdirectory.
	toolName = "cruxpack"

	// Directory the build command must produce.
	Dist = "dist"

	// Scratch directory the build output is staged in before archiving.
	Staging = "tmp"

	// Directory the archive is written to. Recreated on every run.
	Publish = "publish"

	// Top-level directory inside the archive.
	Bundle = "UniV"

	// Name of a configuration file in the working directory.
	LocalConfig = "cruxpack.yaml"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the per-user configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/cruxpack/config.yaml or ~/.config/cruxpack/config.yaml
//	macOS:   ~/Library/Application Support/cruxpack/config.yaml
//	Windows: %LOCALAPPDATA%\cruxpack\config.yaml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.yaml")
}

// Returns the configuration file to load.
//
// An explicit path always wins. Otherwise [LocalConfig] in the working
// directory is preferred over [UserConfig]. Returns "" when neither exists.
func ConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, p := range []string{LocalConfig, UserConfig()} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
