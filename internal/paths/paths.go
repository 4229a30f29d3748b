package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	programName = "xpack"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Base names searched for a configuration file, in order of preference.
var ConfigNames = []string{"xpack.yaml", "xpack.yml", "xpack.toml"}

// Directory holding the user-level configuration.
//
//	Linux:   $XDG_CONFIG_HOME/xpack or ~/.config/xpack
//	macOS:   ~/Library/Application Support/xpack
//	Windows: %LOCALAPPDATA%\xpack
func Config() string {
	return filepath.Join(xdg.ConfigHome, programName)
}

// Returns the configuration files that exist in dir, in [ConfigNames] order.
func ConfigFiles(dir string) []string {
	var found []string
	for _, name := range ConfigNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			found = append(found, p)
		}
	}
	return found
}

// Locates the configuration file for a project.
//
// The project root is searched first, then the user-level directory. Returns
// an empty string when neither holds a configuration file.
func FindConfig(root string) string {
	for _, dir := range []string{root, Config()} {
		if files := ConfigFiles(dir); len(files) > 0 {
			return files[0]
		}
	}
	return ""
}
