// FILE: lixenwraith/settings/discovery.go
package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultFileName is the store file name used by DefaultPaths.
const DefaultFileName = "settings.json"

// Paths locates the store file and profile directory of an application.
type Paths struct {
	// File is the persistent store file
	File string

	// ProfileDir holds one file per profile
	ProfileDir string
}

// DefaultPaths returns the per-user locations for appName:
// $XDG_CONFIG_HOME/<app>/settings.json and a profiles/ directory beside it.
// <APP>_SETTINGS overrides the store file; the profile directory follows it.
func DefaultPaths(appName string) Paths {
	envVar := strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_SETTINGS"
	file := os.Getenv(envVar)
	if file == "" {
		file = filepath.Join(configHome(), appName, DefaultFileName)
	}
	return Paths{
		File:       file,
		ProfileDir: filepath.Join(filepath.Dir(file), DefaultProfileDirName),
	}
}

// configHome returns the user configuration base directory.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}
