// Package xdg resolves splitwatch directories under the XDG base directories.
package xdg

import (
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const (
	appName = "splitwatch"

	// ConfigHomeEnvVar overrides XDG_CONFIG_HOME for splitwatch only.
	ConfigHomeEnvVar = "SPLITWATCH_XDG_CONFIG_HOME"
)

// ConfigHome returns the base config directory. SPLITWATCH_XDG_CONFIG_HOME
// takes precedence over XDG_CONFIG_HOME.
func ConfigHome() string {
	if dir := os.Getenv(ConfigHomeEnvVar); dir != "" {
		return dir
	}
	return adrg.ConfigHome
}

// ConfigDir returns the splitwatch config directory joined with subpath.
// The directory is not created.
func ConfigDir(subpath ...string) string {
	return filepath.Join(append([]string{ConfigHome(), appName}, subpath...)...)
}
