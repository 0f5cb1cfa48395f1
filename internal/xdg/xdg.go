// Package xdg resolves XDG Base Directory Specification compliant paths
// for the client's config, state and cache files.
package xdg

import (
	"os"
	"path/filepath"
)

// XDGDirs provides access to the base directories the client uses.
type XDGDirs struct {
	configHome string
	stateHome  string
	cacheHome  string
}

// NewXDGDirs creates an XDGDirs instance with proper defaults according
// to the XDG spec.
func NewXDGDirs() *XDGDirs {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			homeDir = "/tmp" // Last resort fallback
		}
	}

	xdg := &XDGDirs{}

	// XDG_CONFIG_HOME: user-specific configuration files
	xdg.configHome = os.Getenv("XDG_CONFIG_HOME")
	if xdg.configHome == "" {
		xdg.configHome = filepath.Join(homeDir, ".config")
	}

	// XDG_STATE_HOME: user-specific state data
	xdg.stateHome = os.Getenv("XDG_STATE_HOME")
	if xdg.stateHome == "" {
		xdg.stateHome = filepath.Join(homeDir, ".local", "state")
	}

	// XDG_CACHE_HOME: user-specific non-essential (cached) data
	xdg.cacheHome = os.Getenv("XDG_CACHE_HOME")
	if xdg.cacheHome == "" {
		xdg.cacheHome = filepath.Join(homeDir, ".cache")
	}

	return xdg
}

// AppConfigDir returns the application-specific config directory.
func (x *XDGDirs) AppConfigDir(appName string) string {
	return filepath.Join(x.configHome, appName)
}

// AppStateDir returns the application-specific state directory.
func (x *XDGDirs) AppStateDir(appName string) string {
	return filepath.Join(x.stateHome, appName)
}

// AppCacheDir returns the application-specific cache directory.
func (x *XDGDirs) AppCacheDir(appName string) string {
	return filepath.Join(x.cacheHome, appName)
}

// EnsureDir creates the directory with appropriate permissions if it
// doesn't exist.
func (x *XDGDirs) EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
