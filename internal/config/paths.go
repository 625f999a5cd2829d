// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global cigbat directory.
	GlobalDirName = ".cigbat"

	// AssetsDirName is the default sprite directory within the global directory.
	AssetsDirName = "assets"

	// LogsDirName is the name of the logs directory.
	LogsDirName = "logs"
)

// File names
const (
	OverlayFileName  = "overlay.yaml"
	SettingsFileName = "settings.yaml"
	LogFileName      = "cigbatd.log"
)

// GlobalDir returns the path to the global cigbat directory (~/.cigbat/).
// CIGBAT_HOME overrides it.
func GlobalDir() (string, error) {
	if dir := os.Getenv("CIGBAT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalOverlayFile returns the path to the overlay.yaml file.
func GlobalOverlayFile() (string, error) {
	return inGlobalDir(OverlayFileName)
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return inGlobalDir(SettingsFileName)
}

// GlobalLogsDir returns the path to the logs directory.
func GlobalLogsDir() (string, error) {
	return inGlobalDir(LogsDirName)
}

// GlobalLogFile returns the path to the overlay log file.
func GlobalLogFile() (string, error) {
	return inGlobalDir(LogsDirName, LogFileName)
}

// DefaultAssetsDir returns the path to ~/.cigbat/assets.
func DefaultAssetsDir() (string, error) {
	return inGlobalDir(AssetsDirName)
}

func inGlobalDir(elem ...string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// EnsureGlobalDir creates the global cigbat directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalLogsDir creates the global logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
