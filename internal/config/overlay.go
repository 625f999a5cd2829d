package config

import (
	"os"
	"syscall"

	"github.com/emberlight/cigbat/internal/models"
)

// LoadOverlayInfo loads the running overlay's record from ~/.cigbat/overlay.yaml.
// Returns nil if the file doesn't exist.
func LoadOverlayInfo() (*models.OverlayInfo, error) {
	path, err := GlobalOverlayFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.OverlayInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveOverlayInfo saves the overlay record to ~/.cigbat/overlay.yaml.
func SaveOverlayInfo(info *models.OverlayInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalOverlayFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveOverlayInfo removes the overlay.yaml file.
func RemoveOverlayInfo() error {
	path, err := GlobalOverlayFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsOverlayRunning reports whether the overlay recorded in overlay.yaml is
// still alive. A record whose PID is gone is removed.
func IsOverlayRunning() (bool, *models.OverlayInfo, error) {
	info, err := LoadOverlayInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if !pidAlive(info.PID) {
		_ = RemoveOverlayInfo()
		return false, info, nil
	}
	return true, info, nil
}

// pidAlive probes a PID with signal 0.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
