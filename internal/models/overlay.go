package models

import (
	"time"

	"github.com/google/uuid"
)

// OverlayInfo describes a running overlay process.
// This corresponds to ~/.cigbat/overlay.yaml.
type OverlayInfo struct {
	Version    int         `yaml:"version"`
	InstanceID string      `yaml:"instance_id"`
	PID        int         `yaml:"pid"`
	Mode       DisplayMode `yaml:"mode"`
	StartedAt  time.Time   `yaml:"started_at"`
}

// NewOverlayInfo creates overlay info for the current process.
func NewOverlayInfo(mode DisplayMode, pid int) *OverlayInfo {
	return &OverlayInfo{
		Version:    1,
		InstanceID: uuid.NewString(),
		PID:        pid,
		Mode:       mode,
		StartedAt:  time.Now().UTC(),
	}
}
