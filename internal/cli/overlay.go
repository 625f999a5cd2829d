package cli

import (
	"fmt"
	"time"

	"github.com/emberlight/cigbat/internal/config"
	"github.com/emberlight/cigbat/internal/launcher"
	"github.com/emberlight/cigbat/internal/models"
)

// startupWait bounds how long launch waits for the overlay to record itself.
const startupWait = 5 * time.Second

// startOverlay spawns a detached overlay in mode and waits briefly for its
// record. A nil info with a nil error means the process started but has not
// recorded itself yet.
func startOverlay(mode models.DisplayMode) (*models.OverlayInfo, error) {
	path, err := launcher.FindOverlayBinary()
	if err != nil {
		return nil, &launcher.LaunchError{Mode: mode, Err: err}
	}

	if err := launcher.New(path).Launch(mode); err != nil {
		return nil, err
	}

	// Wait for the overlay to be ready
	for waited := time.Duration(0); waited < startupWait; waited += 100 * time.Millisecond {
		time.Sleep(100 * time.Millisecond)
		running, info, err := config.IsOverlayRunning()
		if err == nil && running {
			return info, nil
		}
	}
	return nil, nil
}

// GetOverlayStatus returns the recorded overlay, if it is alive.
func GetOverlayStatus() (bool, *models.OverlayInfo, error) {
	running, info, err := config.IsOverlayRunning()
	if err != nil {
		return false, nil, fmt.Errorf("failed to check overlay status: %w", err)
	}
	if !running {
		return false, nil, nil
	}
	return true, info, nil
}
