// Package models contains shared data structures used across the application.
package models

import "fmt"

// DisplayMode selects how the overlay window is layered on the desktop.
// It is fixed for the lifetime of an overlay process.
type DisplayMode string

const (
	// ModeOverlay keeps the window above all other windows.
	ModeOverlay DisplayMode = "overlay"
	// ModeWallpaper keeps the window below normal windows.
	ModeWallpaper DisplayMode = "wallpaper"
)

// DisplayModes lists the accepted modes in menu order.
var DisplayModes = []DisplayMode{ModeOverlay, ModeWallpaper}

// ParseDisplayMode parses a --mode value. An empty value means ModeOverlay.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case "", ModeOverlay:
		return ModeOverlay, nil
	case ModeWallpaper:
		return ModeWallpaper, nil
	default:
		return ModeOverlay, fmt.Errorf("unknown display mode %q (expected overlay or wallpaper)", s)
	}
}

// Flag returns the command-line argument that selects this mode.
func (m DisplayMode) Flag() string {
	return "--mode=" + string(m)
}

// Title returns the human label used by the chooser and tray.
func (m DisplayMode) Title() string {
	switch m {
	case ModeWallpaper:
		return "Wallpaper Mode"
	default:
		return "Overlay (Always on Top)"
	}
}

func (m DisplayMode) String() string {
	return string(m)
}
