// Package overlay draws the battery sprite and label on screen.
package overlay

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/emberlight/cigbat/internal/engine"
	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/presentation"
)

// ErrNoWindow is returned by Open in builds without a window backend.
var ErrNoWindow = errors.New("overlay window not available in this build")

// Controls is the part of the event loop a surface drives.
type Controls interface {
	Step(ctx context.Context, now time.Time) bool
	Quit()
	Cycle()
	ToggleVisibility()
}

// Surface is a renderer that owns the process's main loop.
type Surface interface {
	engine.Renderer
	// Attach connects the surface to the loop it steps every frame.
	Attach(c Controls)
	// Run blocks on the main goroutine until the loop shuts down.
	Run(ctx context.Context) error
}

// Options configures a window surface.
type Options struct {
	Mode      models.DisplayMode
	AssetDir  string
	Size      int
	X, Y      int // negative = placed by the window system
	LabelSize float64
}

// LogRenderer is a renderer without a window. It logs what a window would
// show and is used by headless runs.
type LogRenderer struct {
	tier    presentation.Tier
	label   string
	glowing bool
	visible bool
	mode    models.DisplayMode
}

// NewLogRenderer creates a visible log renderer.
func NewLogRenderer() *LogRenderer {
	return &LogRenderer{visible: true}
}

func (r *LogRenderer) SetSprite(tier presentation.Tier) {
	r.tier = tier
	log.Printf("[overlay] Sprite %s", tier)
}

// SetLabel logs text changes; opacity steps during a fade are not logged.
func (r *LogRenderer) SetLabel(text string, _ float64) {
	if text == r.label {
		return
	}
	r.label = text
	log.Printf("[overlay] Label %q", text)
}

// SetGlowOpacity logs when the glow starts and stops pulsing.
func (r *LogRenderer) SetGlowOpacity(value float64) {
	glowing := value < 1
	if glowing == r.glowing {
		return
	}
	r.glowing = glowing
	if glowing {
		log.Printf("[overlay] Glow pulsing")
	} else {
		log.Printf("[overlay] Glow steady")
	}
}

func (r *LogRenderer) SetWindowLayering(mode models.DisplayMode) {
	r.mode = mode
	log.Printf("[overlay] Layering %s", mode)
}

func (r *LogRenderer) SetVisible(visible bool) {
	r.visible = visible
	log.Printf("[overlay] Visible %t", visible)
}

func (r *LogRenderer) ReloadSprites() error { return nil }

// Tier returns the last sprite tier set.
func (r *LogRenderer) Tier() presentation.Tier { return r.tier }

// Label returns the last label text set.
func (r *LogRenderer) Label() string { return r.label }

// Glowing reports whether the glow is below full opacity.
func (r *LogRenderer) Glowing() bool { return r.glowing }
