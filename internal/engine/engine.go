// Package engine runs the overlay's presentation state machine.
//
// An Engine turns battery samples into directives and hands them to the
// animation coordinator and the renderer. It is not safe for concurrent use:
// every method is called from the Loop that owns it.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/emberlight/cigbat/internal/animation"
	"github.com/emberlight/cigbat/internal/battery"
	"github.com/emberlight/cigbat/internal/config"
	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/presentation"
)

// Renderer draws the overlay. Implementations live outside the engine.
type Renderer interface {
	SetSprite(tier presentation.Tier)
	SetLabel(text string, opacity float64)
	SetGlowOpacity(value float64)
	SetWindowLayering(mode models.DisplayMode)
	SetVisible(visible bool)
	ReloadSprites() error
}

// StatusSink receives state changes the tray shows.
type StatusSink interface {
	DirectiveChanged(d presentation.Directive)
	TestModeChanged(enabled bool)
	VisibilityChanged(visible bool)
}

// State is the engine's lifecycle state.
type State int

const (
	// StateIdle means nothing has been rendered yet.
	StateIdle State = iota
	// StateRendering means a directive is on screen.
	StateRendering
)

func (s State) String() string {
	if s == StateRendering {
		return "rendering"
	}
	return "idle"
}

// Options configures a new Engine.
type Options struct {
	Mode      models.DisplayMode
	Live      battery.Sampler
	Simulated *battery.Simulated // nil = battery.DefaultLevels
	Renderer  Renderer
	Status    StatusSink // optional
	Animation animation.Config
	Glyph     string
}

// Engine owns the current directive and both animation channels.
type Engine struct {
	mode     models.DisplayMode
	live     battery.Sampler
	sim      *battery.Simulated
	renderer Renderer
	status   StatusSink
	glyph    string

	state    State
	current  presentation.Directive
	anim     *animation.Coordinator
	testMode bool
	visible  bool
	stopped  bool

	// last frame handed to the renderer
	shown  animation.Frame
	pushed bool
}

// New creates an engine and applies the window layering for opts.Mode.
// The mode is fixed for the engine's lifetime.
func New(opts Options) *Engine {
	sim := opts.Simulated
	if sim == nil {
		sim = battery.NewSimulated(nil)
	}
	e := &Engine{
		mode:     opts.Mode,
		live:     opts.Live,
		sim:      sim,
		renderer: opts.Renderer,
		status:   opts.Status,
		glyph:    opts.Glyph,
		anim:     animation.NewCoordinator(opts.Animation),
		visible:  true,
	}
	e.renderer.SetWindowLayering(e.mode)
	return e
}

// Tick samples the battery and applies the resulting directive.
func (e *Engine) Tick(ctx context.Context, now time.Time) {
	if e.stopped {
		return
	}
	var sampler battery.Sampler = e.live
	if e.testMode {
		sampler = e.sim
	}
	e.apply(now, presentation.DirectiveFor(sampler.Next(ctx), e.glyph))
}

// Cycle advances the simulated level and re-runs a tick immediately.
// Outside test mode it does nothing.
func (e *Engine) Cycle(ctx context.Context, now time.Time) {
	if e.stopped {
		return
	}
	if !e.testMode {
		if config.Debug() {
			log.Printf("[engine] Cycle ignored: test mode is off")
		}
		return
	}
	e.sim.Advance()
	e.Tick(ctx, now)
}

// ToggleTestMode switches between the live and simulated samplers and
// re-runs a tick.
func (e *Engine) ToggleTestMode(ctx context.Context, now time.Time) {
	if e.stopped {
		return
	}
	e.testMode = !e.testMode
	log.Printf("[engine] Test mode %s", onOff(e.testMode))
	if e.status != nil {
		e.status.TestModeChanged(e.testMode)
	}
	e.Tick(ctx, now)
}

// ToggleVisibility hides or shows the overlay. Hiding is not quitting.
func (e *Engine) ToggleVisibility() {
	if e.stopped {
		return
	}
	e.visible = !e.visible
	e.renderer.SetVisible(e.visible)
	if e.status != nil {
		e.status.VisibilityChanged(e.visible)
	}
}

// ReloadAssets asks the renderer to reload its sprites and re-applies the
// current tier.
func (e *Engine) ReloadAssets() {
	if e.stopped {
		return
	}
	if err := e.renderer.ReloadSprites(); err != nil {
		log.Printf("[engine] Failed to reload sprites: %v", err)
		return
	}
	if e.state == StateRendering {
		e.renderer.SetSprite(e.current.Tier)
	}
}

// Frame advances the animations to now and pushes any change to the renderer.
func (e *Engine) Frame(now time.Time) {
	if e.stopped {
		return
	}
	e.push(e.anim.Advance(now), false)
}

// Shutdown cancels both animation channels and leaves the renderer on their
// final values. Later calls to any method do nothing.
func (e *Engine) Shutdown() {
	if e.stopped {
		return
	}
	e.stopped = true
	e.anim.Cancel()
	e.push(e.anim.Frame(), true)
}

func (e *Engine) apply(now time.Time, d presentation.Directive) {
	first := e.state == StateIdle
	if !first && !presentation.NeedsRender(e.current, d) {
		return
	}

	if first || d.Tier != e.current.Tier {
		e.renderer.SetSprite(d.Tier)
	}
	if first || d.Label != e.current.Label {
		e.anim.RetargetText(now, d.Label)
	}
	e.anim.SetCharging(now, d.Charging)

	if first || d.Tier != e.current.Tier || d.Charging != e.current.Charging {
		log.Printf("[engine] %s tier=%s charging=%t", d.Label, d.Tier, d.Charging)
	}

	e.current = d
	e.state = StateRendering
	if e.status != nil {
		e.status.DirectiveChanged(d)
	}
}

func (e *Engine) push(f animation.Frame, force bool) {
	if force || !e.pushed || f.Label != e.shown.Label || f.LabelOpacity != e.shown.LabelOpacity {
		e.renderer.SetLabel(f.Label, f.LabelOpacity)
	}
	if force || !e.pushed || f.GlowOpacity != e.shown.GlowOpacity {
		e.renderer.SetGlowOpacity(f.GlowOpacity)
	}
	e.shown = f
	e.pushed = true
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Directive returns the directive currently on screen.
func (e *Engine) Directive() presentation.Directive { return e.current }

// Mode returns the display mode fixed at construction.
func (e *Engine) Mode() models.DisplayMode { return e.mode }

// TestMode reports whether the simulated sampler is active.
func (e *Engine) TestMode() bool { return e.testMode }

// Visible reports whether the overlay is shown.
func (e *Engine) Visible() bool { return e.visible }

// Animations exposes the coordinator for inspection.
func (e *Engine) Animations() *animation.Coordinator { return e.anim }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
