// Package tray implements the system tray icon and menu for the overlay.
package tray

import (
	"fmt"
	"sync"

	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/presentation"
)

// Controller receives the actions chosen from the tray menu.
type Controller interface {
	ToggleVisibility()
	ToggleTestMode()
	Quit()
}

// Status is what the tray menu shows. The engine reports into it through
// the engine.StatusSink methods; it is safe for use from any goroutine.
type Status struct {
	mu        sync.Mutex
	mode      models.DisplayMode
	directive presentation.Directive
	rendered  bool
	testMode  bool
	visible   bool
	onChange  func(View)
}

// View is a snapshot of Status.
type View struct {
	Mode      models.DisplayMode
	Directive presentation.Directive
	Rendered  bool
	TestMode  bool
	Visible   bool
}

// NewStatus creates the status for an overlay running in mode.
func NewStatus(mode models.DisplayMode) *Status {
	return &Status{mode: mode, visible: true}
}

// DirectiveChanged records the directive on screen.
func (s *Status) DirectiveChanged(d presentation.Directive) {
	s.update(func() {
		s.directive = d
		s.rendered = true
	})
}

// TestModeChanged records whether the simulated sampler is active.
func (s *Status) TestModeChanged(enabled bool) {
	s.update(func() { s.testMode = enabled })
}

// VisibilityChanged records whether the overlay is shown.
func (s *Status) VisibilityChanged(visible bool) {
	s.update(func() { s.visible = visible })
}

// Snapshot returns the current view.
func (s *Status) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// OnChange registers fn to run after every change.
func (s *Status) OnChange(fn func(View)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Status) update(fn func()) {
	s.mu.Lock()
	fn()
	v := s.view()
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb(v)
	}
}

func (s *Status) view() View {
	return View{
		Mode:      s.mode,
		Directive: s.directive,
		Rendered:  s.rendered,
		TestMode:  s.testMode,
		Visible:   s.visible,
	}
}

// StatusLine is the disabled menu line under the header.
func (v View) StatusLine() string {
	if !v.Rendered {
		return "Reading battery..."
	}
	line := fmt.Sprintf("%s (%s)", v.Directive.Label, v.Mode)
	if v.TestMode {
		line += " [test]"
	}
	return line
}

// Tooltip is the tray icon tooltip.
func (v View) Tooltip() string {
	if !v.Rendered {
		return "Cigarette Battery"
	}
	return "Cigarette Battery: " + v.Directive.Label
}

// VisibilityTitle is the title of the show/hide item.
func (v View) VisibilityTitle() string {
	if v.Visible {
		return "Hide"
	}
	return "Show"
}

// TestModeTitle is the title of the test mode item.
func (v View) TestModeTitle() string {
	if v.TestMode {
		return "Disable Test Mode"
	}
	return "Enable Test Mode"
}
