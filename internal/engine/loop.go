package engine

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is a user or system request delivered to the loop.
type Event int

const (
	EventCycle Event = iota
	EventToggleTestMode
	EventToggleVisibility
	EventAssetsChanged
)

func (ev Event) String() string {
	switch ev {
	case EventCycle:
		return "cycle"
	case EventToggleTestMode:
		return "toggle-test-mode"
	case EventToggleVisibility:
		return "toggle-visibility"
	case EventAssetsChanged:
		return "assets-changed"
	default:
		return "unknown"
	}
}

const eventBuffer = 64

// DefaultFrameInterval is the headless frame rate (60 frames per second).
const DefaultFrameInterval = time.Second / 60

// Loop is the single event loop of an overlay process. Step is called from
// one goroutine only (a renderer's frame callback or Run). Post, Quit and
// the Controller methods are safe from any goroutine.
type Loop struct {
	engine   *Engine
	interval time.Duration
	events   chan Event

	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}

	started  bool
	finished bool
	nextTick time.Time
}

// NewLoop creates a loop that ticks e every interval.
func NewLoop(e *Engine, interval time.Duration) *Loop {
	return &Loop{
		engine:   e,
		interval: interval,
		events:   make(chan Event, eventBuffer),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Post queues an event for the next Step. It never blocks; it returns false
// when the queue is full or the loop has finished.
func (l *Loop) Post(ev Event) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- ev:
		return true
	default:
		log.Printf("[engine] Event queue full, dropping %s", ev)
		return false
	}
}

// Quit asks the loop to shut down at its next Step.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

// Done is closed once the engine has shut down.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Cycle requests the next simulated level.
func (l *Loop) Cycle() { l.Post(EventCycle) }

// ToggleTestMode requests a switch between live and simulated samples.
func (l *Loop) ToggleTestMode() { l.Post(EventToggleTestMode) }

// ToggleVisibility requests hiding or showing the overlay.
func (l *Loop) ToggleVisibility() { l.Post(EventToggleVisibility) }

// AssetsChanged requests a sprite reload.
func (l *Loop) AssetsChanged() { l.Post(EventAssetsChanged) }

// Step runs one iteration at now: queued events in order, the periodic tick
// when due, then one animation frame. It returns true once the loop has
// shut down.
func (l *Loop) Step(ctx context.Context, now time.Time) bool {
	if l.finished {
		return true
	}
	if l.quitRequested() {
		l.shutdown()
		return true
	}

	for drained := false; !drained; {
		select {
		case ev := <-l.events:
			l.dispatch(ctx, now, ev)
		default:
			drained = true
		}
	}

	if !l.started || !now.Before(l.nextTick) {
		l.engine.Tick(ctx, now)
		l.schedule(now)
	}

	l.engine.Frame(now)
	return false
}

// Run drives Step from a ticker until Quit is called or ctx ends. It is the
// loop driver for processes without a window.
func (l *Loop) Run(ctx context.Context, frame time.Duration) {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	if l.Step(ctx, time.Now()) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			l.shutdown()
			return
		case <-l.quit:
			l.Step(ctx, time.Now())
			return
		case now := <-ticker.C:
			if l.Step(ctx, now) {
				return
			}
		}
	}
}

// NextTick returns when the next periodic tick is due.
func (l *Loop) NextTick() time.Time {
	return l.nextTick
}

func (l *Loop) dispatch(ctx context.Context, now time.Time, ev Event) {
	switch ev {
	case EventCycle:
		// Runs a tick now without moving the periodic schedule.
		l.engine.Cycle(ctx, now)
	case EventToggleTestMode:
		l.engine.ToggleTestMode(ctx, now)
	case EventToggleVisibility:
		l.engine.ToggleVisibility()
	case EventAssetsChanged:
		l.engine.ReloadAssets()
	}
}

// schedule sets the next tick one interval after the previous one, or one
// interval after now if the loop fell behind by more than an interval.
func (l *Loop) schedule(now time.Time) {
	if !l.started {
		l.started = true
		l.nextTick = now.Add(l.interval)
		return
	}
	l.nextTick = l.nextTick.Add(l.interval)
	if !l.nextTick.After(now) {
		l.nextTick = now.Add(l.interval)
	}
}

func (l *Loop) quitRequested() bool {
	select {
	case <-l.quit:
		return true
	default:
		return false
	}
}

func (l *Loop) shutdown() {
	if l.finished {
		return
	}
	l.finished = true
	l.engine.Shutdown()
	close(l.done)
	log.Printf("[engine] Loop stopped")
}
