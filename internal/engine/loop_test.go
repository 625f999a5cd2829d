package engine

import (
	"context"
	"testing"
	"time"

	"github.com/emberlight/cigbat/internal/battery"
)

func TestLoopTicksOnSchedule(t *testing.T) {
	ctx := context.Background()
	e, _, _, live := newTestEngine(battery.Sample{Percent: 50})
	l := NewLoop(e, 5*time.Second)

	l.Step(ctx, t0)
	if live.reads != 1 {
		t.Fatalf("first step reads = %d, want 1", live.reads)
	}

	for ms := 16; ms < 5000; ms += 16 {
		l.Step(ctx, t0.Add(time.Duration(ms)*time.Millisecond))
	}
	if live.reads != 1 {
		t.Errorf("reads before interval = %d, want 1", live.reads)
	}

	l.Step(ctx, t0.Add(5*time.Second))
	if live.reads != 2 {
		t.Errorf("reads at interval = %d, want 2", live.reads)
	}
}

func TestLoopCycleDoesNotReschedule(t *testing.T) {
	ctx := context.Background()
	e, _, _, _ := newTestEngine(battery.Sample{Percent: 50})
	l := NewLoop(e, 5*time.Second)

	l.Post(EventToggleTestMode)
	l.Step(ctx, t0)
	next := l.NextTick()

	l.Cycle()
	l.Step(ctx, t0.Add(2*time.Second))

	if got := e.Directive().Label; got != "25% " {
		t.Errorf("label after cycle = %q, want 25%%", got)
	}
	if !l.NextTick().Equal(next) {
		t.Errorf("NextTick moved from %v to %v", next, l.NextTick())
	}
}

func TestLoopEventsInOrder(t *testing.T) {
	ctx := context.Background()
	e, r, _, _ := newTestEngine(battery.Sample{Percent: 50})
	l := NewLoop(e, 5*time.Second)

	l.ToggleTestMode()
	l.Cycle()
	l.Cycle()
	l.ToggleVisibility()
	l.Step(ctx, t0)

	if got := e.Directive().Label; got != "50% " {
		t.Errorf("label = %q, want simulated 50%% after two cycles", got)
	}
	if len(r.visible) != 1 || r.visible[0] {
		t.Errorf("visibility = %v, want [false]", r.visible)
	}
}

func TestLoopQuit(t *testing.T) {
	ctx := context.Background()
	e, r, _, _ := newTestEngine(battery.Sample{Percent: 90, Charging: true})
	l := NewLoop(e, 5*time.Second)
	l.Step(ctx, t0)

	l.Quit()
	l.Quit()
	if !l.Step(ctx, t0.Add(50*time.Millisecond)) {
		t.Fatal("Step after Quit returned false")
	}

	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after quit")
	}
	if e.Animations().GlowTimeline() != nil {
		t.Error("glow still held after quit")
	}
	if r.glow != 1 {
		t.Errorf("glow opacity = %v, want 1", r.glow)
	}
	if l.Post(EventCycle) {
		t.Error("Post accepted an event after shutdown")
	}
}

func TestLoopRunStopsOnContext(t *testing.T) {
	e, _, _, live := newTestEngine(battery.Sample{Percent: 50})
	l := NewLoop(e, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(finished)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if live.reads != 1 {
		t.Errorf("reads = %d, want exactly the first tick", live.reads)
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done not closed after Run returned")
	}
}
