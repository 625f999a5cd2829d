// Package animation drives the overlay's two animated channels: the label
// crossfade and the charging glow.
//
// Timelines never sleep. The owning loop calls Advance with the current frame
// time and reads back the value, so an animation is only ever touched from
// the loop's goroutine.
package animation

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// InOutSine accelerates and decelerates along a half cosine.
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Segment is one leg of a timeline, moving a value from From to To.
// OnEnd runs once when the leg completes, unless the timeline was cancelled
// first. OnEnd is ignored for looping timelines.
type Segment struct {
	Duration time.Duration
	From     float64
	To       float64
	Ease     Easing
	OnEnd    func()
}

// State is the lifecycle of a timeline.
type State int

const (
	StateRunning State = iota
	StateFinished
	StateCancelled
)

// Timeline plays a fixed sequence of segments, once or looping until cancelled.
type Timeline struct {
	segments []Segment
	loop     bool
	start    time.Time
	total    time.Duration
	ended    int // segments whose OnEnd has been delivered
	state    State
	value    float64
}

// NewTimeline starts a timeline at start.
func NewTimeline(start time.Time, loop bool, segments ...Segment) *Timeline {
	t := &Timeline{
		segments: segments,
		loop:     loop,
		start:    start,
	}
	for _, s := range segments {
		t.total += s.Duration
	}
	if len(segments) > 0 {
		t.value = segments[0].From
	}
	return t
}

// Duration returns the length of one pass through the segments.
func (t *Timeline) Duration() time.Duration { return t.total }

// State returns the timeline's lifecycle state.
func (t *Timeline) State() State { return t.state }

// Running reports whether the timeline is still producing values.
func (t *Timeline) Running() bool { return t.state == StateRunning }

// Value returns the value computed by the last Advance.
func (t *Timeline) Value() float64 { return t.value }

// Cancel stops the timeline. Pending OnEnd callbacks never run.
// Cancelling a stopped timeline does nothing.
func (t *Timeline) Cancel() {
	if t.state == StateRunning {
		t.state = StateCancelled
	}
}

// Advance moves the timeline to now and returns its value. Segment ends that
// fall at or before now are delivered in order.
func (t *Timeline) Advance(now time.Time) float64 {
	if t.state != StateRunning || len(t.segments) == 0 {
		if len(t.segments) == 0 {
			t.state = StateFinished
		}
		return t.value
	}

	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}

	if t.loop {
		if t.total <= 0 {
			t.value = t.segments[len(t.segments)-1].To
			return t.value
		}
		t.value = t.valueAt(elapsed % t.total)
		return t.value
	}

	var offset time.Duration
	for i, seg := range t.segments {
		end := offset + seg.Duration
		if elapsed < end {
			t.value = interpolate(seg, elapsed-offset)
			return t.value
		}
		if i >= t.ended {
			t.ended = i + 1
			t.value = seg.To
			if seg.OnEnd != nil {
				seg.OnEnd()
			}
			if t.state != StateRunning {
				return t.value
			}
		}
		offset = end
	}

	t.state = StateFinished
	t.value = t.segments[len(t.segments)-1].To
	return t.value
}

// valueAt returns the value at an offset within one pass.
func (t *Timeline) valueAt(at time.Duration) float64 {
	var offset time.Duration
	for _, seg := range t.segments {
		if at < offset+seg.Duration {
			return interpolate(seg, at-offset)
		}
		offset += seg.Duration
	}
	return t.segments[len(t.segments)-1].To
}

func interpolate(seg Segment, into time.Duration) float64 {
	if seg.Duration <= 0 {
		return seg.To
	}
	p := float64(into) / float64(seg.Duration)
	if p > 1 {
		p = 1
	}
	ease := seg.Ease
	if ease == nil {
		ease = Linear
	}
	return seg.From + (seg.To-seg.From)*ease(p)
}
