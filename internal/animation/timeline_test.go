package animation

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTimelineSegments(t *testing.T) {
	var ended []int
	tl := NewTimeline(t0, false,
		Segment{Duration: ms(100), From: 1, To: 0, OnEnd: func() { ended = append(ended, 0) }},
		Segment{Duration: ms(100), From: 0, To: 1, OnEnd: func() { ended = append(ended, 1) }},
	)

	tests := []struct {
		at    time.Duration
		want  float64
		ended int
	}{
		{at: 0, want: 1, ended: 0},
		{at: ms(50), want: 0.5, ended: 0},
		{at: ms(100), want: 0, ended: 1},
		{at: ms(150), want: 0.5, ended: 1},
		{at: ms(250), want: 1, ended: 2},
	}

	for _, tt := range tests {
		got := tl.Advance(t0.Add(tt.at))
		if !approx(got, tt.want) {
			t.Errorf("Advance(+%v) = %v, want %v", tt.at, got, tt.want)
		}
		if len(ended) != tt.ended {
			t.Errorf("after +%v ended = %v, want %d callbacks", tt.at, ended, tt.ended)
		}
	}

	if tl.State() != StateFinished {
		t.Errorf("State() = %v, want finished", tl.State())
	}
}

func TestTimelineSkippedFramesDeliverAllEnds(t *testing.T) {
	var ended []int
	tl := NewTimeline(t0, false,
		Segment{Duration: ms(10), From: 1, To: 0, OnEnd: func() { ended = append(ended, 0) }},
		Segment{Duration: ms(10), From: 0, To: 0, OnEnd: func() { ended = append(ended, 1) }},
		Segment{Duration: ms(10), From: 0, To: 1, OnEnd: func() { ended = append(ended, 2) }},
	)

	tl.Advance(t0.Add(time.Second))
	if len(ended) != 3 || ended[0] != 0 || ended[2] != 2 {
		t.Errorf("ended = %v, want [0 1 2]", ended)
	}
}

func TestTimelineCancelSuppressesCallbacks(t *testing.T) {
	fired := false
	tl := NewTimeline(t0, false,
		Segment{Duration: ms(100), From: 1, To: 0, OnEnd: func() { fired = true }},
	)

	tl.Advance(t0.Add(ms(40)))
	tl.Cancel()
	tl.Advance(t0.Add(ms(500)))

	if fired {
		t.Error("OnEnd fired after Cancel")
	}
	if tl.Running() {
		t.Error("Running() = true after Cancel")
	}
	if tl.State() != StateCancelled {
		t.Errorf("State() = %v, want cancelled", tl.State())
	}
}

func TestTimelineLoop(t *testing.T) {
	tl := NewTimeline(t0, true,
		Segment{Duration: ms(500), From: 1, To: 0.8, Ease: InOutSine},
		Segment{Duration: ms(500), From: 0.8, To: 1, Ease: InOutSine},
	)

	for i := 0; i <= 5000; i += 16 {
		v := tl.Advance(t0.Add(ms(i)))
		if v < 0.8-1e-9 || v > 1+1e-9 {
			t.Fatalf("Advance(+%dms) = %v, outside [0.8, 1]", i, v)
		}
	}
	if !tl.Running() {
		t.Error("looping timeline stopped on its own")
	}
	if got := tl.Advance(t0.Add(ms(2500))); !approx(got, 0.8) {
		t.Errorf("value at half period = %v, want 0.8", got)
	}
}

func TestInOutSine(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}} {
		if got := InOutSine(tt.in); !approx(got, tt.want) {
			t.Errorf("InOutSine(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
