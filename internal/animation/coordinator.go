package animation

import "time"

// Config holds the channel timings.
type Config struct {
	FadeOut     time.Duration
	Pause       time.Duration
	FadeIn      time.Duration
	PulsePeriod time.Duration
	PulseMin    float64
	PulseMax    float64
}

// DefaultConfig returns the stock timings: 300ms out, 100ms hold, 300ms in,
// and a 1s glow cycle between 0.8 and 1.0.
func DefaultConfig() Config {
	return Config{
		FadeOut:     300 * time.Millisecond,
		Pause:       100 * time.Millisecond,
		FadeIn:      300 * time.Millisecond,
		PulsePeriod: time.Second,
		PulseMin:    0.8,
		PulseMax:    1.0,
	}
}

// Frame is the visual state of both channels after an Advance.
type Frame struct {
	Label        string
	LabelOpacity float64
	GlowOpacity  float64
}

// Coordinator owns the text and glow channels. Each channel has at most one
// timeline; starting a new one cancels the previous one.
type Coordinator struct {
	cfg Config

	label       string // text currently displayed
	target      string // text the channel is heading to
	text        *Timeline
	textOpacity float64

	glow        *Timeline
	glowOpacity float64
}

// NewCoordinator creates a coordinator with both channels idle at full opacity.
func NewCoordinator(cfg Config) *Coordinator {
	return &Coordinator{
		cfg:         cfg,
		textOpacity: 1,
		glowOpacity: 1,
	}
}

// RetargetText crossfades the label to text. Any running text timeline is
// cancelled first. The displayed label switches only when the fade-out ends.
func (c *Coordinator) RetargetText(now time.Time, text string) {
	if c.text != nil {
		c.text.Cancel()
	}
	c.target = text

	// Fade out from wherever the previous fade left off, at the same speed.
	from := c.textOpacity
	if c.label == "" {
		from = 0
	}
	out := time.Duration(float64(c.cfg.FadeOut) * from)

	c.text = NewTimeline(now, false,
		Segment{Duration: out, From: from, To: 0, OnEnd: func() { c.label = text }},
		Segment{Duration: c.cfg.Pause, From: 0, To: 0},
		Segment{Duration: c.cfg.FadeIn, From: 0, To: 1},
	)
}

// SetCharging starts or stops the glow pulse. Starting while a pulse is
// already running keeps the running pulse untouched. Stopping snaps the glow
// to full opacity.
func (c *Coordinator) SetCharging(now time.Time, charging bool) {
	if !charging {
		if c.glow != nil {
			c.glow.Cancel()
			c.glow = nil
		}
		c.glowOpacity = 1
		return
	}

	if c.glow != nil && c.glow.Running() {
		return
	}

	half := c.cfg.PulsePeriod / 2
	c.glow = NewTimeline(now, true,
		Segment{Duration: half, From: c.cfg.PulseMax, To: c.cfg.PulseMin, Ease: InOutSine},
		Segment{Duration: c.cfg.PulsePeriod - half, From: c.cfg.PulseMin, To: c.cfg.PulseMax, Ease: InOutSine},
	)
}

// Advance moves both channels to now.
func (c *Coordinator) Advance(now time.Time) Frame {
	if c.text != nil {
		c.textOpacity = c.text.Advance(now)
		if !c.text.Running() {
			c.text = nil
		}
	}
	if c.glow != nil {
		c.glowOpacity = c.glow.Advance(now)
	}
	return c.Frame()
}

// Frame returns the current visual state without advancing.
func (c *Coordinator) Frame() Frame {
	return Frame{
		Label:        c.label,
		LabelOpacity: c.textOpacity,
		GlowOpacity:  c.glowOpacity,
	}
}

// Cancel stops both channels and settles them on their targets: the latest
// label at full opacity and the glow at full opacity. Safe to call at any
// point, including mid-fade.
func (c *Coordinator) Cancel() {
	if c.text != nil {
		c.text.Cancel()
		c.text = nil
	}
	if c.glow != nil {
		c.glow.Cancel()
		c.glow = nil
	}
	if c.target != "" {
		c.label = c.target
	}
	c.textOpacity = 1
	c.glowOpacity = 1
}

// TextTimeline returns the running text timeline, or nil.
func (c *Coordinator) TextTimeline() *Timeline { return c.text }

// GlowTimeline returns the running glow timeline, or nil.
func (c *Coordinator) GlowTimeline() *Timeline { return c.glow }

// Label returns the displayed label.
func (c *Coordinator) Label() string { return c.label }
