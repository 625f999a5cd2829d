// Package presentation maps battery samples to what the overlay shows.
package presentation

import (
	"strconv"

	"github.com/emberlight/cigbat/internal/battery"
)

// DefaultGlyph is appended to the label while charging.
const DefaultGlyph = "⚡"

// Tier is a discrete battery level bucket. Tiers are ordered.
type Tier int

const (
	TierEmpty Tier = iota
	TierLow
	TierMid
	TierHigh
	TierFull
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{TierEmpty, TierLow, TierMid, TierHigh, TierFull}

// thresholds are inclusive lower bounds, highest first.
var thresholds = []struct {
	min  int
	tier Tier
}{
	{90, TierFull},
	{75, TierHigh},
	{50, TierMid},
	{25, TierLow},
}

func (t Tier) String() string {
	switch t {
	case TierEmpty:
		return "empty"
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	case TierFull:
		return "full"
	default:
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// Clamp limits a percent to [0,100].
func Clamp(percent int) int {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return percent
	}
}

// TierFor returns the tier for a percent. Out-of-range input is clamped.
func TierFor(percent int) Tier {
	p := Clamp(percent)
	for _, th := range thresholds {
		if p >= th.min {
			return th.tier
		}
	}
	return TierEmpty
}

// Directive is the renderer-agnostic description of what to show.
type Directive struct {
	Tier     Tier
	Label    string
	Charging bool
}

// DirectiveFor derives the directive for a sample. The label carries the
// clamped percent followed by glyph while charging; an empty glyph means
// DefaultGlyph.
func DirectiveFor(s battery.Sample, glyph string) Directive {
	if glyph == "" {
		glyph = DefaultGlyph
	}
	p := Clamp(s.Percent)
	label := strconv.Itoa(p) + "% "
	if s.Charging {
		label += glyph
	}
	return Directive{
		Tier:     TierFor(p),
		Label:    label,
		Charging: s.Charging,
	}
}

// NeedsRender reports whether next differs from prev in anything visible.
// Tier is derived from the percent carried in the label, so it never needs
// its own comparison.
func NeedsRender(prev, next Directive) bool {
	return prev.Label != next.Label || prev.Charging != next.Charging
}
