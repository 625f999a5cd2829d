// Package battery turns battery readings into samples for the overlay.
//
// A Sampler yields one Sample per call. Live samples come from a Sensor and
// never fail: an absent battery or a failed read resolves to a fully charged,
// unplugged fallback. Simulated samples walk a fixed level sequence that only
// moves when Advance is called.
package battery

import "context"

// Source tells where a sample came from.
type Source int

const (
	SourceLive Source = iota
	SourceSimulated
)

func (s Source) String() string {
	switch s {
	case SourceSimulated:
		return "simulated"
	default:
		return "live"
	}
}

// Sample is one battery observation.
type Sample struct {
	Percent  int
	Charging bool
	Source   Source
}

// Sampler produces the current battery sample.
type Sampler interface {
	Next(ctx context.Context) Sample
}
