package battery

import "context"

// DefaultLevels is the simulated sequence used when none is configured.
var DefaultLevels = []int{0, 25, 50, 75, 100}

// SimulatedChargingThreshold is the level at and above which a simulated
// sample reports charging, so the glow can be seen without a charger.
const SimulatedChargingThreshold = 80

// Simulated replays a fixed level sequence. Next does not move the cursor;
// only Advance does.
type Simulated struct {
	levels []int
	cursor int
}

// NewSimulated creates a simulated sampler positioned at the first level.
// An empty sequence is replaced with DefaultLevels.
func NewSimulated(levels []int) *Simulated {
	if len(levels) == 0 {
		levels = DefaultLevels
	}
	return &Simulated{levels: append([]int(nil), levels...)}
}

// Next returns the sample at the cursor.
func (s *Simulated) Next(_ context.Context) Sample {
	p := s.levels[s.cursor]
	return Sample{
		Percent:  p,
		Charging: p >= SimulatedChargingThreshold,
		Source:   SourceSimulated,
	}
}

// Advance moves the cursor to the next level, wrapping after the last one.
func (s *Simulated) Advance() {
	s.cursor = (s.cursor + 1) % len(s.levels)
}

// Cursor returns the current position in the sequence.
func (s *Simulated) Cursor() int {
	return s.cursor
}
