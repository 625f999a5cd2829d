package battery

import (
	"context"
	"errors"
)

// ErrSensorTimeout is returned when a sensor read does not finish in time.
var ErrSensorTimeout = errors.New("battery sensor read timed out")

// Reading is the result of one sensor query. A zero Reading is absent:
// the machine reports no battery.
type Reading struct {
	Present bool
	Percent int
	Plugged bool
}

// Present builds a reading for a machine with a battery.
func Present(percent int, plugged bool) Reading {
	return Reading{Present: true, Percent: percent, Plugged: plugged}
}

// Absent is the reading of a machine without a battery.
func Absent() Reading {
	return Reading{}
}

// Sensor queries the OS battery provider once.
type Sensor interface {
	Read(ctx context.Context) (Reading, error)
}

// SensorFunc adapts a function to the Sensor interface.
type SensorFunc func(ctx context.Context) (Reading, error)

// Read calls f(ctx).
func (f SensorFunc) Read(ctx context.Context) (Reading, error) {
	return f(ctx)
}
