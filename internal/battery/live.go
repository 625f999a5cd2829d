package battery

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/emberlight/cigbat/internal/config"
)

// Fallback is reported when no battery is present or the sensor fails.
var Fallback = Sample{Percent: 100, Charging: false, Source: SourceLive}

// Live samples the OS battery through a Sensor.
type Live struct {
	sensor  Sensor
	timeout time.Duration
}

// NewLive creates a live sampler. Each read is bounded by timeout; a
// non-positive timeout leaves the read bounded only by the caller's context.
func NewLive(sensor Sensor, timeout time.Duration) *Live {
	return &Live{sensor: sensor, timeout: timeout}
}

// Next reads the sensor once. It never fails: absent batteries and sensor
// errors resolve to Fallback.
func (l *Live) Next(ctx context.Context) Sample {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	reading, err := l.sensor.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrSensorTimeout) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("[battery] Sensor read timed out after %s", l.timeout)
		} else {
			log.Printf("[battery] Sensor read failed: %v", err)
		}
		return Fallback
	}
	if !reading.Present {
		if config.Debug() {
			log.Printf("[battery] No battery present, using fallback")
		}
		return Fallback
	}

	return Sample{
		Percent:  reading.Percent,
		Charging: reading.Plugged,
		Source:   SourceLive,
	}
}
