package battery

import (
	"context"
	"fmt"
	"math"

	osbattery "github.com/distatus/battery"
)

// SystemSensor reads the machine's batteries through the OS battery API.
type SystemSensor struct {
	getAll func() ([]*osbattery.Battery, error)
}

// NewSystemSensor creates a sensor backed by the OS battery API.
func NewSystemSensor() *SystemSensor {
	return &SystemSensor{getAll: osbattery.GetAll}
}

// Read aggregates all batteries into one reading. The OS call runs on its own
// goroutine and is abandoned when ctx ends.
func (s *SystemSensor) Read(ctx context.Context) (Reading, error) {
	type result struct {
		reading Reading
		err     error
	}
	ch := make(chan result, 1)

	go func() {
		bats, err := s.getAll()
		r, aggErr := aggregate(bats, err)
		ch <- result{reading: r, err: aggErr}
	}()

	select {
	case <-ctx.Done():
		return Reading{}, fmt.Errorf("%w: %v", ErrSensorTimeout, ctx.Err())
	case res := <-ch:
		return res.reading, res.err
	}
}

// aggregate folds the per-battery report into one reading. Partial errors
// are tolerated as long as at least one battery reported a capacity.
func aggregate(bats []*osbattery.Battery, err error) (Reading, error) {
	var current, full float64
	plugged := false
	for _, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		current += b.Current
		full += b.Full
		switch b.State.Raw {
		case osbattery.Charging, osbattery.Full, osbattery.Idle:
			plugged = true
		}
	}

	if full == 0 {
		if err != nil && len(bats) > 0 {
			return Reading{}, fmt.Errorf("failed to read battery: %w", err)
		}
		return Absent(), nil
	}

	percent := int(math.Round(current / full * 100))
	return Present(percent, plugged), nil
}
