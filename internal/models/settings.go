package models

import "time"

// AnimationConfig holds animation timings in milliseconds.
type AnimationConfig struct {
	FadeOutMS     int     `yaml:"fade_out_ms"`
	PauseMS       int     `yaml:"pause_ms"`
	FadeInMS      int     `yaml:"fade_in_ms"`
	PulsePeriodMS int     `yaml:"pulse_period_ms"`
	PulseMin      float64 `yaml:"pulse_min"`
	PulseMax      float64 `yaml:"pulse_max"`
}

// WindowConfig holds the overlay window geometry.
type WindowConfig struct {
	SpriteSize int `yaml:"sprite_size"`
	X          int `yaml:"x"` // negative = let the window system place it
	Y          int `yaml:"y"`
}

// TestModeConfig holds the simulated battery sequence.
type TestModeConfig struct {
	Levels []int `yaml:"levels"`
}

// Settings represents global overlay settings.
// This corresponds to ~/.cigbat/settings.yaml.
type Settings struct {
	Version        int             `yaml:"version"`
	PollIntervalMS int             `yaml:"poll_interval_ms"`
	SensorTimeout  int             `yaml:"sensor_timeout_ms"`
	ChargingGlyph  string          `yaml:"charging_glyph"`
	AssetDir       string          `yaml:"asset_dir"` // empty = ~/.cigbat/assets
	Animation      AnimationConfig `yaml:"animation"`
	Window         WindowConfig    `yaml:"window"`
	TestMode       TestModeConfig  `yaml:"test_mode"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:        1,
		PollIntervalMS: 5000,
		SensorTimeout:  2000,
		ChargingGlyph:  "⚡",
		AssetDir:       "",
		Animation: AnimationConfig{
			FadeOutMS:     300,
			PauseMS:       100,
			FadeInMS:      300,
			PulsePeriodMS: 1000,
			PulseMin:      0.8,
			PulseMax:      1.0,
		},
		Window: WindowConfig{
			SpriteSize: 128,
			X:          -1,
			Y:          -1,
		},
		TestMode: TestModeConfig{
			Levels: []int{0, 25, 50, 75, 100},
		},
	}
}

// PollInterval returns the battery poll interval.
func (s *Settings) PollInterval() time.Duration {
	return ms(s.PollIntervalMS, 5000)
}

// SensorTimeoutDuration returns the bound on a single battery read.
func (s *Settings) SensorTimeoutDuration() time.Duration {
	return ms(s.SensorTimeout, 2000)
}

// ms converts a millisecond setting, substituting def for non-positive values.
func ms(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Millisecond
}

// FadeOut returns the text fade-out duration.
func (a AnimationConfig) FadeOut() time.Duration { return ms(a.FadeOutMS, 300) }

// Pause returns the hold between fade-out and fade-in. Zero disables it.
func (a AnimationConfig) Pause() time.Duration {
	if a.PauseMS < 0 {
		return 0
	}
	return time.Duration(a.PauseMS) * time.Millisecond
}

// FadeIn returns the text fade-in duration.
func (a AnimationConfig) FadeIn() time.Duration { return ms(a.FadeInMS, 300) }

// PulsePeriod returns the duration of one full glow cycle.
func (a AnimationConfig) PulsePeriod() time.Duration { return ms(a.PulsePeriodMS, 1000) }
