package models

import (
	"testing"
	"time"
)

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayMode
		wantErr bool
	}{
		{in: "", want: ModeOverlay},
		{in: "overlay", want: ModeOverlay},
		{in: "wallpaper", want: ModeWallpaper},
		{in: "desktop", want: ModeOverlay, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDisplayMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDisplayMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDisplayMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayModeFlag(t *testing.T) {
	if got := ModeWallpaper.Flag(); got != "--mode=wallpaper" {
		t.Errorf("Flag() = %q", got)
	}
}

func TestSettingsDurations(t *testing.T) {
	s := NewSettings()
	if got := s.PollInterval(); got != 5*time.Second {
		t.Errorf("PollInterval() = %v, want 5s", got)
	}
	if got := s.Animation.Pause(); got != 100*time.Millisecond {
		t.Errorf("Pause() = %v, want 100ms", got)
	}

	s.PollIntervalMS = 0
	s.Animation.PauseMS = 0
	s.Animation.FadeOutMS = -5
	if got := s.PollInterval(); got != 5*time.Second {
		t.Errorf("PollInterval() with zero = %v, want default 5s", got)
	}
	if got := s.Animation.Pause(); got != 0 {
		t.Errorf("Pause() with zero = %v, want 0", got)
	}
	if got := s.Animation.FadeOut(); got != 300*time.Millisecond {
		t.Errorf("FadeOut() with negative = %v, want default 300ms", got)
	}
}
