package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/emberlight/cigbat/internal/models"
)

func TestResolveLaunchMode(t *testing.T) {
	tests := []struct {
		name      string
		flagSet   bool
		flagValue string
		want      models.DisplayMode
		wantErr   bool
	}{
		{"default when not interactive", false, "", models.ModeOverlay, false},
		{"explicit overlay", true, "overlay", models.ModeOverlay, false},
		{"explicit wallpaper", true, "wallpaper", models.ModeWallpaper, false},
		{"unknown mode rejected", true, "desktop", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLaunchMode(tt.flagSet, tt.flagValue, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveLaunchMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveLaunchMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptSettings(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantChanged bool
		wantErr     bool
		check       func(t *testing.T, s *models.Settings)
	}{
		{
			name:  "enter keeps everything",
			input: "\n\n\n\n",
		},
		{
			name:        "edits every field",
			input:       "2.5\n+\n96\n/tmp/sprites\n",
			wantChanged: true,
			check: func(t *testing.T, s *models.Settings) {
				if s.PollIntervalMS != 2500 || s.ChargingGlyph != "+" ||
					s.Window.SpriteSize != 96 || s.AssetDir != "/tmp/sprites" {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name:        "same value is not a change",
			input:       "5\n⚡\n128\ndefault\n",
			wantChanged: false,
		},
		{
			name:    "bad interval",
			input:   "soon\n",
			wantErr: true,
		},
		{
			name:    "sprite size out of range",
			input:   "\n\n8\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.NewSettings()
			changed, err := promptSettings(bufio.NewReader(strings.NewReader(tt.input)), io.Discard, s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}
