package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emberlight/cigbat/internal/models"
)

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		mode models.DisplayMode
		want string
	}{
		{models.ModeOverlay, "--mode=overlay"},
		{models.ModeWallpaper, "--mode=wallpaper"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			l := New("/opt/cigbat/cigbatd")
			cmd, devNull, err := l.command(tt.mode)
			if err != nil {
				t.Fatalf("command() error = %v", err)
			}
			defer devNull.Close()

			if len(cmd.Args) != 2 || cmd.Args[1] != tt.want {
				t.Errorf("Args = %v, want [binary %s]", cmd.Args, tt.want)
			}
			if cmd.Stdin != devNull || cmd.Stdout != devNull || cmd.Stderr != devNull {
				t.Error("stdio not bound to the null device")
			}
			if cmd.SysProcAttr == nil {
				t.Error("SysProcAttr not set")
			}
		})
	}
}

func TestLaunchSpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-overlay")
	err := New(missing).Launch(models.ModeOverlay)
	if err == nil {
		t.Fatal("Launch() of a missing binary succeeded")
	}
	if !errors.Is(err, ErrSpawnFailed) {
		t.Errorf("errors.Is(err, ErrSpawnFailed) = false for %v", err)
	}

	var le *LaunchError
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not a *LaunchError", err)
	}
	if le.Mode != models.ModeOverlay || le.Path != missing {
		t.Errorf("LaunchError = %+v", le)
	}
}

func TestLaunchWithoutBinary(t *testing.T) {
	err := New("").Launch(models.ModeWallpaper)
	if !errors.Is(err, ErrBinaryNotFound) {
		t.Errorf("error = %v, want ErrBinaryNotFound", err)
	}
	if !errors.Is(err, ErrSpawnFailed) {
		t.Errorf("ErrBinaryNotFound does not match ErrSpawnFailed: %v", err)
	}
}

func TestFindOverlayBinary(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("on PATH", func(t *testing.T) {
		dir := t.TempDir()
		bin := filepath.Join(dir, OverlayBinary+exeSuffix)
		if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
		t.Setenv("PATH", dir)

		got, err := FindOverlayBinary()
		if err != nil {
			t.Fatalf("FindOverlayBinary() error = %v", err)
		}
		if got != bin {
			t.Errorf("FindOverlayBinary() = %q, want %q", got, bin)
		}
	})

	t.Run("in build dir", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		if err := os.MkdirAll("build", 0o755); err != nil {
			t.Fatal(err)
		}
		bin := filepath.Join("build", OverlayBinary+exeSuffix)
		if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}

		got, err := FindOverlayBinary()
		if err != nil {
			t.Fatalf("FindOverlayBinary() error = %v", err)
		}
		if filepath.Clean(got) != bin {
			t.Errorf("FindOverlayBinary() = %q, want %q", got, bin)
		}
	})
}
