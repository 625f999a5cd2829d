// Package launcher starts the overlay as a detached background process.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/emberlight/cigbat/internal/models"
)

// OverlayBinary is the overlay executable name without platform suffix.
const OverlayBinary = "cigbatd"

var (
	// ErrSpawnFailed means the OS refused to create the overlay process.
	ErrSpawnFailed = errors.New("failed to spawn overlay")

	// ErrBinaryNotFound means the overlay executable could not be located.
	// It also matches ErrSpawnFailed.
	ErrBinaryNotFound = fmt.Errorf("%w: %s not found, install or build it first", ErrSpawnFailed, OverlayBinary)
)

// LaunchError records a failed launch.
type LaunchError struct {
	Mode models.DisplayMode
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("launch %s overlay: %v", e.Mode, e.Err)
	}
	return fmt.Sprintf("launch %s overlay (%s): %v", e.Mode, e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Is makes every LaunchError match ErrSpawnFailed.
func (e *LaunchError) Is(target error) bool { return target == ErrSpawnFailed }

// Launcher spawns the overlay binary.
type Launcher struct {
	binary string
}

// New creates a launcher for the overlay binary at path.
func New(path string) *Launcher {
	return &Launcher{binary: path}
}

// Binary returns the path the launcher spawns.
func (l *Launcher) Binary() string { return l.binary }

// Launch starts the overlay in mode and returns as soon as the process
// exists. The child is released, never waited on.
func (l *Launcher) Launch(mode models.DisplayMode) error {
	if l.binary == "" {
		return &LaunchError{Mode: mode, Err: ErrBinaryNotFound}
	}

	cmd, devNull, err := l.command(mode)
	if err != nil {
		return &LaunchError{Mode: mode, Path: l.binary, Err: err}
	}
	defer devNull.Close()

	if err := cmd.Start(); err != nil {
		return &LaunchError{Mode: mode, Path: l.binary, Err: err}
	}
	if err := cmd.Process.Release(); err != nil {
		return &LaunchError{Mode: mode, Path: l.binary, Err: err}
	}
	return nil
}

func (l *Launcher) command(mode models.DisplayMode) (*exec.Cmd, *os.File, error) {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}

	cmd := exec.Command(l.binary, mode.Flag())
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.SysProcAttr = detachedAttr()
	return cmd, devNull, nil
}

// FindOverlayBinary locates cigbatd: PATH first, then next to the running
// executable, then ./build.
func FindOverlayBinary() (string, error) {
	name := OverlayBinary + exeSuffix
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	if execPath, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(execPath), name)
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}

	local := filepath.Join(".", "build", name)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	return "", ErrBinaryNotFound
}
