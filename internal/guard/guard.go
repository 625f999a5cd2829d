// Package guard detects another running overlay process.
package guard

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emberlight/cigbat/internal/config"
)

// OverlayEntry is the program name of the overlay binary.
const OverlayEntry = "cigbatd"

// DefaultScanTimeout bounds a full process scan.
const DefaultScanTimeout = 3 * time.Second

// Process is one entry of a process listing.
type Process interface {
	PID() int
	// Cmdline returns the process arguments, program entry first.
	Cmdline(ctx context.Context) ([]string, error)
}

// ProcessLister enumerates the processes on the machine.
type ProcessLister interface {
	Processes(ctx context.Context) ([]Process, error)
}

// Guard answers whether another overlay is already running.
type Guard struct {
	entry   string
	selfPID int
	lister  ProcessLister
	timeout time.Duration
}

// New creates a guard for the current process using the system process table.
func New() *Guard {
	return NewWithLister(OverlayEntry, os.Getpid(), SystemLister{})
}

// NewWithLister creates a guard matching entry and ignoring selfPID.
func NewWithLister(entry string, selfPID int, lister ProcessLister) *Guard {
	return &Guard{
		entry:   normalize(entry),
		selfPID: selfPID,
		lister:  lister,
		timeout: DefaultScanTimeout,
	}
}

// AlreadyRunning reports whether a process other than this one runs the
// overlay entry. Processes whose command line can't be read are skipped. A
// failed listing reports false.
func (g *Guard) AlreadyRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	procs, err := g.lister.Processes(ctx)
	if err != nil {
		log.Printf("[guard] Failed to list processes: %v", err)
		return false
	}

	for _, p := range procs {
		if p.PID() == g.selfPID {
			continue
		}
		args, err := p.Cmdline(ctx)
		if err != nil {
			if config.Debug() {
				log.Printf("[guard] Skipping pid %d: %v", p.PID(), err)
			}
			continue
		}
		if len(args) == 0 {
			continue
		}
		if normalize(args[0]) == g.entry {
			log.Printf("[guard] Found running overlay (pid %d)", p.PID())
			return true
		}
	}
	return false
}

// normalize reduces a program path to its base name without the Windows
// executable suffix.
func normalize(arg string) string {
	base := filepath.Base(strings.ReplaceAll(arg, `\`, "/"))
	if strings.HasSuffix(strings.ToLower(base), ".exe") {
		base = base[:len(base)-len(".exe")]
	}
	return base
}
