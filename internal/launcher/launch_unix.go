//go:build !windows

package launcher

import "syscall"

const exeSuffix = ""

// detachedAttr puts the child in its own session so it outlives the
// launching terminal.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
