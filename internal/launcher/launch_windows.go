//go:build windows

package launcher

import (
	"syscall"

	"golang.org/x/sys/windows"
)

const exeSuffix = ".exe"

// detachedAttr starts the child without a console in its own process group.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
		HideWindow:    true,
	}
}
