package config

import (
	"os"
	"sync"
)

var (
	debugOnce    sync.Once
	debugEnabled bool
)

// Debug reports whether debug-level logging is enabled (CIGBAT_DEBUG=1).
func Debug() bool {
	debugOnce.Do(func() {
		debugEnabled = os.Getenv("CIGBAT_DEBUG") == "1"
	})
	return debugEnabled
}
