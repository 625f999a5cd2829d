package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// SetupLogFile sends the standard logger to ~/.cigbat/logs/cigbatd.log in
// addition to stderr. The detached overlay has its stderr on the null device,
// so the file is the only record of its output. The returned closer flushes
// and closes the file.
func SetupLogFile() (io.Closer, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to create logs dir: %w", err)
	}

	path, err := GlobalLogFile()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return f, nil
}
