package cli

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emberlight/cigbat/internal/config"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the overlay",
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	running, info, err := GetOverlayStatus()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println(styleHint.Render("Overlay is not running."))
		return nil
	}

	// Send SIGTERM to the overlay process
	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find overlay process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send stop signal: %w", err)
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsOverlayRunning()
		if err == nil && !stillRunning {
			fmt.Println(styleSuccess.Render("Overlay stopped."))
			return nil
		}
	}

	return fmt.Errorf("overlay did not stop within timeout")
}
