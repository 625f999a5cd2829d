package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emberlight/cigbat/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show overlay status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := GetOverlayStatus()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println(styleHint.Render("Overlay is not running."))
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)
	logFile, _ := config.GlobalLogFile()

	fmt.Println(styleSuccess.Render("Overlay is running."))
	fmt.Printf("  %s  %s\n", styleLabel.Render("Mode:    "), styleValue.Render(info.Mode.Title()))
	fmt.Printf("  %s  %d\n", styleLabel.Render("PID:     "), info.PID)
	fmt.Printf("  %s  %s\n", styleLabel.Render("Uptime:  "), uptime)
	fmt.Printf("  %s  %s\n", styleLabel.Render("Instance:"), styleHint.Render(info.InstanceID))
	if logFile != "" {
		fmt.Printf("  %s  %s\n", styleLabel.Render("Log:     "), logFile)
	}
	return nil
}
