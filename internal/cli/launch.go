package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emberlight/cigbat/internal/chooser"
	"github.com/emberlight/cigbat/internal/models"
)

var launchMode string

var launchCmd = &cobra.Command{
	Use:     "launch",
	Aliases: []string{"start"},
	Short:   "Start the overlay in the background",
	Long: `Start the battery overlay as a detached background process.

Without --mode, an interactive terminal shows a mode chooser; otherwise the
overlay starts in overlay mode.`,
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().StringVarP(&launchMode, "mode", "m", "", "Display mode: overlay or wallpaper")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	mode, err := resolveLaunchMode(cmd.Flags().Changed("mode"), launchMode, isInteractive())
	if errors.Is(err, chooser.ErrCancelled) {
		fmt.Println(styleHint.Render("Cancelled."))
		return nil
	}
	if err != nil {
		return err
	}

	running, info, err := GetOverlayStatus()
	if err != nil {
		return err
	}
	if running {
		fmt.Printf("%s (PID %d, %s mode).\n",
			styleWarning.Render("Overlay is already running"), info.PID, info.Mode)
		return nil
	}

	fmt.Printf("Starting %s...", styleCommand.Render(mode.Title()))
	started, err := startOverlay(mode)
	if err != nil {
		fmt.Println()
		return err
	}

	if started == nil {
		fmt.Println(" " + styleSuccess.Render("launched."))
		return nil
	}
	fmt.Printf(" %s (PID %d).\n", styleSuccess.Render("started"), started.PID)
	return nil
}

// resolveLaunchMode picks the mode from the flag, the chooser, or the default.
func resolveLaunchMode(flagSet bool, flagValue string, interactive bool) (models.DisplayMode, error) {
	if flagSet {
		mode, err := models.ParseDisplayMode(flagValue)
		if err != nil {
			return "", err
		}
		return mode, nil
	}
	if interactive {
		return chooser.Choose(models.ModeOverlay)
	}
	return models.ModeOverlay, nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
