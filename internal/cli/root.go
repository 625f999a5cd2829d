// Package cli implements the cigbat CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cigbat",
	Short: "Show battery level as a burning cigarette",
	Long: `cigbat shows the battery level as a small cigarette overlay on the desktop.
The cigarette burns down with the charge and glows while charging.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styleError.Render("Error:"), err)
	}
	return err
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(versionCmd)
}
