package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/emberlight/cigbat/internal/config"
	"github.com/emberlight/cigbat/internal/models"
)

var (
	settingsShow  bool
	settingsReset bool
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config", "configure"},
	Short:   "Configure overlay settings",
	Long: `Configure overlay settings interactively.

This allows you to modify:
  - Battery poll interval
  - Charging glyph
  - Sprite size
  - Sprite directory

Press Enter to keep the current value for any setting. A running overlay
picks up changes on its next start.`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsShow, "show", false, "Print the current settings and exit")
	settingsCmd.Flags().BoolVar(&settingsReset, "reset", false, "Restore default settings")
}

func runSettings(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	if settingsReset {
		if err := config.SaveSettings(models.NewSettings()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println(styleSuccess.Render("Settings restored to defaults."))
		return nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settingsShow {
		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n\n%s", styleLabel.Render("#"), styleHint.Render(path), data)
		return nil
	}

	changed, err := promptSettings(bufio.NewReader(os.Stdin), os.Stdout, settings)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\n" + styleSuccess.Render("Settings updated."))
	if running, _, _ := config.IsOverlayRunning(); running {
		fmt.Println(styleHint.Render("Restart the overlay to apply: cigbat stop && cigbat launch"))
	}
	return nil
}

// promptSettings asks for each editable setting and applies the answers.
func promptSettings(reader *bufio.Reader, out io.Writer, s *models.Settings) (bool, error) {
	changed := false

	seconds := s.PollInterval().Seconds()
	answer := prompt(reader, out, "Poll interval in seconds", strconv.FormatFloat(seconds, 'f', -1, 64))
	if answer != "" {
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || v <= 0 {
			return false, fmt.Errorf("invalid poll interval: %s", answer)
		}
		if ms := int(v * 1000); ms != s.PollIntervalMS {
			s.PollIntervalMS = ms
			changed = true
		}
	}

	answer = prompt(reader, out, "Charging glyph", s.ChargingGlyph)
	if answer != "" && answer != s.ChargingGlyph {
		s.ChargingGlyph = answer
		changed = true
	}

	answer = prompt(reader, out, "Sprite size in pixels", strconv.Itoa(s.Window.SpriteSize))
	if answer != "" {
		v, err := strconv.Atoi(answer)
		if err != nil || v < 16 || v > 1024 {
			return false, fmt.Errorf("invalid sprite size: %s (expected 16-1024)", answer)
		}
		if v != s.Window.SpriteSize {
			s.Window.SpriteSize = v
			changed = true
		}
	}

	current := s.AssetDir
	if current == "" {
		current = "default"
	}
	answer = prompt(reader, out, "Sprite directory", current)
	switch {
	case answer == "":
	case answer == "default":
		if s.AssetDir != "" {
			s.AssetDir = ""
			changed = true
		}
	case answer != s.AssetDir:
		s.AssetDir = answer
		changed = true
	}

	return changed, nil
}

// prompt prints a question with its current value and returns the trimmed
// answer, empty to keep the current value.
func prompt(reader *bufio.Reader, out io.Writer, question, current string) string {
	fmt.Fprintf(out, "%s [%s]: ", question, current)
	response, _ := reader.ReadString('\n')
	return strings.TrimSpace(response)
}
