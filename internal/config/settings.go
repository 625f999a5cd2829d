package config

import (
	"github.com/emberlight/cigbat/internal/models"
)

// LoadSettings loads the global settings from ~/.cigbat/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.cigbat/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ResolveAssetDir returns the sprite directory named by settings, falling
// back to ~/.cigbat/assets.
func ResolveAssetDir(settings *models.Settings) (string, error) {
	if settings != nil && settings.AssetDir != "" {
		return settings.AssetDir, nil
	}
	return DefaultAssetsDir()
}
