package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/podpanel"
	projectConfigDir = ".podpanel"
	configFileName   = "config.yaml"
)

// LoadConfig loads the podpanel configuration by layering default, user and
// project settings, then the explicit file if one is given.
func LoadConfig(explicitPath string) (PanelConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return PanelConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return PanelConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return PanelConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	return config, nil
}

func overlayIfExists(base PanelConfig, path string) (PanelConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PanelConfig from a YAML file.
func loadConfigFromFile(filePath string) (PanelConfig, error) {
	var config PanelConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PanelConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PanelConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay PanelConfig) PanelConfig {
	merged := base

	if overlay.Runtime.Binary != "" {
		merged.Runtime.Binary = overlay.Runtime.Binary
	}
	if overlay.Runtime.ListFormat != "" {
		merged.Runtime.ListFormat = overlay.Runtime.ListFormat
	}
	if overlay.Runtime.Shell != "" {
		merged.Runtime.Shell = overlay.Runtime.Shell
	}
	if overlay.Runtime.CommandTimeout != 0 {
		merged.Runtime.CommandTimeout = overlay.Runtime.CommandTimeout
	}
	if overlay.PollInterval != 0 {
		merged.PollInterval = overlay.PollInterval
	}
	if overlay.Pane != "" {
		merged.Pane = overlay.Pane
	}
	if overlay.UI.AccentColor != "" {
		merged.UI.AccentColor = overlay.UI.AccentColor
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.File != "" {
		merged.Logging.File = overlay.Logging.File
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
