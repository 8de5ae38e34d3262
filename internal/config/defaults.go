package config

import "time"

// DefaultListFormat makes the runtime print one "<name> <state>" line per container.
const DefaultListFormat = "{{.Names}} {{.State}}"

// GetDefaultConfig returns the built-in configuration every other layer is merged onto.
func GetDefaultConfig() PanelConfig {
	return PanelConfig{
		Runtime: RuntimeConfig{
			Binary:         "podman",
			ListFormat:     DefaultListFormat,
			Shell:          "/bin/bash",
			CommandTimeout: 30 * time.Second,
		},
		PollInterval: 2 * time.Second,
		Pane:         PaneAuto,
		UI: UIConfig{
			AccentColor: "1", // red
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
