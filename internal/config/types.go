package config

import (
	"fmt"
	"time"
)

// PaneMode selects how attach shells are opened.
type PaneMode string

const (
	PaneAuto   PaneMode = "auto"
	PaneTmux   PaneMode = "tmux"
	PaneZellij PaneMode = "zellij"
	PaneInline PaneMode = "inline"
)

// RuntimeAuto makes the panel pick the first container runtime found on PATH.
const RuntimeAuto = "auto"

// PanelConfig is the top-level configuration structure for podpanel.
type PanelConfig struct {
	Runtime      RuntimeConfig `yaml:"runtime"`
	PollInterval time.Duration `yaml:"pollInterval,omitempty"` // How often the roster is re-listed without user input
	Pane         PaneMode      `yaml:"pane,omitempty"`
	UI           UIConfig      `yaml:"ui"`
	Logging      LoggingConfig `yaml:"logging"`
}

// RuntimeConfig describes the container runtime CLI the panel shells out to.
type RuntimeConfig struct {
	Binary         string        `yaml:"binary,omitempty"`         // e.g. "podman", "docker" or "auto"
	ListFormat     string        `yaml:"listFormat,omitempty"`     // Go template passed to `ps --format`
	Shell          string        `yaml:"shell,omitempty"`          // Shell started by `exec -it`
	CommandTimeout time.Duration `yaml:"commandTimeout,omitempty"` // Upper bound for list/start/stop calls
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AccentColor string `yaml:"accentColor,omitempty"` // lipgloss color for the selected entry
}

// LoggingConfig controls log level and the optional log file used in TUI mode.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Validate checks the merged configuration for values the panel cannot run with.
func (c PanelConfig) Validate() error {
	switch c.Pane {
	case PaneAuto, PaneTmux, PaneZellij, PaneInline:
	default:
		return fmt.Errorf("unknown pane mode %q (want auto, tmux, zellij or inline)", c.Pane)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("pollInterval must be positive, got %s", c.PollInterval)
	}
	if c.Runtime.CommandTimeout <= 0 {
		return fmt.Errorf("runtime.commandTimeout must be positive, got %s", c.Runtime.CommandTimeout)
	}
	if c.Runtime.Binary == "" {
		return fmt.Errorf("runtime.binary must not be empty")
	}
	if c.Runtime.Shell == "" {
		return fmt.Errorf("runtime.shell must not be empty")
	}
	return nil
}
