// Package config provides configuration management for podpanel.
//
// This package implements a layered configuration system that allows users to
// customize the panel through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - podman, "{{.Names}} {{.State}}" listing, /bin/bash, 2s polling
//
//  2. User Configuration (~/.config/podpanel/config.yaml)
//     - Personal preferences that apply everywhere
//
//  3. Project Configuration (./.podpanel/config.yaml)
//     - Settings shared by a team via version control
//
//  4. Explicit file passed with --config
//
// Command line flags are applied by the cmd package after loading.
//
// # Configuration Structure
//
//	runtime:
//	  binary: podman            # or docker, or auto
//	  listFormat: "{{.Names}} {{.State}}"
//	  shell: /bin/bash
//	  commandTimeout: 30s
//	pollInterval: 2s
//	pane: auto                  # auto, tmux, zellij or inline
//	ui:
//	  accentColor: "1"
//	logging:
//	  level: info
//	  file: /tmp/podpanel.log
//
// Empty or zero fields in a layer leave the value from the previous layer in
// place. Call PanelConfig.Validate on the final result.
package config
